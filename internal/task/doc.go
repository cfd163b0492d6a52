// Package task defines the task model and the file-backed store.
//
// The data file (tasks.json) is a single pretty-printed JSON array:
//
//	[
//	  {
//	    "id": 1,
//	    "name": "Buy milk",
//	    "description": "2 liters, whole",
//	    "status": "todo",
//	    "createdAt": "2024-01-01T00:00:00Z",
//	    "updatedAt": "2024-01-01T00:00:00Z"
//	  }
//	]
//
// # Leniency
//
// The store never fails on bad input data: a missing file loads as an
// empty list, and a file that cannot be parsed as a task array is
// reported as a warning and loads as empty. The next save overwrites it.
// Write failures, by contrast, are fatal for the invocation.
//
// # Task Status Values
//
//   - "todo": task is pending
//   - "in-progress": task is being worked on
//   - "done": task is complete
//
// # Identifiers
//
// Ids are positive integers assigned as max(existing ids)+1 and never
// reused after deletion. Legacy data files sometimes carry ids as JSON
// strings ("2"); those are accepted on read and written back as numbers.
//
// # Validation
//
// Two validation modes are supported:
//
//  1. JSON Schema validation against the embedded tasks.schema.json
//     (type checks, required fields, status enum, timestamp format).
//  2. Minimal fallback validation with no schema involvement.
package task
