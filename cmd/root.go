// Package cmd implements the CLI command structure for tasktracker.
package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ledat5934/task-tracker-cli/internal/config"
	"github.com/ledat5934/task-tracker-cli/internal/logging"
	"github.com/ledat5934/task-tracker-cli/internal/task"
	"github.com/ledat5934/task-tracker-cli/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Usage strings printed on validation failures.
const (
	addUsage    = "Usage: tasktracker add <name> [description...]"
	updateUsage = "Usage: tasktracker update <id> <description...>"
	deleteUsage = "Usage: tasktracker delete <id>"
	markUsage   = "Usage: tasktracker %s <id>"
	listUsage   = "Usage: tasktracker list [todo|in-progress|done]"
)

// Run executes the tasktracker CLI. Every command is a full
// read-modify-write cycle over the data file: load, apply one
// transform, save, confirm on stdout.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("tasktracker", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	logger := logging.New(logging.Options{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		Timestamps: cfg.LogTimestamps,
	})
	store := task.NewStore(cfg.DataPath(), logger)

	// Determine the verb; no verb means help
	remaining := fs.Args()
	if len(remaining) == 0 {
		printUsage(fs, os.Stdout)
		return nil
	}
	verb := remaining[0]
	cmdArgs := remaining[1:]

	// Execute the command
	switch verb {
	case "add":
		return addCommand(store, cmdArgs)
	case "update":
		return updateCommand(store, cmdArgs)
	case "delete":
		return deleteCommand(store, cmdArgs)
	case "mark-in-progress":
		return markCommand(store, verb, task.StatusInProgress, cmdArgs)
	case "mark-done":
		return markCommand(store, verb, task.StatusDone, cmdArgs)
	case "list":
		return listCommand(store, cmdArgs)
	case "tui":
		return tuiCommand(ctx, store, cmdArgs)
	case "doctor":
		return doctorCommand(cfg, store, cmdArgs)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", verb)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", verb)
	}
}

// addCommand appends a new task with a fresh id and status todo.
func addCommand(store *task.Store, args []string) error {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		fmt.Fprintln(os.Stderr, addUsage)
		return fmt.Errorf("add: task name is required")
	}
	name := args[0]
	description := strings.Join(args[1:], " ")

	tasks, err := store.Load()
	if err != nil {
		return err
	}
	t := tasks.Add(name, description)
	if err := store.Save(tasks); err != nil {
		return err
	}

	fmt.Printf("Task added successfully (ID: %d)\n", t.ID)
	return nil
}

// updateCommand replaces a task's description.
func updateCommand(store *task.Store, args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, updateUsage)
		return fmt.Errorf("update: id and description are required")
	}
	id, err := task.ParseID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, updateUsage)
		return err
	}
	description := strings.Join(args[1:], " ")

	tasks, err := store.Load()
	if err != nil {
		return err
	}
	if err := tasks.UpdateDescription(id, description); err != nil {
		return err
	}
	if err := store.Save(tasks); err != nil {
		return err
	}

	fmt.Printf("Task %d updated successfully\n", id)
	return nil
}

// deleteCommand removes a task entirely.
func deleteCommand(store *task.Store, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, deleteUsage)
		return fmt.Errorf("delete: id is required")
	}
	id, err := task.ParseID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, deleteUsage)
		return err
	}

	tasks, err := store.Load()
	if err != nil {
		return err
	}
	if err := tasks.Delete(id); err != nil {
		return err
	}
	if err := store.Save(tasks); err != nil {
		return err
	}

	fmt.Printf("Task %d deleted successfully\n", id)
	return nil
}

// markCommand sets a task's status. Re-marking an already marked task
// still refreshes updatedAt.
func markCommand(store *task.Store, verb string, status task.Status, args []string) error {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, markUsage+"\n", verb)
		return fmt.Errorf("%s: id is required", verb)
	}
	id, err := task.ParseID(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, markUsage+"\n", verb)
		return err
	}

	tasks, err := store.Load()
	if err != nil {
		return err
	}
	if err := tasks.SetStatus(id, status); err != nil {
		return err
	}
	if err := store.Save(tasks); err != nil {
		return err
	}

	fmt.Printf("Task %d marked as %s\n", id, status)
	return nil
}

// listCommand prints tasks in stored order, optionally filtered by
// status. An empty result is informational, not an error.
func listCommand(store *task.Store, args []string) error {
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, listUsage)
		return fmt.Errorf("list: unexpected arguments: %v", args[1:])
	}

	var filter task.Status
	if len(args) == 1 {
		s, err := task.ParseStatus(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, listUsage)
			return err
		}
		filter = s
	}

	tasks, err := store.Load()
	if err != nil {
		return err
	}
	if filter != "" {
		tasks = tasks.Filter(filter)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks to show.")
		return nil
	}
	for i := range tasks {
		fmt.Println(formatTaskLine(tasks[i]))
	}
	return nil
}

// formatTaskLine renders one task per line. The description segment,
// including its leading separator, is omitted when empty.
func formatTaskLine(t task.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] %s", t.ID, t.Name)
	if t.Description != "" {
		b.WriteString(" — " + t.Description)
	}
	fmt.Fprintf(&b, " | %s | created: %s | updated: %s",
		t.Status,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	return b.String()
}

// tuiCommand launches the terminal UI.
func tuiCommand(ctx context.Context, store *task.Store, args []string) error {
	fs := flag.NewFlagSet("tasktracker tui", flag.ContinueOnError)
	refresh := fs.Duration("refresh", time.Second, "Data reload interval")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if remaining := fs.Args(); len(remaining) > 0 {
		return fmt.Errorf("unexpected arguments: %v", remaining)
	}

	return ui.RunTUI(ctx, store, ui.WithRefreshInterval(*refresh))
}

// doctorCommand checks the data directory, the data file, and schema
// validity.
func doctorCommand(cfg *config.Config, store *task.Store, args []string) error {
	fs := flag.NewFlagSet("tasktracker doctor", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if remaining := fs.Args(); len(remaining) > 0 {
		return fmt.Errorf("unexpected arguments: %v", remaining)
	}

	fmt.Println("Task Tracker Doctor")
	fmt.Println("===================")
	fmt.Println()

	allOK := true

	// Check data directory
	fmt.Printf("Data directory: %s\n", cfg.DataDir)
	if info, err := os.Stat(cfg.DataDir); err != nil {
		fmt.Printf("  ❌ Error: %v\n", err)
		allOK = false
	} else if !info.IsDir() {
		fmt.Println("  ❌ Error: path is not a directory")
		allOK = false
	} else {
		fmt.Println("  ✅ OK")
	}
	fmt.Println()

	// Check data file
	fmt.Printf("Data file: %s\n", store.Path)
	info, err := os.Stat(store.Path)
	switch {
	case os.IsNotExist(err):
		fmt.Println("  ⚠️  Not found (will be created on first add)")
	case err != nil:
		fmt.Printf("  ❌ Error: %v\n", err)
		allOK = false
	case info.IsDir():
		fmt.Println("  ❌ Error: path is a directory")
		allOK = false
	default:
		fmt.Println("  ✅ OK")
		if !checkDataFile(store, *verbose) {
			allOK = false
		}
	}
	fmt.Println()

	if allOK {
		fmt.Println("✅ All checks passed!")
		return nil
	}
	fmt.Println("⚠️  Some checks failed.")
	return fmt.Errorf("doctor checks failed")
}

// checkDataFile parses and validates an existing data file.
func checkDataFile(store *task.Store, verbose bool) bool {
	data, err := os.ReadFile(store.Path)
	if err != nil {
		fmt.Printf("  ❌ Read error: %v\n", err)
		return false
	}

	var tasks task.List
	if err := json.Unmarshal(data, &tasks); err != nil {
		fmt.Printf("  ❌ Not a valid task array: %v\n", err)
		fmt.Println("     (commands will treat the file as empty and overwrite it on save)")
		return false
	}

	result := tasks.Validate()
	for _, w := range result.Warnings {
		fmt.Printf("  ⚠️  %s\n", w)
	}
	if !result.Valid {
		fmt.Println("  ❌ Validation failed:")
		for _, e := range result.Errors {
			fmt.Printf("     - %v\n", e)
		}
		return false
	}

	fmt.Println("  ✅ Valid")
	if verbose {
		fmt.Printf("  Tasks: %d\n", len(tasks))
		for i := range tasks {
			fmt.Printf("    - [%s] %d: %s\n", tasks[i].Status, tasks[i].ID, tasks[i].Name)
		}
	}
	return true
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Printf("tasktracker version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Task Tracker - A JSON-file-backed task tracker")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tasktracker [options] <command> [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  add <name> [description...]   Add a new task")
	fmt.Fprintln(w, "  update <id> <description...>  Replace a task's description")
	fmt.Fprintln(w, "  delete <id>                   Delete a task")
	fmt.Fprintln(w, "  mark-in-progress <id>         Mark a task as in-progress")
	fmt.Fprintln(w, "  mark-done <id>                Mark a task as done")
	fmt.Fprintln(w, "  list [todo|in-progress|done]  List tasks, optionally by status")
	fmt.Fprintln(w, "  tui                           Launch the terminal UI")
	fmt.Fprintln(w, "  doctor                        Check config and data file validity")
	fmt.Fprintln(w, "  version                       Show version information")
	fmt.Fprintln(w, "  help                          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TASK_TRACKER_DIR   Directory holding the data file")
	fmt.Fprintln(w, "                     (default: the executable's directory)")
	fmt.Fprintln(w, "  TASK_TRACKER_FILE  Data file name (default: tasks.json)")
}
