package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/keep/internal/db"
	"github.com/tgienger/keep/internal/store"
	"github.com/tgienger/keep/internal/ui"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: keep [flags]

Flags:
  --export FILE   write all notes to FILE as pretty-printed JSON and exit
  --import FILE   merge notes from a previously exported FILE and exit
  --version       print version information and exit`)
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v":
			fmt.Printf("keep %s (commit: %s, built: %s)\n", version, commit, date)
			os.Exit(0)
		case "--help", "-h":
			usage()
			os.Exit(0)
		case "--export", "--import":
			if len(os.Args) < 3 {
				usage()
				os.Exit(2)
			}
			if err := runBackup(os.Args[1], os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			os.Exit(0)
		}
	}

	// Initialize database
	database, err := db.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if os.Getenv("KEEP_DEBUG") != "" {
		f, err := tea.LogToFile("keep-debug.log", "keep")
		if err == nil {
			defer f.Close()
		}
	}

	// Create and run the application
	app := ui.NewApp(database, store.New())
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// runBackup handles the headless --export/--import modes
func runBackup(mode, path string) error {
	database, err := db.New()
	if err != nil {
		return err
	}
	defer database.Close()

	st := store.New()
	data, err := database.LoadSnapshot(ui.SnapshotKey)
	if err != nil {
		return err
	}
	st.RestoreSnapshot(data)

	switch mode {
	case "--export":
		out, err := st.ExportNotes()
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, out, 0644); err != nil {
			return err
		}
		fmt.Printf("exported %d notes to %s\n", len(st.Notes()), path)
		return nil

	case "--import":
		in, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		count, err := st.ImportNotes(in)
		if err != nil {
			return err
		}
		snap, err := st.Snapshot()
		if err != nil {
			return err
		}
		if err := database.SaveSnapshot(ui.SnapshotKey, snap); err != nil {
			return err
		}
		fmt.Printf("imported %d notes from %s\n", count, path)
		return nil
	}
	return fmt.Errorf("unknown mode %s", mode)
}
