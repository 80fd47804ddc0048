package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/keep/internal/db"
	"github.com/tgienger/keep/internal/models"
	"github.com/tgienger/keep/internal/store"
	"github.com/tgienger/keep/internal/ui/views"
)

// SnapshotKey is the storage key for the serialized note/label collections
const SnapshotKey = "collections"

// Currently active view
type View int

const (
	ViewNotes View = iota
	ViewLabels
)

type App struct {
	db          *db.DB
	store       *store.Store
	currentView View
	notes       *views.NotesView
	labels      *views.LabelsView
	width       int
	height      int
}

// NewApp creates a new application. The store is hydrated from the last
// persisted snapshot; a missing or corrupt snapshot starts empty.
func NewApp(database *db.DB, st *store.Store) *App {
	data, err := database.LoadSnapshot(SnapshotKey)
	if err != nil {
		// Storage trouble must not block the session; memory stays
		// authoritative
		log.Printf("loading snapshot: %v", err)
	}
	st.RestoreSnapshot(data)

	if last, err := database.GetSetting("last_view"); err == nil && last != "" {
		if view := models.View(last); view.Valid() {
			st.SetView(view)
		}
	}

	return &App{
		db:          database,
		store:       st,
		currentView: ViewNotes,
		notes:       views.NewNotesView(st),
		labels:      views.NewLabelsView(st),
	}
}

func (a *App) Init() tea.Cmd {
	return a.notes.Init()
}

// persist writes the current snapshot through the gateway. Failures are
// reported to the active view; they never abort the session.
func (a *App) persist() tea.Cmd {
	data, err := a.store.Snapshot()
	if err != nil {
		return func() tea.Msg { return views.SaveResult{Err: err} }
	}
	return func() tea.Msg {
		return views.SaveResult{Err: a.db.SaveSnapshot(SnapshotKey, data)}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.notes.Update(msg)
		a.labels.Update(msg)
		return a, nil

	case views.StateChanged:
		a.db.SetSetting("last_view", string(a.store.View()))
		return a, a.persist()

	case views.OpenLabels:
		a.currentView = ViewLabels
		return a, tea.Batch(
			a.labels.Init(),
			func() tea.Msg {
				return tea.WindowSizeMsg{Width: a.width, Height: a.height}
			},
		)

	case views.BackToNotes:
		a.currentView = ViewNotes
		a.notes.Refresh()
		return a, tea.Batch(
			a.notes.Init(),
			func() tea.Msg {
				return tea.WindowSizeMsg{Width: a.width, Height: a.height}
			},
		)
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewNotes:
		_, cmd = a.notes.Update(msg)
	case ViewLabels:
		_, cmd = a.labels.Update(msg)
	}

	return a, cmd
}

func (a *App) View() string {
	switch a.currentView {
	case ViewLabels:
		return a.labels.View()
	}
	return a.notes.View()
}
