package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/keep/internal/models"
	"github.com/tgienger/keep/internal/store"
	"github.com/tgienger/keep/internal/ui/keys"
	"github.com/tgienger/keep/internal/ui/styles"
)

// BackToNotes signals a return to the notes view
type BackToNotes struct{}

// LabelsView manages the label collection: create, rename, delete
type LabelsView struct {
	store  *store.Store
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	labels []models.Label
	cursor int

	editing    bool
	editingNew bool
	editID     string
	nameInput  textinput.Model

	confirmingDelete bool
	deleteID         string
	deleteName       string

	status      string
	statusIsErr bool
}

// NewLabelsView creates the label editor
func NewLabelsView(st *store.Store) *LabelsView {
	name := textinput.New()
	name.Placeholder = "Label name"
	name.CharLimit = store.MaxLabelNameLen

	v := &LabelsView{
		store:     st,
		styles:    styles.NewStyles(),
		keys:      keys.DefaultKeyMap(),
		nameInput: name,
	}
	v.refresh()
	return v
}

// Init initializes the view
func (v *LabelsView) Init() tea.Cmd {
	return nil
}

func (v *LabelsView) refresh() {
	v.labels = v.store.Labels()
	if v.cursor >= len(v.labels) {
		v.cursor = max(0, len(v.labels)-1)
	}
}

// Update handles messages
func (v *LabelsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case SaveResult:
		if msg.Err != nil {
			v.status = "save failed, changes kept in memory: " + msg.Err.Error()
			v.statusIsErr = true
		}
		return v, nil

	case tea.KeyMsg:
		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}
		if v.editing {
			return v.updateEditing(msg)
		}
		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *LabelsView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg { return BackToNotes{} }

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.labels)-1 {
			v.cursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		v.editing = true
		v.editingNew = true
		v.editID = ""
		v.nameInput.SetValue("")
		v.nameInput.Focus()
		v.status = ""
		return v, nil

	case key.Matches(msg, v.keys.Edit), key.Matches(msg, v.keys.Enter):
		if v.cursor < len(v.labels) {
			l := v.labels[v.cursor]
			v.editing = true
			v.editingNew = false
			v.editID = l.ID
			v.nameInput.SetValue(l.Name)
			v.nameInput.Focus()
			v.status = ""
		}
		return v, nil

	case key.Matches(msg, v.keys.Trash), key.Matches(msg, v.keys.Purge):
		if v.cursor < len(v.labels) {
			v.confirmingDelete = true
			v.deleteID = v.labels[v.cursor].ID
			v.deleteName = v.labels[v.cursor].Name
		}
		return v, nil
	}

	return v, nil
}

func (v *LabelsView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		v.confirmingDelete = false
		// Deleting also strips the label from every note
		if err := v.store.DeleteLabel(v.deleteID); err != nil {
			v.status = err.Error()
			v.statusIsErr = true
			return v, nil
		}
		v.refresh()
		return v, stateChanged
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

func (v *LabelsView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.editing = false
		v.nameInput.Blur()
		return v, nil

	case "enter":
		name := strings.TrimSpace(v.nameInput.Value())
		var err error
		if v.editingNew {
			_, err = v.store.CreateLabel(name, "")
		} else {
			_, err = v.store.RenameLabel(v.editID, name, "")
		}
		if err != nil {
			// Rename against a deleted label must surface, unlike the
			// idempotent note toggles
			v.status = err.Error()
			v.statusIsErr = true
			return v, nil
		}
		v.editing = false
		v.nameInput.Blur()
		v.status = ""
		v.refresh()
		return v, stateChanged
	}

	var cmd tea.Cmd
	v.nameInput, cmd = v.nameInput.Update(msg)
	return v, cmd
}

// View renders the view
func (v *LabelsView) View() string {
	if v.confirmingDelete {
		return v.renderConfirmDelete()
	}
	if v.editing {
		return v.renderEditForm()
	}
	return v.renderList()
}

func (v *LabelsView) renderList() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	var sections []string
	sections = append(sections, s.Title.Render("keep — Labels"), "")

	if len(v.labels) == 0 {
		sections = append(sections, s.TitleMuted.Render("No labels. Press 'n' to create one."))
	} else {
		width := max(contentWidth-4, 20)
		for i, l := range v.labels {
			itemStyle := s.ListItem
			if i == v.cursor {
				itemStyle = s.ListSelected
			}
			sections = append(sections, itemStyle.Width(width).Render("#"+l.Name))
		}
	}

	var statusLine string
	if v.status != "" {
		if v.statusIsErr {
			statusLine = s.StatusError.Render(v.status)
		} else {
			statusLine = s.StatusBar.Render(v.status)
		}
	} else {
		statusLine = s.Help.Render(
			fmt.Sprintf("%s new • %s rename • %s delete • %s back",
				s.HelpKey.Render("n"),
				s.HelpKey.Render("e"),
				s.HelpKey.Render("d"),
				s.HelpKey.Render("esc"),
			),
		)
	}
	sections = append(sections, "", statusLine)

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	padded := lipgloss.NewStyle().Padding(1, 2).MaxWidth(contentWidth).Render(content)
	return styles.CenterView(padded, v.width, v.height)
}

func (v *LabelsView) renderEditForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	formTitle := "New Label"
	if !v.editingNew {
		formTitle = "Rename Label"
	}

	var statusLine string
	if v.statusIsErr && v.status != "" {
		statusLine = s.StatusError.Render(v.status)
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(formTitle),
		"",
		s.InputFocused.Width(clamp(contentWidth-6, 20, 40)).Render(v.nameInput.View()),
		"",
		statusLine,
		s.TitleMuted.Render("↵: save • esc: cancel"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *LabelsView) renderConfirmDelete() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("Delete Label?"),
		"",
		s.TitleMuted.Render(fmt.Sprintf("\"%s\" will be removed from every note.", v.deleteName)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}
