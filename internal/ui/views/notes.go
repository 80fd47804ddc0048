package views

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/tgienger/keep/internal/models"
	"github.com/tgienger/keep/internal/store"
	"github.com/tgienger/keep/internal/ui/keys"
	"github.com/tgienger/keep/internal/ui/styles"
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// StateChanged signals that the note/label collections were mutated and
// should be persisted
type StateChanged struct{}

// SaveResult reports the outcome of persisting a snapshot
type SaveResult struct {
	Err error
}

// OpenLabels signals a switch to the label editor
type OpenLabels struct{}

// Reminder input formats accepted by the edit form
var reminderFormats = []string{
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC3339,
}

// Edit form focus positions
const (
	focusTitle = iota
	focusBody
	focusReminder
	focusColor
	focusLabels
	focusImage
	focusSave
	focusCount
)

type imageLoadedMsg struct {
	gen  int
	data []byte
	err  error
}

// NotesView is the main note grid: pinned notes above others, filtered by
// the active view
type NotesView struct {
	store  *store.Store
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	proj    store.Projection
	labels  []models.Label
	cursor  int // index into the flattened pinned+others list
	scrollY int

	// Label filter dropdown
	filterOpen   bool
	filterCursor int

	// Edit form state
	editing     bool
	editingNew  bool
	editID      string
	editFocus   int
	editType    models.NoteType
	editTitle   textinput.Model
	editContent textarea.Model
	editRemind  textinput.Model
	editImage   textinput.Model

	editColorIdx    int
	editLabelIDs    []string
	editLabelCursor int

	editItems     []models.NoteItem
	editItemInput textinput.Model
	editItemIdx   int

	editImageData []byte

	// Generation counter for the edit session. An async image read that
	// resolves after the session closed (or after another session opened)
	// carries a stale generation and is dropped.
	editGen int

	confirmingEmpty bool
	showHelpPopup   bool

	status      string
	statusIsErr bool
}

// NewNotesView creates the main notes view
func NewNotesView(st *store.Store) *NotesView {
	s := styles.NewStyles()

	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = store.MaxTitleLen

	content := textarea.New()
	content.Placeholder = "Take a note..."
	content.CharLimit = store.MaxContentLen
	content.SetWidth(50)
	content.SetHeight(6)
	content.ShowLineNumbers = false

	remind := textinput.New()
	remind.Placeholder = "2026-01-02 15:04 (empty = none)"
	remind.CharLimit = 40

	image := textinput.New()
	image.Placeholder = "path to image file"
	image.CharLimit = 500

	item := textinput.New()
	item.Placeholder = "List item"
	item.CharLimit = 500

	v := &NotesView{
		store:         st,
		styles:        s,
		keys:          keys.DefaultKeyMap(),
		editTitle:     title,
		editContent:   content,
		editRemind:    remind,
		editImage:     image,
		editItemInput: item,
	}
	v.refresh()
	return v
}

// Init initializes the view
func (v *NotesView) Init() tea.Cmd {
	return nil
}

// Refresh recomputes the projection, for use after mutations made outside
// this view (label deletes cascade into notes)
func (v *NotesView) Refresh() {
	v.refresh()
}

func (v *NotesView) refresh() {
	v.proj = v.store.Project()
	v.labels = v.store.Labels()
	total := len(v.proj.Pinned) + len(v.proj.Others)
	if v.cursor >= total {
		v.cursor = max(0, total-1)
	}
}

// flat returns the projected notes as one list, pinned first
func (v *NotesView) flat() []models.Note {
	out := make([]models.Note, 0, len(v.proj.Pinned)+len(v.proj.Others))
	out = append(out, v.proj.Pinned...)
	out = append(out, v.proj.Others...)
	return out
}

func (v *NotesView) current() (models.Note, bool) {
	notes := v.flat()
	if v.cursor < 0 || v.cursor >= len(notes) {
		return models.Note{}, false
	}
	return notes[v.cursor], true
}

func (v *NotesView) setStatus(s string, isErr bool) {
	v.status = s
	v.statusIsErr = isErr
}

func stateChanged() tea.Msg { return StateChanged{} }

// Update handles messages
func (v *NotesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(v.width)
		v.editContent.SetWidth(clamp(contentWidth-10, 20, 50))
		return v, nil

	case SaveResult:
		if msg.Err != nil {
			v.setStatus("save failed, changes kept in memory: "+msg.Err.Error(), true)
		}
		return v, nil

	case imageLoadedMsg:
		// Discard reads from a closed or superseded edit session
		if !v.editing || msg.gen != v.editGen {
			return v, nil
		}
		if msg.err != nil {
			v.setStatus("could not read image: "+msg.err.Error(), true)
			return v, nil
		}
		v.editImageData = msg.data
		v.setStatus(fmt.Sprintf("image attached (%d bytes)", len(msg.data)), false)
		return v, nil

	case tea.KeyMsg:
		if v.showHelpPopup {
			v.showHelpPopup = false
			return v, nil
		}
		if v.confirmingEmpty {
			return v.updateConfirmEmpty(msg)
		}
		if v.editing {
			return v.updateEditing(msg)
		}
		if v.filterOpen {
			return v.updateFilter(msg)
		}
		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *NotesView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	notes := v.flat()

	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Help):
		v.showHelpPopup = true
		return v, nil

	case key.Matches(msg, v.keys.ViewNotes):
		return v.switchView(models.ViewNotes)
	case key.Matches(msg, v.keys.ViewReminders):
		return v.switchView(models.ViewReminders)
	case key.Matches(msg, v.keys.ViewArchive):
		return v.switchView(models.ViewArchive)
	case key.Matches(msg, v.keys.ViewTrash):
		return v.switchView(models.ViewTrash)

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(notes)-1 {
			v.cursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.MoveUp):
		if v.cursor > 0 && notes[v.cursor].Pinned == notes[v.cursor-1].Pinned {
			v.store.Reorder(notes[v.cursor].ID, notes[v.cursor-1].ID)
			v.cursor--
			v.refresh()
			return v, stateChanged
		}
		return v, nil

	case key.Matches(msg, v.keys.MoveDown):
		if v.cursor < len(notes)-1 && notes[v.cursor].Pinned == notes[v.cursor+1].Pinned {
			v.store.Reorder(notes[v.cursor].ID, notes[v.cursor+1].ID)
			v.cursor++
			v.refresh()
			return v, stateChanged
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		if v.store.View() == models.ViewTrash {
			return v, nil
		}
		v.openEditor(models.Note{}, true)
		return v, nil

	case key.Matches(msg, v.keys.Edit), key.Matches(msg, v.keys.Enter):
		n, ok := v.current()
		if !ok || n.Trashed {
			return v, nil
		}
		v.openEditor(n, false)
		return v, nil

	case key.Matches(msg, v.keys.Pin):
		if n, ok := v.current(); ok && !n.Trashed {
			// NotFound here means the note vanished under us; treat as done
			v.store.TogglePin(n.ID)
			v.refresh()
			return v, stateChanged
		}
		return v, nil

	case key.Matches(msg, v.keys.Archive):
		if n, ok := v.current(); ok && !n.Trashed {
			v.store.ToggleArchive(n.ID)
			v.refresh()
			return v, stateChanged
		}
		return v, nil

	case key.Matches(msg, v.keys.Trash):
		if n, ok := v.current(); ok && !n.Trashed {
			v.store.Trash(n.ID)
			v.refresh()
			return v, stateChanged
		}
		return v, nil

	case key.Matches(msg, v.keys.Restore):
		if n, ok := v.current(); ok && n.Trashed {
			v.store.Restore(n.ID)
			v.refresh()
			return v, stateChanged
		}
		return v, nil

	case key.Matches(msg, v.keys.Purge):
		if n, ok := v.current(); ok && n.Trashed {
			v.store.Purge(n.ID)
			v.refresh()
			return v, stateChanged
		}
		return v, nil

	case key.Matches(msg, v.keys.Empty):
		if v.store.View() == models.ViewTrash {
			v.confirmingEmpty = true
		}
		return v, nil

	case key.Matches(msg, v.keys.Filter):
		if v.store.View() == models.ViewNotes && len(v.labels) > 0 {
			v.filterOpen = true
			v.filterCursor = 0
		}
		return v, nil

	case key.Matches(msg, v.keys.Labels):
		return v, func() tea.Msg { return OpenLabels{} }
	}

	return v, nil
}

func (v *NotesView) switchView(view models.View) (tea.Model, tea.Cmd) {
	v.store.SetView(view)
	v.cursor = 0
	v.scrollY = 0
	v.setStatus("", false)
	return v, nil
}

func (v *NotesView) updateConfirmEmpty(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		removed := v.store.EmptyTrash()
		v.confirmingEmpty = false
		v.refresh()
		v.setStatus(fmt.Sprintf("removed %d notes", removed), false)
		return v, stateChanged
	case "n", "N", "esc":
		v.confirmingEmpty = false
		return v, nil
	}
	return v, nil
}

func (v *NotesView) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.filterOpen = false
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.filterCursor > 0 {
			v.filterCursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.filterCursor < len(v.labels) {
			v.filterCursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if v.filterCursor == 0 {
			v.store.ClearLabelFilter()
		} else {
			v.store.SetLabelFilter(v.labels[v.filterCursor-1].ID)
		}
		v.filterOpen = false
		v.cursor = 0
		v.refresh()
		return v, nil
	}
	return v, nil
}

// openEditor starts an edit session. Opening bumps the generation counter
// so any image read still in flight from a previous session is discarded.
func (v *NotesView) openEditor(n models.Note, isNew bool) {
	v.editGen++
	v.editing = true
	v.editingNew = isNew
	v.editID = n.ID
	v.editFocus = focusTitle
	v.setStatus("", false)

	v.editType = n.Type
	if v.editType == "" {
		v.editType = models.TypeText
	}

	v.editTitle.SetValue(n.Title)
	v.editContent.SetValue(n.Content)
	v.editImage.SetValue("")
	v.editImageData = n.Image

	if n.Reminder != nil {
		v.editRemind.SetValue(n.Reminder.Format("2006-01-02 15:04"))
	} else {
		v.editRemind.SetValue("")
	}

	v.editColorIdx = styles.PaletteIndex(n.Color)
	v.editLabelIDs = append([]string(nil), n.LabelIDs...)
	v.editLabelCursor = 0
	v.editItems = append([]models.NoteItem(nil), n.Items...)
	v.editItemIdx = 0
	v.editItemInput.SetValue("")

	v.editTitle.Focus()
	v.editContent.Blur()
	v.editRemind.Blur()
	v.editImage.Blur()
	v.editItemInput.Blur()
}

// closeEditor ends the session; the generation bump invalidates in-flight
// attachment reads
func (v *NotesView) closeEditor() {
	v.editGen++
	v.editing = false
	v.editID = ""
}

func (v *NotesView) setEditFocus(idx int) {
	v.editFocus = (idx + focusCount) % focusCount
	v.editTitle.Blur()
	v.editContent.Blur()
	v.editRemind.Blur()
	v.editImage.Blur()
	v.editItemInput.Blur()

	switch v.editFocus {
	case focusTitle:
		v.editTitle.Focus()
	case focusBody:
		if v.editType == models.TypeList {
			v.editItemInput.Focus()
		} else {
			v.editContent.Focus()
		}
	case focusReminder:
		v.editRemind.Focus()
	case focusImage:
		v.editImage.Focus()
	}
}

func (v *NotesView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.closeEditor()
		return v, nil
	case "ctrl+s":
		return v.saveEdit()
	case "tab":
		v.setEditFocus(v.editFocus + 1)
		return v, nil
	case "shift+tab":
		v.setEditFocus(v.editFocus - 1)
		return v, nil
	case "ctrl+t":
		if v.editType == models.TypeText {
			v.editType = models.TypeList
		} else {
			v.editType = models.TypeText
		}
		v.setEditFocus(v.editFocus)
		return v, nil
	}

	switch v.editFocus {
	case focusTitle:
		var cmd tea.Cmd
		v.editTitle, cmd = v.editTitle.Update(msg)
		return v, cmd

	case focusBody:
		if v.editType == models.TypeList {
			return v.updateItemEditor(msg)
		}
		var cmd tea.Cmd
		v.editContent, cmd = v.editContent.Update(msg)
		return v, cmd

	case focusReminder:
		var cmd tea.Cmd
		v.editRemind, cmd = v.editRemind.Update(msg)
		return v, cmd

	case focusColor:
		switch {
		case key.Matches(msg, v.keys.Left):
			v.editColorIdx = (v.editColorIdx + len(styles.NotePalette) - 1) % len(styles.NotePalette)
		case key.Matches(msg, v.keys.Right):
			v.editColorIdx = (v.editColorIdx + 1) % len(styles.NotePalette)
		}
		return v, nil

	case focusLabels:
		switch {
		case key.Matches(msg, v.keys.Up):
			if v.editLabelCursor > 0 {
				v.editLabelCursor--
			}
		case key.Matches(msg, v.keys.Down):
			if v.editLabelCursor < len(v.labels)-1 {
				v.editLabelCursor++
			}
		case msg.String() == " ", key.Matches(msg, v.keys.Enter):
			if v.editLabelCursor < len(v.labels) {
				v.toggleEditLabel(v.labels[v.editLabelCursor].ID)
			}
		}
		return v, nil

	case focusImage:
		switch msg.String() {
		case "enter":
			path := strings.TrimSpace(v.editImage.Value())
			if path == "" {
				return v, nil
			}
			gen := v.editGen
			v.setStatus("reading image...", false)
			return v, func() tea.Msg {
				data, err := os.ReadFile(path)
				return imageLoadedMsg{gen: gen, data: data, err: err}
			}
		case "ctrl+d":
			v.editImageData = nil
			v.setStatus("image removed", false)
			return v, nil
		}
		var cmd tea.Cmd
		v.editImage, cmd = v.editImage.Update(msg)
		return v, cmd

	case focusSave:
		if msg.String() == "enter" {
			return v.saveEdit()
		}
		return v, nil
	}

	return v, nil
}

func (v *NotesView) toggleEditLabel(id string) {
	for i, lid := range v.editLabelIDs {
		if lid == id {
			v.editLabelIDs = append(v.editLabelIDs[:i], v.editLabelIDs[i+1:]...)
			return
		}
	}
	v.editLabelIDs = append(v.editLabelIDs, id)
}

func (v *NotesView) updateItemEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(v.editItemInput.Value())
		if text != "" {
			v.editItems = append(v.editItems, models.NoteItem{
				ID:   uuid.NewString(),
				Text: text,
			})
			v.editItemInput.SetValue("")
			v.editItemIdx = len(v.editItems) - 1
		}
		return v, nil
	case "up":
		if v.editItemIdx > 0 {
			v.editItemIdx--
		}
		return v, nil
	case "down":
		if v.editItemIdx < len(v.editItems)-1 {
			v.editItemIdx++
		}
		return v, nil
	case "ctrl+x":
		if v.editItemIdx < len(v.editItems) {
			v.editItems[v.editItemIdx].Checked = !v.editItems[v.editItemIdx].Checked
		}
		return v, nil
	case "ctrl+d":
		if v.editItemIdx < len(v.editItems) {
			v.editItems = append(v.editItems[:v.editItemIdx], v.editItems[v.editItemIdx+1:]...)
			if v.editItemIdx >= len(v.editItems) {
				v.editItemIdx = max(0, len(v.editItems)-1)
			}
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.editItemInput, cmd = v.editItemInput.Update(msg)
	return v, cmd
}

func parseReminder(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range reminderFormats {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized reminder %q", s)
}

func (v *NotesView) saveEdit() (tea.Model, tea.Cmd) {
	reminder, err := parseReminder(v.editRemind.Value())
	if err != nil {
		v.setStatus(err.Error(), true)
		return v, nil
	}

	d := store.Draft{
		Title:    v.editTitle.Value(),
		Content:  v.editContent.Value(),
		Type:     v.editType,
		Items:    v.editItems,
		Color:    styles.NotePalette[v.editColorIdx].Name,
		LabelIDs: v.editLabelIDs,
		Image:    v.editImageData,
		Reminder: reminder,
	}

	if v.editingNew {
		_, err = v.store.CreateNote(d)
	} else {
		_, err = v.store.UpdateNote(v.editID, d)
	}
	if err != nil {
		// Validation failures surface before anything was mutated
		v.setStatus(err.Error(), true)
		return v, nil
	}

	v.closeEditor()
	v.refresh()
	return v, stateChanged
}

// View renders the view
func (v *NotesView) View() string {
	if v.showHelpPopup {
		return v.renderHelpPopup()
	}
	if v.confirmingEmpty {
		return v.renderConfirmEmpty()
	}
	if v.editing {
		return v.renderEditForm()
	}
	return v.renderList()
}

func viewTitle(view models.View) string {
	switch view {
	case models.ViewReminders:
		return "Reminders"
	case models.ViewArchive:
		return "Archive"
	case models.ViewTrash:
		return "Trash"
	default:
		return "Notes"
	}
}

func (v *NotesView) renderList() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	title := s.Title.Render("keep — " + viewTitle(v.store.View()))
	if v.store.LabelFilter() != "" {
		if l, err := v.store.Label(v.store.LabelFilter()); err == nil {
			title += s.TitleMuted.Render("  (label: " + l.Name + ")")
		}
	}

	var sections []string
	sections = append(sections, title, "")

	if v.store.View() == models.ViewTrash {
		sections = append(sections, s.TitleMuted.Render("Notes in the trash are kept until the trash is emptied."), "")
	}

	notes := v.flat()
	if len(notes) == 0 {
		sections = append(sections, s.TitleMuted.Render("Nothing here. Press 'n' to create a note."))
	} else {
		v.ensureVisible(len(notes))
		// Three rows per note (two content lines + margin)
		availableHeight := max(v.height-10, 3)
		visibleItems := max(availableHeight/3, 1)
		endIdx := min(v.scrollY+visibleItems, len(notes))

		pinnedCount := len(v.proj.Pinned)
		for i := v.scrollY; i < endIdx; i++ {
			if i == 0 && pinnedCount > 0 {
				sections = append(sections, s.SectionHeader.Render("PINNED"))
			}
			if i == pinnedCount && pinnedCount > 0 {
				sections = append(sections, s.SectionHeader.Render("OTHERS"))
			}
			sections = append(sections, v.renderNoteItem(notes[i], i == v.cursor))
		}
	}

	sections = append(sections, v.renderStatusBar())

	if v.filterOpen {
		sections = append(sections, v.renderFilterDropdown())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	padded := lipgloss.NewStyle().Padding(1, 2).MaxWidth(contentWidth).Render(content)
	return styles.CenterView(padded, v.width, v.height)
}

func (v *NotesView) ensureVisible(total int) {
	availableHeight := max(v.height-10, 3)
	visibleItems := max(availableHeight/3, 1)
	if v.cursor < v.scrollY {
		v.scrollY = v.cursor
	}
	if v.cursor >= v.scrollY+visibleItems {
		v.scrollY = v.cursor - visibleItems + 1
	}
	if v.scrollY > max(0, total-1) {
		v.scrollY = max(0, total-1)
	}
}

func notePreview(n models.Note) string {
	if n.Type == models.TypeList {
		done := 0
		for _, it := range n.Items {
			if it.Checked {
				done++
			}
		}
		return fmt.Sprintf("checklist %d/%d done", done, len(n.Items))
	}
	line := n.Content
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	if line == "" {
		line = "(empty)"
	}
	return line
}

func (v *NotesView) renderNoteItem(n models.Note, selected bool) string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	width := max(contentWidth-4, 20)

	dot := lipgloss.NewStyle().Foreground(styles.NoteAccent(n.Color)).Render("●")

	titleText := n.Title
	if titleText == "" {
		titleText = notePreview(n)
	}
	titleLine := dot + " " + titleText
	if n.Pinned {
		titleLine += " " + s.NotePinned.Render("✦")
	}

	var metaParts []string
	if n.Title != "" {
		metaParts = append(metaParts, notePreview(n))
	}
	for _, lid := range n.LabelIDs {
		if l, err := v.store.Label(lid); err == nil {
			metaParts = append(metaParts, s.Label.Render("#"+l.Name))
		}
	}
	if n.Reminder != nil {
		metaParts = append(metaParts, s.TitleMuted.Render("⏰ "+n.Reminder.Format("Jan 2 15:04")))
	}
	if len(n.Image) > 0 {
		metaParts = append(metaParts, s.TitleMuted.Render("[img]"))
	}
	metaLine := strings.Join(metaParts, "  ")
	if metaLine == "" {
		metaLine = s.TitleMuted.Render("—")
	}

	var titleStyle, metaStyle lipgloss.Style
	if selected {
		titleStyle = s.ListSelected.Width(width)
		metaStyle = s.ListSelected.Width(width)
	} else {
		titleStyle = s.ListItem.Width(width)
		metaStyle = s.ListItem.Width(width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(titleLine),
		metaStyle.Render(metaLine),
	) + "\n"
}

func (v *NotesView) renderFilterDropdown() string {
	s := v.styles
	var items []string

	noneStyle := s.ListItem
	if v.filterCursor == 0 {
		noneStyle = s.ListSelected
	}
	items = append(items, noneStyle.Render("All notes"))

	for i, l := range v.labels {
		itemStyle := s.ListItem
		if v.filterCursor == i+1 {
			itemStyle = s.ListSelected
		}
		items = append(items, itemStyle.Render("#"+l.Name))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, items...)
	return v.styles.Frame.Render(content)
}

func (v *NotesView) renderStatusBar() string {
	s := v.styles
	if v.status != "" {
		if v.statusIsErr {
			return s.StatusError.Render(v.status)
		}
		return s.StatusBar.Render(v.status)
	}
	return s.Help.Render(
		fmt.Sprintf("%s new • %s edit • %s pin • %s archive • %s trash • %s filter • %s labels • %s views • %s help",
			s.HelpKey.Render("n"),
			s.HelpKey.Render("e"),
			s.HelpKey.Render("p"),
			s.HelpKey.Render("a"),
			s.HelpKey.Render("d"),
			s.HelpKey.Render("f"),
			s.HelpKey.Render("L"),
			s.HelpKey.Render("1-4"),
			s.HelpKey.Render("?"),
		),
	)
}

func (v *NotesView) renderConfirmEmpty() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("Empty Trash?"),
		"",
		s.TitleMuted.Render("All notes in the trash will be permanently deleted."),
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

func (v *NotesView) renderEditForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	formTitle := "New Note"
	if !v.editingNew {
		formTitle = "Edit Note"
	}

	titleStyle := s.Input
	bodyStyle := s.Input
	remindStyle := s.Input
	colorStyle := s.Input
	labelsStyle := s.Input
	imageStyle := s.Input
	btnStyle := s.Button

	switch v.editFocus {
	case focusTitle:
		titleStyle = s.InputFocused
	case focusBody:
		bodyStyle = s.InputFocused
	case focusReminder:
		remindStyle = s.InputFocused
	case focusColor:
		colorStyle = s.InputFocused
	case focusLabels:
		labelsStyle = s.InputFocused
	case focusImage:
		imageStyle = s.InputFocused
	case focusSave:
		btnStyle = s.ButtonFocused
	}

	inputWidth := clamp(contentWidth-6, 20, 50)

	var body string
	if v.editType == models.TypeList {
		body = bodyStyle.Width(inputWidth).Render(v.renderItemEditor())
	} else {
		body = bodyStyle.Render(v.editContent.View())
	}

	imageInfo := "Image (path, ↵ to attach):"
	if len(v.editImageData) > 0 {
		imageInfo = fmt.Sprintf("Image (%d bytes attached, ctrl+d removes):", len(v.editImageData))
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(formTitle),
		s.TitleMuted.Render("type: "+string(v.editType)+" (ctrl+t toggles)"),
		"",
		"Title:",
		titleStyle.Width(inputWidth).Render(v.editTitle.View()),
		"",
		"Note:",
		body,
		"",
		"Reminder:",
		remindStyle.Width(inputWidth).Render(v.editRemind.View()),
		"",
		"Color (←/→):",
		colorStyle.Width(inputWidth).Render(v.renderColorPicker()),
		"",
		"Labels:",
		labelsStyle.Width(inputWidth).Render(v.renderLabelPicker()),
		"",
		imageInfo,
		imageStyle.Width(inputWidth).Render(v.editImage.View()),
		"",
		btnStyle.Render(" Save "),
		"",
		s.TitleMuted.Render("Tab: next field • Ctrl+S: save • Esc: cancel"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *NotesView) renderItemEditor() string {
	s := v.styles
	var lines []string
	for i, it := range v.editItems {
		checkbox := "[ ]"
		if it.Checked {
			checkbox = "[x]"
		}
		line := checkbox + " " + it.Text
		if i == v.editItemIdx && v.editFocus == focusBody {
			line = s.ListSelected.Render(line)
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, s.TitleMuted.Render("no items yet"))
	}
	lines = append(lines, v.editItemInput.View())
	lines = append(lines, s.TitleMuted.Render("↵ add • ctrl+x check • ctrl+d remove"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v *NotesView) renderColorPicker() string {
	var dots []string
	for i, c := range styles.NotePalette {
		dot := lipgloss.NewStyle().Foreground(c.Hex).Render("●")
		if i == v.editColorIdx {
			dot = "[" + dot + "]"
		} else {
			dot = " " + dot + " "
		}
		dots = append(dots, dot)
	}
	return strings.Join(dots, "")
}

func (v *NotesView) renderLabelPicker() string {
	s := v.styles
	if len(v.labels) == 0 {
		return s.TitleMuted.Render("No labels. Press L in the list to create some.")
	}
	var lines []string
	for i, l := range v.labels {
		checkbox := "[ ]"
		for _, lid := range v.editLabelIDs {
			if lid == l.ID {
				checkbox = "[x]"
				break
			}
		}
		line := checkbox + " " + l.Name
		if i == v.editLabelCursor && v.editFocus == focusLabels {
			line = s.ListSelected.Render(line)
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v *NotesView) renderHelpPopup() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	rows := [][2]string{
		{"↑/↓", "move cursor"},
		{"shift+↑/↓", "reorder note within its group"},
		{"n", "new note"},
		{"e / ↵", "edit note"},
		{"p", "pin / unpin"},
		{"a", "archive / unarchive"},
		{"d", "move to trash"},
		{"u", "restore from trash"},
		{"D", "delete forever (trash view)"},
		{"E", "empty trash (trash view)"},
		{"f", "filter by label"},
		{"L", "edit labels"},
		{"1/2/3/4", "notes / reminders / archive / trash"},
		{"q", "quit"},
	}

	var lines []string
	for _, r := range rows {
		lines = append(lines, s.HelpKey.Render(fmt.Sprintf("%-12s", r[0]))+s.HelpDesc.Render(r[1]))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Keyboard"),
		"",
		lipgloss.JoinVertical(lipgloss.Left, lines...),
		"",
		s.TitleMuted.Render("press any key to close"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.Frame.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}
