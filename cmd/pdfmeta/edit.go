package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	pdfmetadata "github.com/afmiguel/pdf-metadata"
)

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Edit metadata interactively",
	Long: `Edit opens an interactive menu to list, create, change, rename and
delete Info dictionary entries. Values containing non-ASCII characters
are stored as tagged UTF-16BE base64 automatically. When stdin is not a
terminal the metadata is listed once instead.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			entries, err := pdfmetadata.GetMetadata(path)
			if err != nil {
				fatal(fmt.Sprintf("reading %s", path), err)
			}
			printPlain(fileMetadata{File: path, Entries: entries})
			return
		}

		m, err := newEditModel(path)
		if err != nil {
			fatal(fmt.Sprintf("reading %s", path), err)
		}
		if _, err := tea.NewProgram(m).Run(); err != nil {
			fatal("running editor", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}

// --- TUI model ---

type editState int

const (
	stateMenu editState = iota
	statePickKey
	stateInputKey
	stateInputValue
	stateInputNewKey
)

type editAction int

const (
	actionCreate editAction = iota
	actionEdit
	actionRename
	actionDelete
)

var menuItems = []string{
	"List metadata",
	"Create entry",
	"Edit entry",
	"Rename key",
	"Delete entry",
	"Quit",
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
	entryKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

type editModel struct {
	path    string
	entries []pdfmetadata.Entry

	state    editState
	action   editAction
	cursor   int
	selected string
	input    textinput.Model

	status string
	err    error
}

func newEditModel(path string) (*editModel, error) {
	entries, err := pdfmetadata.GetMetadata(path)
	if err != nil {
		return nil, err
	}
	ti := textinput.New()
	ti.CharLimit = 256
	return &editModel{path: path, entries: entries, input: ti}, nil
}

func (m *editModel) Init() tea.Cmd {
	return nil
}

func (m *editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case stateMenu:
		return m.updateMenu(keyMsg)
	case statePickKey:
		return m.updatePickKey(keyMsg)
	default:
		return m.updateInput(keyMsg)
	}
}

func (m *editModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "enter":
		m.status = ""
		m.err = nil
		switch m.cursor {
		case 0: // list is always visible; just refresh
			m.reload()
		case 1:
			m.action = actionCreate
			m.startInput(stateInputKey, "key", "")
		case 2:
			m.action = actionEdit
			return m.startPick()
		case 3:
			m.action = actionRename
			return m.startPick()
		case 4:
			m.action = actionDelete
			return m.startPick()
		case 5:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *editModel) updatePickKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.entries) == 0 {
			m.state = stateMenu
			m.cursor = 0
			return m, nil
		}
		m.selected = m.entries[m.cursor].Key
		switch m.action {
		case actionEdit:
			m.startInput(stateInputValue, "new value", m.entries[m.cursor].Value)
		case actionRename:
			m.startInput(stateInputNewKey, "new key", "")
		case actionDelete:
			m.apply(func() error {
				return pdfmetadata.DeleteMetadataInPlace(m.path, m.selected)
			}, fmt.Sprintf("Deleted %q", m.selected))
			m.state = stateMenu
			m.cursor = 0
		}
	}
	return m, nil
}

func (m *editModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateMenu
		m.cursor = 0
		return m, nil
	case "enter":
		value := m.input.Value()
		switch m.state {
		case stateInputKey:
			if value == "" {
				return m, nil
			}
			m.selected = value
			m.startInput(stateInputValue, "value", "")
			return m, nil
		case stateInputValue:
			m.apply(func() error {
				return pdfmetadata.UpdateMetadataInPlace(m.path, m.selected, encodeForStorage(value))
			}, fmt.Sprintf("Set %q", m.selected))
		case stateInputNewKey:
			if value == "" {
				return m, nil
			}
			m.apply(func() error {
				return pdfmetadata.RenameMetadataKey(m.path, m.selected, value)
			}, fmt.Sprintf("Renamed %q to %q", m.selected, value))
		}
		m.state = stateMenu
		m.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *editModel) View() string {
	s := titleStyle.Render(m.path) + "\n\n"
	s += m.renderEntries()

	switch m.state {
	case stateMenu:
		s += "\n"
		for i, item := range menuItems {
			cursor := "  "
			if i == m.cursor {
				cursor = cursorStyle.Render("> ")
			}
			s += cursor + item + "\n"
		}
		s += "\n" + helpStyle.Render("j/k move, enter select, q quit") + "\n"
	case statePickKey:
		s += "\n" + "Select a key:" + "\n"
		for i, e := range m.entries {
			cursor := "  "
			if i == m.cursor {
				cursor = cursorStyle.Render("> ")
			}
			s += cursor + e.Key + "\n"
		}
		s += "\n" + helpStyle.Render("j/k move, enter select, esc back") + "\n"
	default:
		s += "\n" + m.input.View() + "\n"
		s += helpStyle.Render("enter confirm, esc cancel") + "\n"
	}

	if m.err != nil {
		s += "\n" + errorStyle.Render("Error: "+m.err.Error()) + "\n"
	} else if m.status != "" {
		s += "\n" + statusStyle.Render(m.status) + "\n"
	}
	return s
}

func (m *editModel) renderEntries() string {
	if len(m.entries) == 0 {
		return helpStyle.Render("(no Info dictionary entries)") + "\n"
	}
	var s string
	for i, e := range m.entries {
		s += fmt.Sprintf("%2d. %s: %s\n", i+1, entryKeyStyle.Render(fmt.Sprintf("%-20s", e.Key)), e.Value)
	}
	return s
}

func (m *editModel) startPick() (tea.Model, tea.Cmd) {
	if len(m.entries) == 0 {
		m.status = "No entries to select"
		return m, nil
	}
	m.state = statePickKey
	m.cursor = 0
	return m, nil
}

func (m *editModel) startInput(state editState, placeholder, initial string) {
	m.state = state
	m.input.Placeholder = placeholder
	m.input.SetValue(initial)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *editModel) apply(op func() error, okStatus string) {
	if err := op(); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.status = okStatus
	m.reload()
}

func (m *editModel) reload() {
	entries, err := pdfmetadata.GetMetadata(m.path)
	if err != nil {
		m.err = err
		return
	}
	m.entries = entries
}

// encodeForStorage pre-encodes values with non-ASCII characters as
// tagged UTF-16BE so they round-trip byte-exactly.
func encodeForStorage(value string) string {
	for _, r := range value {
		if r > 0x7F {
			return pdfmetadata.TagUTF16BE(value)
		}
	}
	return value
}
