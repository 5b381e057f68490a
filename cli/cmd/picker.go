package cmd

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// maxPickerRows limits how many candidates the picker displays at once.
const maxPickerRows = 10

//nolint:gochecknoglobals
var (
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	matchedStyle  = lipgloss.NewStyle().Underline(true)
)

// pickVariable presents an interactive fuzzy picker over the given variable
// names. It returns the selected name, or the empty string when the picker
// is dismissed without a selection.
//
// The picker renders to stderr so stdout remains free for report output.
func pickVariable(ctx context.Context, keys []string) (string, error) {
	program := tea.NewProgram(
		newPicker(keys),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	)

	final, err := program.Run()
	if err != nil {
		return "", err
	}

	picker, _ := final.(pickerModel)

	return picker.choice, nil
}

// candidate is one row of the picker list with its fuzzy-matched runes.
type candidate struct {
	key     string
	indexes []int
}

type pickerModel struct {
	input   textinput.Model
	keys    []string
	visible []candidate
	cursor  int
	choice  string
}

func newPicker(keys []string) pickerModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "type to filter"
	input.Focus()

	m := pickerModel{input: input, keys: keys}
	m.refilter()

	return m
}

func (pickerModel) Init() tea.Cmd { return textinput.Blink }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.cursor < len(m.visible) {
				m.choice = m.visible[m.cursor].key
			}

			return m, tea.Quit

		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}

			return m, nil

		case tea.KeyDown:
			if m.cursor+1 < len(m.visible) {
				m.cursor++
			}

			return m, nil
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.refilter()

	return m, cmd
}

// refilter rebuilds the visible candidate list from the current query.
// An empty query shows every variable in declaration order.
func (m *pickerModel) refilter() {
	query := m.input.Value()

	var visible []candidate

	if query == "" {
		for _, key := range m.keys {
			visible = append(visible, candidate{key: key})
		}
	} else {
		for _, match := range fuzzy.Find(query, m.keys) {
			visible = append(visible, candidate{
				key:     match.Str,
				indexes: match.MatchedIndexes,
			})
		}
	}

	if len(visible) > maxPickerRows {
		visible = visible[:maxPickerRows]
	}

	m.visible = visible
	if m.cursor >= len(visible) {
		m.cursor = max(len(visible)-1, 0)
	}
}

func (m pickerModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.input.View())
	sb.WriteString("\n")

	for i, row := range m.visible {
		line := highlightMatch(row)
		if i == m.cursor {
			sb.WriteString(selectedStyle.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}

		sb.WriteString("\n")
	}

	if len(m.visible) == 0 {
		fmt.Fprintln(&sb, dimStyle.Render("  no matches"))
	}

	sb.WriteString(dimStyle.Render("enter: select, esc: cancel"))
	sb.WriteString("\n")

	return sb.String()
}

// highlightMatch underlines the runes of key matched by the current query.
func highlightMatch(row candidate) string {
	if len(row.indexes) == 0 {
		return row.key
	}

	var sb strings.Builder

	for i, r := range row.key {
		if slices.Contains(row.indexes, i) {
			sb.WriteString(matchedStyle.Render(string(r)))
		} else {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
