package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Fus3n/python-project-manager/internal/prompt"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

var errAborted = errors.New("user aborted")

// inputModel reads one line of text, falling back to its placeholder.
type inputModel struct {
	textInput textinput.Model
	title     string
	validate  func(string) error
	errMsg    string
	done      bool
	aborted   bool
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			if err := m.validate(m.value()); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		}
	}
	m.errMsg = ""
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) value() string {
	if v := strings.TrimSpace(m.textInput.Value()); v != "" {
		return v
	}
	return m.textInput.Placeholder
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	view := titleStyle.Render(m.title) + "\n" + m.textInput.View() + "\n"
	if m.errMsg != "" {
		view += errStyle.Render(m.errMsg) + "\n"
	}
	return view
}

// confirmModel waits for y or n; any other key leaves the question open.
type confirmModel struct {
	question string
	answer   bool
	done     bool
	aborted  bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(k.String()) {
	case "ctrl+c", "esc":
		m.aborted = true
	case "y":
		m.answer, m.done = true, true
	case "n":
		m.answer, m.done = false, true
	default:
		return m, nil
	}
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return titleStyle.Render(m.question) + " [y/n] "
}

// runModel runs m to completion and returns its final state.
func runModel[M tea.Model](m M) (M, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return m, err
	}
	return final.(M), nil
}

func promptInput(title, placeholder string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	m, err := runModel(inputModel{textInput: ti, title: title, validate: validate})
	if err != nil {
		return "", err
	}
	if m.aborted {
		return "", errAborted
	}
	return m.value(), nil
}

// teaConfirmer asks yes/no questions on the terminal.
type teaConfirmer struct{}

func (teaConfirmer) Confirm(question string) (bool, error) {
	m, err := runModel(confirmModel{question: question})
	if err != nil {
		return false, err
	}
	if m.aborted {
		return false, errAborted
	}
	return m.answer, nil
}

// isInteractive reports whether the command reads from a terminal.
func isInteractive(cmd *cobra.Command) bool {
	return cmd.InOrStdin() == os.Stdin && term.IsTerminal(int(os.Stdin.Fd()))
}

// confirmer picks how yes/no questions are answered: --yes, a terminal
// prompt, or lines read from stdin.
func confirmer(cmd *cobra.Command, attempts int) prompt.Confirmer {
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return prompt.Always(true)
	}
	if isInteractive(cmd) {
		return teaConfirmer{}
	}
	return prompt.NewLineConfirmer(cmd.InOrStdin(), cmd.OutOrStdout(), attempts)
}

// projectNameValidator rejects names that cannot be a project name.
func projectNameValidator(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("project name is required")
	}
	if s == "." || s == ".." || strings.ContainsAny(s, `/\`) {
		return fmt.Errorf("invalid project name %q", s)
	}
	return nil
}
