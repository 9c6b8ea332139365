package main

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		name    string
		keys    []string
		answer  bool
		done    bool
		aborted bool
	}{
		{"yes", []string{"y"}, true, true, false},
		{"no", []string{"N"}, false, true, false},
		{"asks again on other keys", []string{"x", "enter", "tab"}, false, false, false},
		{"answer after stray key", []string{"q", "Y"}, true, true, false},
		{"escape", []string{"esc"}, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = confirmModel{question: "Create it?"}
			for _, k := range tt.keys {
				m, _ = m.Update(key(k))
			}
			cm := m.(confirmModel)
			if cm.answer != tt.answer || cm.done != tt.done || cm.aborted != tt.aborted {
				t.Errorf("model = %+v", cm)
			}
		})
	}
}

func TestInputModel_placeholderDefault(t *testing.T) {
	ti := textinput.New()
	ti.Placeholder = "myproject"
	ti.Focus()
	var m tea.Model = inputModel{textInput: ti, title: "Project name", validate: projectNameValidator}

	m, _ = m.Update(key("enter"))
	im := m.(inputModel)
	if !im.done || im.value() != "myproject" {
		t.Errorf("done=%v value=%q", im.done, im.value())
	}
}

func TestInputModel_validation(t *testing.T) {
	ti := textinput.New()
	ti.Focus()
	var m tea.Model = inputModel{textInput: ti, title: "Project name", validate: projectNameValidator}

	m, _ = m.Update(key("enter"))
	im := m.(inputModel)
	if im.done || im.errMsg == "" {
		t.Errorf("empty name accepted: %+v", im)
	}
}

func TestProjectNameValidator(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"myapp", false},
		{"  spaced  ", false},
		{"", true},
		{"..", true},
		{"a/b", true},
		{`a\b`, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if err := projectNameValidator(tt.in); (err != nil) != tt.wantErr {
				t.Errorf("projectNameValidator(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}
