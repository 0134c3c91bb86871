package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avasilyev/chainpop/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"up", core.ActionUp, false},
		{"w", core.ActionUp, false},
		{"k", core.ActionUp, false},
		{"down", core.ActionDown, false},
		{"left", core.ActionLeft, false},
		{"h", core.ActionLeft, false},
		{"right", core.ActionRight, false},
		{"l", core.ActionRight, false},
		{" ", core.ActionSelect, false},
		{"enter", core.ActionConfirm, false},
		{"esc", core.ActionBack, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			var msg tea.KeyMsg
			switch tc.key {
			case " ":
				msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
			case "up":
				msg = tea.KeyMsg{Type: tea.KeyUp}
			case "down":
				msg = tea.KeyMsg{Type: tea.KeyDown}
			case "left":
				msg = tea.KeyMsg{Type: tea.KeyLeft}
			case "right":
				msg = tea.KeyMsg{Type: tea.KeyRight}
			case "enter":
				msg = tea.KeyMsg{Type: tea.KeyEnter}
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tc.key)}
			}

			action, quit := km.MapKey(msg)
			if action != tc.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tc.key, action, tc.action)
			}
			if quit != tc.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tc.key, quit, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, &frame) {
		t.Error("Space should not be a quit request")
	}
	if !frame.Has(core.ActionSelect) {
		t.Error("Expected ActionSelect in frame after space")
	}

	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame) {
		t.Error("Ctrl+C should be a quit request")
	}
}
