package settings

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/blocksmith/internal/constants"
	"github.com/julianstephens/blocksmith/internal/models"
)

func TestKeysEmitMessages(t *testing.T) {
	m := New(models.DefaultSettings(), "/tmp/blocksmith.db", 80, 24)

	tests := []struct {
		key  string
		want tea.Msg
	}{
		{"t", ToggleThemeMsg{}},
		{"m", CycleModeMsg{}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)})
			if cmd == nil {
				t.Fatalf("key %q produced no command", tt.key)
			}
			if got := cmd(); got != tt.want {
				t.Errorf("cmd() = %#v, want %#v", got, tt.want)
			}
		})
	}

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}); cmd != nil {
		t.Error("unbound key should do nothing")
	}
}

func TestView(t *testing.T) {
	s := models.DefaultSettings()
	s.Theme = constants.ThemeLight
	m := New(s, "/tmp/blocksmith.db", 100, 30)
	m.SetStatus("Saved")

	out := m.View()
	for _, want := range []string{"light", "date", "Local", "/tmp/blocksmith.db", "Saved"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	if New(s, "", 0, 0).View() != "" {
		t.Error("unsized view should be empty")
	}
}
