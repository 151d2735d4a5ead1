// Package theme holds the light and dark lipgloss palettes.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/blocksmith/internal/constants"
)

// Palette is the set of styles every view renders with.
type Palette struct {
	Name constants.Theme

	Accent   lipgloss.Color
	Muted    lipgloss.Color
	Text     lipgloss.Color
	Surface  lipgloss.Color
	Selected lipgloss.Color
	Danger   lipgloss.Color
	Warning  lipgloss.Color

	Title       lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Help        lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Box         lipgloss.Style
	Field       lipgloss.Style
	FieldFocus  lipgloss.Style
	Cell        lipgloss.Style
	CellOut     lipgloss.Style
	CellToday   lipgloss.Style
	CellPicked  lipgloss.Style
	CellCursor  lipgloss.Style
	CellOff     lipgloss.Style
	Error       lipgloss.Style
	Warn        lipgloss.Style
}

type colors struct {
	accent, muted, text, surface, selected, danger, warning string
}

var (
	dark = colors{
		accent:   "205",
		muted:    "240",
		text:     "252",
		surface:  "236",
		selected: "62",
		danger:   "196",
		warning:  "214",
	}
	light = colors{
		accent:   "125",
		muted:    "245",
		text:     "235",
		surface:  "254",
		selected: "33",
		danger:   "160",
		warning:  "166",
	}
)

// For returns the palette for t. Unknown themes get the dark palette.
func For(t constants.Theme) Palette {
	c := dark
	name := constants.ThemeDark
	if t == constants.ThemeLight {
		c, name = light, constants.ThemeLight
	}
	return build(name, c)
}

func build(name constants.Theme, c colors) Palette {
	p := Palette{
		Name:     name,
		Accent:   lipgloss.Color(c.accent),
		Muted:    lipgloss.Color(c.muted),
		Text:     lipgloss.Color(c.text),
		Surface:  lipgloss.Color(c.surface),
		Selected: lipgloss.Color(c.selected),
		Danger:   lipgloss.Color(c.danger),
		Warning:  lipgloss.Color(c.warning),
	}

	p.Title = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	p.Label = lipgloss.NewStyle().Foreground(p.Muted)
	p.Value = lipgloss.NewStyle().Foreground(p.Text).Bold(true)
	p.Help = lipgloss.NewStyle().Foreground(p.Muted).Italic(true)

	p.ActiveTab = lipgloss.NewStyle().
		Foreground(p.Accent).
		Background(p.Surface).
		Padding(0, 1).
		Bold(true)
	p.InactiveTab = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 1)

	p.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Selected).
		Padding(0, 1)
	p.Field = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Muted).
		Padding(0, 1).
		Width(28)
	p.FieldFocus = p.Field.BorderForeground(p.Accent)

	p.Cell = lipgloss.NewStyle().Foreground(p.Text).Width(4).Align(lipgloss.Center)
	p.CellOut = p.Cell.Foreground(p.Muted).Faint(true)
	p.CellToday = p.Cell.Underline(true).Bold(true)
	p.CellPicked = p.Cell.Background(p.Selected).Foreground(lipgloss.Color("255"))
	p.CellCursor = p.Cell.Reverse(true)
	p.CellOff = p.Cell.Foreground(p.Muted).Strikethrough(true)

	p.Error = lipgloss.NewStyle().Foreground(p.Danger).Bold(true)
	p.Warn = lipgloss.NewStyle().Foreground(p.Warning).Italic(true)
	return p
}
