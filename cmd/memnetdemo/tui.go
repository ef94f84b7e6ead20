package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lucidmesh/memnet/network"
)

var (
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	negStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	labelStyle = lipgloss.NewStyle().Width(10).Align(lipgloss.Right)
	headStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
)

type tickMsg time.Time

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// dashboard is the bubbletea model driving the live view. It polls the
// network's public surface on every tick rather than subscribing to sinks,
// since the network may outlive any particular dashboard render.
type dashboard struct {
	n        *network.Network
	units    []string
	width    int
	quitting bool
}

func newDashboard(n *network.Network) dashboard {
	return dashboard{n: n, units: n.UnitsNames(), width: 40}
}

func (d dashboard) Init() tea.Cmd {
	return tickEvery(60 * time.Millisecond)
}

func (d dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			d.quitting = true
			return d, tea.Quit
		}
	case tea.WindowSizeMsg:
		d.width = msg.Width
	case tickMsg:
		return d, tickEvery(60 * time.Millisecond)
	}
	return d, nil
}

func (d dashboard) View() string {
	if d.quitting {
		return ""
	}
	var b strings.Builder
	fmt.Fprintln(&b, headStyle.Render("memnetdemo — live activations (q to quit)"))
	fmt.Fprintf(&b, "elapsed: %v   frequency: %d Hz\n\n", time.Duration(d.n.ElapsedTime())*time.Microsecond, d.n.Frequency())

	acts := d.n.Activations()
	for i, name := range d.units {
		if i >= len(acts) {
			continue
		}
		fmt.Fprintln(&b, renderBar(name, acts[i]))
	}
	return b.String()
}

// renderBar draws one unit's activation as a horizontal bar scaled to the
// [-1, 1] range most demo configurations stay within; activations outside
// that range still render, just clipped at the edge of the bar.
func renderBar(name string, level float64) string {
	const width = 20
	filled := int((level + 1) / 2 * width)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	style := barStyle
	if level < 0 {
		style = negStyle
	}
	return fmt.Sprintf("%s %s %.2f", labelStyle.Render(name), style.Render(bar), level)
}
