// Package tui provides a terminal replay viewer for recorded traces.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/nmulberry/ode-event-solvers/internal/hybrid"
)

const (
	graphWidth  = 72
	graphHeight = 12
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model replays a completed run sample by sample.
type Model struct {
	modelName string
	times     []float64
	states    []hybrid.State
	playHead  int
	selected  int
	running   bool
}

func NewModel(modelName string, times []float64, states []hybrid.State) Model {
	return Model{
		modelName: modelName,
		times:     times,
		states:    states,
		running:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/10, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.playHead = 0
		case "[":
			if m.playHead > 0 {
				m.playHead--
			}
		case "]":
			if m.playHead < len(m.times)-1 {
				m.playHead++
			}
		case "tab":
			if len(m.states) > 0 && len(m.states[0]) > 0 {
				m.selected = (m.selected + 1) % len(m.states[0])
			}
		}
	case TickMsg:
		if m.running && m.playHead < len(m.times)-1 {
			m.playHead++
		}
		return m, tea.Tick(time.Second/10, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.states) == 0 {
		return "no trace data\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s  sample %d/%d", m.modelName, m.playHead+1, len(m.times))))
	b.WriteString("\n")

	data := make([]float64, 0, m.playHead+1)
	for i := 0; i <= m.playHead && i < len(m.states); i++ {
		if m.selected < len(m.states[i]) {
			data = append(data, m.states[i][m.selected])
		}
	}
	if len(data) == 0 {
		data = []float64{0}
	}
	if len(data) == 1 {
		data = append(data, data[0])
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption(fmt.Sprintf("y%d vs time", m.selected)),
	)
	b.WriteString(graphStyle.Render(graph))
	b.WriteString("\n")

	cur := m.states[m.playHead]
	b.WriteString(labelStyle.Render("time") + valueStyle.Render(fmt.Sprintf("%.3f", m.times[m.playHead])) + "\n")
	for i, v := range cur {
		if i >= 6 {
			break
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("y%d", i)) + valueStyle.Render(fmt.Sprintf("%.6f", v)) + "\n")
	}

	b.WriteString(helpStyle.Render("space play/pause  [ ] scrub  tab variable  r restart  q quit"))
	b.WriteString("\n")
	return b.String()
}

// Run starts the replay viewer and blocks until the user quits.
func Run(modelName string, times []float64, states []hybrid.State) error {
	p := tea.NewProgram(NewModel(modelName, times, states))
	_, err := p.Run()
	return err
}
