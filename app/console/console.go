// Package console is the simulator's terminal UI. It mirrors the panels as
// text and turns bound key presses into button edges.
package console

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Black-And-White-Club/pingpong-scoreboard/app/debounce"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/display"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/input"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/shared/attr"
	tea "github.com/charmbracelet/bubbletea"
)

// RedrawMsg is sent after any attached panel is displayed.
type RedrawMsg struct{}

// StoppedMsg tells the UI the scoreboard has stopped. Err is nil on a clean stop.
type StoppedMsg struct {
	Err error
}

// Model is a tea.Model over the attached panels.
type Model struct {
	ctx    context.Context
	logger *slog.Logger
	sink   input.EdgeSink
	keys   map[rune]debounce.Line
	help   string
	term   *display.Terminal
	redraw chan struct{}
	err    error
}

// New feeds key presses bound in bindings to sink. Redraw waits end when ctx is done.
func New(ctx context.Context, logger *slog.Logger, sink input.EdgeSink, bindings []input.Binding) *Model {
	hints := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		if b.Key != 0 {
			hints = append(hints, fmt.Sprintf("%c %s", b.Key, b.Name))
		}
	}
	hints = append(hints, "esc quit")

	return &Model{
		ctx:    ctx,
		logger: logger,
		sink:   sink,
		keys:   input.ByKey(bindings),
		help:   strings.Join(hints, "  "),
		term:   display.NewTerminal(),
		redraw: make(chan struct{}, 1),
	}
}

// Attach mirrors fb in the view. Bursts of displays collapse into one redraw.
func (m *Model) Attach(name string, fb *display.Framebuffer) {
	m.term.Add(name, fb)
	fb.OnDisplay(func(*display.Framebuffer) {
		select {
		case m.redraw <- struct{}{}:
		default:
		}
	})
}

// Err returns the error the scoreboard stopped with, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Init() tea.Cmd {
	return m.waitForRedraw
}

func (m *Model) waitForRedraw() tea.Msg {
	select {
	case <-m.redraw:
		return RedrawMsg{}
	case <-m.ctx.Done():
		return nil
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				line, ok := m.keys[r]
				if !ok {
					continue
				}
				m.logger.DebugContext(m.ctx, "Key pressed", attr.String("key", string(r)), attr.Line(line.String()))
				m.sink.Edge(line)
			}
		}
	case RedrawMsg:
		return m, m.waitForRedraw
	case StoppedMsg:
		m.err = msg.Err
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.term.Render())
	b.WriteByte('\n')
	if m.err != nil {
		fmt.Fprintf(&b, "stopped: %v\n", m.err)
	}
	b.WriteString(m.help)
	b.WriteByte('\n')
	return b.String()
}
