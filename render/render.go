package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridwalk/grid"
)

// Overlay lists what to draw on top of the grid. Later layers win:
// Visited, then Path, then Agent.
type Overlay struct {
	Visited []grid.Position
	Path    []grid.Position
	Agent   *grid.State
}

// Theme holds one style per cell class.
type Theme struct {
	Wall    lipgloss.Style
	Floor   lipgloss.Style
	Marker  lipgloss.Style
	Visited lipgloss.Style
	Path    lipgloss.Style
	Agent   lipgloss.Style
}

// DefaultTheme dims walls and floor, and highlights overlays.
func DefaultTheme() Theme {
	return Theme{
		Wall:    lipgloss.NewStyle().Foreground(lipgloss.Color("#5c6370")),
		Floor:   lipgloss.NewStyle().Foreground(lipgloss.Color("#3e4451")),
		Marker:  lipgloss.NewStyle().Foreground(lipgloss.Color("#e5c07b")).Bold(true),
		Visited: lipgloss.NewStyle().Foreground(lipgloss.Color("#61afef")),
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")).Bold(true),
		Agent:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")).Bold(true),
	}
}

// Options configures Render.
type Options struct {
	Plain     bool
	Theme     Theme
	PathMark  byte
	VisitMark byte
}

// Option represents a functional option for configuring Render.
type Option func(*Options)

// DefaultOptions returns styled output marking the path with 'O' and
// visited cells with 'X'.
func DefaultOptions() Options {
	return Options{Theme: DefaultTheme(), PathMark: 'O', VisitMark: 'X'}
}

// WithPlain disables styling.
func WithPlain() Option {
	return func(o *Options) { o.Plain = true }
}

// WithTheme replaces the default theme.
func WithTheme(t Theme) Option {
	return func(o *Options) { o.Theme = t }
}

// WithMarks sets the characters drawn for path and visited cells.
// A zero byte keeps the cell's own character and only restyles it.
func WithMarks(path, visited byte) Option {
	return func(o *Options) {
		o.PathMark, o.VisitMark = path, visited
	}
}

type class uint8

const (
	classFloor class = iota
	classWall
	classMarker
	classVisited
	classPath
	classAgent
)

type cell struct {
	ch    byte
	class class
}

// Render returns g with ov applied, one line per row. Overlay positions
// outside the grid are ignored.
func Render(g *grid.Grid, ov Overlay, opts ...Option) string {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	cells := make([][]cell, g.Height)
	for r, row := range g.Rows() {
		cells[r] = make([]cell, g.Width)
		for c := 0; c < g.Width; c++ {
			cells[r][c] = cell{ch: row[c], class: classify(row[c])}
		}
	}

	paint := func(ps []grid.Position, mark byte, cl class) {
		for _, p := range ps {
			if !g.InBounds(p) {
				continue
			}
			x := &cells[p.Row][p.Col]
			if mark != 0 {
				x.ch = mark
			}
			x.class = cl
		}
	}
	paint(ov.Visited, cfg.VisitMark, classVisited)
	paint(ov.Path, cfg.PathMark, classPath)
	if ov.Agent != nil && g.InBounds(ov.Agent.Pos) {
		cells[ov.Agent.Pos.Row][ov.Agent.Pos.Col] = cell{ch: ov.Agent.Dir.Arrow(), class: classAgent}
	}

	lines := make([]string, g.Height)
	for r, row := range cells {
		lines[r] = cfg.line(row)
	}
	return strings.Join(lines, "\n")
}

func classify(c byte) class {
	switch c {
	case grid.Wall:
		return classWall
	case grid.Open:
		return classFloor
	}
	return classMarker
}

// line renders one row, grouping consecutive cells of equal class.
func (o Options) line(row []cell) string {
	var b strings.Builder
	for i := 0; i < len(row); {
		j := i
		var run strings.Builder
		for j < len(row) && row[j].class == row[i].class {
			run.WriteByte(row[j].ch)
			j++
		}
		if o.Plain {
			b.WriteString(run.String())
		} else {
			b.WriteString(o.style(row[i].class).Render(run.String()))
		}
		i = j
	}
	return b.String()
}

func (o Options) style(cl class) lipgloss.Style {
	switch cl {
	case classWall:
		return o.Theme.Wall
	case classMarker:
		return o.Theme.Marker
	case classVisited:
		return o.Theme.Visited
	case classPath:
		return o.Theme.Path
	case classAgent:
		return o.Theme.Agent
	}
	return o.Theme.Floor
}
