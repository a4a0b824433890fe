package display

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"piano-fingering/note"
	"piano-fingering/pipeline"
)

var (
	primaryColor = lipgloss.Color("#00FFFF")
	accentColor  = lipgloss.Color("#00FF00")
	dimColor     = lipgloss.Color("#666666")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))

	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	fingerStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).Width(3).Align(lipgloss.Center)

	currentRowStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)

	rowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))

	dimStyle = lipgloss.NewStyle().Foreground(dimColor)
)

const pageSize = 20

// row is one displayed line: a note's pitch, finger, hand, and reasons, or
// a segment boundary marker.
type row struct {
	isSegment bool
	segment   pipeline.MergedSegment
	index     int
	n         note.Note
	finger    int
	reasons   []string
}

// BrowserModel is the Bubbletea model for paging through a fingering
// analysis one note at a time, styled after the teacher's live TUI.
type BrowserModel struct {
	title    string
	rows     []row
	cursor   int
	top      int
	width    int
	height   int
	quitting bool
}

// NewBrowserModel builds a flat, cursor-navigable view over an analysis
// result: notes in order, with segment boundaries interleaved.
func NewBrowserModel(title string, notes []note.Note, result pipeline.Result) *BrowserModel {
	var rows []row
	segAt := make(map[[2]int]pipeline.MergedSegment)
	for _, seg := range result.Segments {
		segAt[[2]int{int(seg.Hand), seg.StartIndex}] = seg
	}

	idx := 0
	handPos := map[note.Hand]int{}
	for i, n := range notes {
		if n.IsRest {
			continue
		}
		if seg, ok := segAt[[2]int{int(n.Hand), handPos[n.Hand]}]; ok {
			rows = append(rows, row{isSegment: true, segment: seg})
		}
		handPos[n.Hand]++
		if idx >= len(result.Fingers) {
			continue
		}
		rows = append(rows, row{index: i, n: n, finger: result.Fingers[idx], reasons: result.Reasons[idx]})
		idx++
	}

	return &BrowserModel{title: title, rows: rows, width: 100, height: 30}
}

func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "pgup":
			m.cursor -= pageSize
			if m.cursor < 0 {
				m.cursor = 0
			}
		case "pgdown":
			m.cursor += pageSize
			if m.cursor >= len(m.rows) {
				m.cursor = len(m.rows) - 1
			}
		case "home":
			m.cursor = 0
		case "end":
			m.cursor = len(m.rows) - 1
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	if m.cursor < m.top {
		m.top = m.cursor
	}
	if m.cursor >= m.top+pageSize {
		m.top = m.cursor - pageSize + 1
	}

	return m, nil
}

func (m *BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(" " + m.title))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf(" %d entries", len(m.rows))))
	b.WriteString("\n\n")

	end := m.top + pageSize
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.top; i < end; i++ {
		r := m.rows[i]
		if r.isSegment {
			line := fmt.Sprintf(" -- %s %s segment [%d-%d] confidence=%.2f --",
				r.segment.Hand, r.segment.Type, r.segment.StartIndex, r.segment.EndIndex, r.segment.Confidence)
			b.WriteString(dimStyle.Render(line))
			b.WriteString("\n")
			continue
		}

		style := rowStyle
		if i == m.cursor {
			style = currentRowStyle
		}
		pitchLabel := fmt.Sprintf("%-3s%-2d", note.StepName(r.n.PitchClass()), r.n.Octave())
		line := fmt.Sprintf(" %4d  %s  %s  %s",
			r.index, pitchLabel, fingerStyle.Render(fmt.Sprintf("%d", r.finger)), strings.Join(r.reasons, "; "))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("  [up/down/pgup/pgdown] navigate  [q] quit"))
	return b.String()
}

// IsQuitting reports whether the user exited the browser.
func (m *BrowserModel) IsQuitting() bool {
	return m.quitting
}
