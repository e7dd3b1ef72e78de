package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"apexts/internal/buildpipeline"
)

const statusWidth = 10

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	summaryStyle = lipgloss.NewStyle().Faint(true)
	statusStyles = map[string]lipgloss.Style{
		"done":    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"cached":  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"skipped": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"error":   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
	workingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	idleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	// порядок в строке итогов
	summaryOrder = []string{"done", "cached", "skipped", "error"}

	stageLabels = map[buildpipeline.Stage]string{
		buildpipeline.StageDiscover: "discovering",
		buildpipeline.StageLoad:     "loading",
		buildpipeline.StageParse:    "parsing",
		buildpipeline.StageEmit:     "emitting",
		buildpipeline.StageWrite:    "writing",
	}
	// доля работы над файлом, выполненная к началу стадии
	stageWeights = map[buildpipeline.Stage]float64{
		buildpipeline.StageLoad:  0.2,
		buildpipeline.StageParse: 0.5,
		buildpipeline.StageEmit:  0.9,
	}
)

type progressModel struct {
	title      string
	events     <-chan buildpipeline.Event
	spinner    spinner.Model
	bar        progress.Model
	files      []fileItem
	byPath     map[string]int
	stageLabel string
	width      int
	done       bool
}

type fileItem struct {
	path     string
	status   string
	stage    buildpipeline.Stage
	terminal bool
}

type eventMsg buildpipeline.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders per-file conversion
// progress; it quits when events is closed.
func NewProgressModel(title string, files []string, events <-chan buildpipeline.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = workingStyle

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 76

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     bar,
		files:   make([]fileItem, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	for i, file := range files {
		m.files[i] = fileItem{path: file, status: "queued"}
		m.byPath[file] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.applyEvent(buildpipeline.Event(msg)), m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		// конвейер продолжит работу; вызывающий дочитает канал сам
		switch msg.String() {
		case "ctrl+c", "q":
			m.done = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.files) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.header()))
	b.WriteString("\n\n")

	nameWidth := max(m.width-statusWidth-4, 20)
	for _, item := range m.files {
		fmt.Fprintf(&b, "  %s %s\n",
			styleStatus(item.status).Render(fmt.Sprintf("%*s", statusWidth, item.status)),
			truncate(item.path, nameWidth))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.bar.ViewAs(1.0))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	if sum := m.summary(); sum != "" {
		b.WriteString(summaryStyle.Render(sum))
		b.WriteString("\n")
	}
	return b.String()
}

// header: "⣾ apexts gen (parsing) [3/10]"
func (m *progressModel) header() string {
	h := m.title
	if m.stageLabel != "" {
		h = fmt.Sprintf("%s (%s)", h, m.stageLabel)
	}
	h = fmt.Sprintf("%s [%d/%d]", h, m.finished(), len(m.files))
	if m.done {
		return "done: " + h
	}
	return m.spinner.View() + " " + h
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

// applyEvent: событие без File меняет стадию всего прогона.
func (m *progressModel) applyEvent(ev buildpipeline.Event) tea.Cmd {
	label := statusLabel(ev.Stage, ev.Status)
	if ev.File == "" {
		if label != "" {
			m.stageLabel = label
		}
		return nil
	}
	idx, ok := m.byPath[ev.File]
	if !ok || label == "" {
		return nil
	}
	item := &m.files[idx]
	item.status = label
	item.stage = ev.Stage
	item.terminal = ev.Status.Terminal()
	return m.bar.SetPercent(m.percent())
}

func (m *progressModel) finished() int {
	n := 0
	for _, item := range m.files {
		if item.terminal {
			n++
		}
	}
	return n
}

// percent: завершённые файлы считаются целиком, остальные по стадии.
func (m *progressModel) percent() float64 {
	if len(m.files) == 0 {
		return 0
	}
	total := 0.0
	for _, item := range m.files {
		if item.terminal {
			total++
		} else {
			total += stageWeights[item.stage]
		}
	}
	return total / float64(len(m.files))
}

// summary считает файлы по итоговому статусу: "3 done, 1 skipped, 1 error".
func (m *progressModel) summary() string {
	counts := make(map[string]int, len(summaryOrder))
	for _, item := range m.files {
		if item.terminal {
			counts[item.status]++
		}
	}
	parts := make([]string, 0, len(summaryOrder))
	for _, k := range summaryOrder {
		if counts[k] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[k], k))
		}
	}
	return strings.Join(parts, ", ")
}

func statusLabel(stage buildpipeline.Stage, status buildpipeline.Status) string {
	switch status {
	case buildpipeline.StatusQueued:
		return "queued"
	case buildpipeline.StatusDone:
		return "done"
	case buildpipeline.StatusSkipped:
		return "skipped"
	case buildpipeline.StatusCached:
		return "cached"
	case buildpipeline.StatusError:
		return "error"
	case buildpipeline.StatusWorking:
		return stageLabels[stage]
	}
	return ""
}

func styleStatus(status string) lipgloss.Style {
	if st, ok := statusStyles[status]; ok {
		return st
	}
	for _, l := range stageLabels {
		if l == status {
			return workingStyle
		}
	}
	return idleStyle
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
