package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"fader/internal/document"
	"fader/internal/layer"
)

func main() {
	config := loadConfig()
	if config.LogFile != "" {
		f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		document.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	p := tea.NewProgram(
		initialModel(config, os.Args[1:]),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type frameMsg struct{}

func initialModel(config *Config, paths []string) model {
	doc := document.New(config.Canvas)
	doc.LockRatio = config.LockRatio
	m := model{
		config:       config,
		doc:          doc,
		queue:        &document.Queue{},
		startup:      paths,
		loading:      len(paths),
		mode:         ModeNormal,
		selectedFile: -1,
		presetIndex:  -1,
	}
	return m
}

func (m model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.startup))
	for _, path := range m.startup {
		cmds = append(cmds, decodeCmd(path))
	}
	return tea.Batch(cmds...)
}

func (m *model) frameInterval() time.Duration {
	fps := m.config.FPS
	if fps <= 0 {
		fps = 30
	}
	return time.Second / time.Duration(fps)
}

func (m *model) tick() tea.Cmd {
	return tea.Tick(m.frameInterval(), func(time.Time) tea.Msg { return frameMsg{} })
}

// push queues a command. The first command after a frame schedules the
// next one; later pushes ride along.
func (m *model) push(c document.Command) tea.Cmd {
	if m.queue.Push(c) {
		return m.tick()
	}
	return nil
}

// notify queues a status message worded from the document as it stands
// after the next frame's commands have run.
func (m *model) notify(n func(*document.Document) string) {
	m.notices = append(m.notices, n)
}

// redraw schedules a frame without changing the document.
func (m *model) redraw() tea.Cmd {
	if m.queue.Request() {
		return m.tick()
	}
	return nil
}

func (m *model) layout() {
	cols := m.width
	if m.width >= panelWidth*2 {
		cols = m.width - panelWidth - 1
	}
	m.view = newViewport(cols, m.height-1, m.doc.Canvas)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, m.redraw()

	case frameMsg:
		m.queue.Drain(m.doc)
		for _, n := range m.notices {
			m.successMessage = n(m.doc)
		}
		m.notices = nil
		m.layout()
		m.preview = m.renderPreview()
		return m, nil

	case decodedMsg:
		if m.loading > 0 {
			m.loading--
		}
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
			document.Logger().Warn("decode failed", "path", msg.path, "err", msg.err)
			return m, nil
		}
		m.errorMessage = ""
		m.successMessage = fmt.Sprintf("Added %s", msg.source.Name)
		return m, m.push(document.AddLayerCmd{Source: msg.source})

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.help {
			return m.handleHelpKey(msg.String())
		}
		switch m.mode {
		case ModeFileInput:
			return m.handleFileInputKey(msg)
		case ModeInput:
			return m.handleInputKey(msg)
		case ModeConfirm:
			return m.handleConfirmKey(msg.String())
		default:
			return m.handleNormalKey(msg.String())
		}
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y, on := m.view.toCanvas(msg.X, msg.Y)
	m.cursorX, m.cursorY, m.cursorOK = x, y, on

	switch msg.Type {
	case tea.MouseLeft:
		if !on {
			return m, nil
		}
		return m, m.push(document.PointerDownCmd{X: x, Y: y})
	case tea.MouseMotion:
		return m, m.push(document.PointerMoveCmd{X: x, Y: y})
	case tea.MouseRelease:
		return m, m.push(document.PointerUpCmd{})
	case tea.MouseWheelUp, tea.MouseWheelDown:
		l := m.doc.Active()
		if l == nil {
			return m, nil
		}
		step := float64(scaleStep)
		if msg.Type == tea.MouseWheelDown {
			step = -step
		}
		return m, m.push(document.ScaleLayerByCmd{ID: l.ID, Delta: step})
	}
	return m, nil
}

// cyclePreset steps through the canvas presets.
func (m *model) cyclePreset() tea.Cmd {
	m.presetIndex = (m.presetIndex + 1) % len(layer.Presets)
	p := layer.Presets[m.presetIndex]
	m.successMessage = fmt.Sprintf("Canvas %s %dx%d", p.Name, p.Width, p.Height)
	return m.push(document.SetCanvasSizeCmd{Width: p.Width, Height: p.Height})
}
