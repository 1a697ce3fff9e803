package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"fader/internal/document"
	"fader/internal/fade"
	"fader/internal/layer"
)

func (m *model) handleNormalKey(key string) (tea.Model, tea.Cmd) {
	m.errorMessage = ""
	m.successMessage = ""
	active := m.doc.Active()

	switch key {
	case "q", "ctrl+c":
		if m.doc.Stack.Len() == 0 {
			return m, tea.Quit
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmQuit
		return m, nil
	case "?":
		m.help = true
		m.helpScroll = 0
		return m, nil
	case "o":
		m.mode = ModeFileInput
		m.fileOp = FileOpOpen
		m.scanFiles()
		return m, nil
	case "s":
		m.mode = ModeFileInput
		m.fileOp = FileOpExport
		m.filename = "fader-export" + m.config.ExportFormat.Ext()
		return m, nil
	case "left", "right", "up", "down", "shift+left", "shift+right", "shift+up", "shift+down":
		return m.handleNavigation(key, m.getMoveSpeed(key))
	case "tab", "shift+tab":
		return m, m.push(document.CycleSelectionCmd{Forward: key == "tab"})
	case "esc":
		return m, m.push(document.SelectLayerCmd{})
	case "P":
		return m, m.cyclePreset()
	case "T":
		return m, m.push(document.ToggleCmd{Setting: document.SettingTransparent})
	case "l":
		m.notify(func(d *document.Document) string { return "Lock ratio " + onOff(d.LockRatio) })
		return m, m.push(document.ToggleCmd{Setting: document.SettingLockRatio})
	case "B":
		return m.beginInput(InputBackground, layer.HexColor(m.doc.Canvas.Background))
	case "Z":
		return m.beginInput(InputCanvasSize, fmt.Sprintf("%dx%d", m.doc.Canvas.Width, m.doc.Canvas.Height))
	case "b":
		m.notify(func(d *document.Document) string { return "Brush " + onOff(d.BrushTool) })
		return m, m.push(document.ToggleCmd{Setting: document.SettingBrushTool})
	case "e":
		m.notify(func(d *document.Document) string { return "Eraser " + onOff(d.Eraser) })
		return m, m.push(document.ToggleCmd{Setting: document.SettingEraser})
	}

	if active == nil {
		return m, nil
	}
	id := active.ID

	switch key {
	case "delete", "backspace", "X":
		m.mode = ModeConfirm
		m.confirmAction = ConfirmRemoveLayer
		return m, nil
	case "D":
		return m, m.push(document.DuplicateLayerCmd{ID: id})
	case "pgup":
		return m, m.push(document.ReorderCmd{ID: id, Op: layer.OrderRaise})
	case "pgdown":
		return m, m.push(document.ReorderCmd{ID: id, Op: layer.OrderLower})
	case "home":
		return m, m.push(document.ReorderCmd{ID: id, Op: layer.OrderFront})
	case "end":
		return m, m.push(document.ReorderCmd{ID: id, Op: layer.OrderBack})
	case "f":
		return m, m.push(document.FitLayerCmd{ID: id})
	case "C":
		return m, m.push(document.CenterLayerCmd{ID: id})
	case "+", "=":
		return m, m.push(document.ScaleLayerByCmd{ID: id, Delta: scaleStep})
	case "-", "_":
		return m, m.push(document.ScaleLayerByCmd{ID: id, Delta: -scaleStep})
	case "z":
		return m.beginInput(InputScale, strconv.Itoa(m.doc.ScalePercent()))
	case "w":
		return m.beginInput(InputWidth, strconv.Itoa(int(active.Width+0.5)))
	case "h":
		return m.beginInput(InputHeight, strconv.Itoa(int(active.Height+0.5)))
	case "x":
		return m, m.push(document.ClearBrushCmd{ID: id})
	case "c":
		return m.beginInput(InputFadeColor, layer.HexColor(active.Fade.Color))
	}

	adjust := fadeAdjustment(key)
	if adjust == nil {
		return m, nil
	}
	return m, m.push(document.AdjustFadeCmd{ID: id, Adjust: adjust})
}

// fadeAdjustment maps a fade key to an edit of the settings current when
// the command runs, so repeated presses within a frame accumulate.
func fadeAdjustment(key string) func(*fade.Config) {
	switch key {
	case "t":
		return func(c *fade.Config) { c.Type = (c.Type + 1) % (fade.TypeBrush + 1) }
	case "d":
		return func(c *fade.Config) { c.Direction = (c.Direction + 1) % (fade.DirBothY + 1) }
	case "m":
		return func(c *fade.Config) {
			if c.Mode == fade.ModeColor {
				c.Mode = fade.ModeTransparent
			} else {
				c.Mode = fade.ModeColor
			}
		}
	case "]":
		return func(c *fade.Config) { c.Size += fadeStep }
	case "[":
		return func(c *fade.Config) { c.Size -= fadeStep }
	case "}":
		return func(c *fade.Config) { c.Softness += fadeStep }
	case "{":
		return func(c *fade.Config) { c.Softness -= fadeStep }
	case ".":
		return func(c *fade.Config) { c.BrushSize += brushStep }
	case ",":
		return func(c *fade.Config) { c.BrushSize -= brushStep }
	case ">":
		return func(c *fade.Config) { c.BrushStrength += strengthStep }
	case "<":
		return func(c *fade.Config) { c.BrushStrength -= strengthStep }
	case "p":
		return func(c *fade.Config) {
			if c.BrushShape == fade.ShapeRound {
				c.BrushShape = fade.ShapeSquare
			} else {
				c.BrushShape = fade.ShapeRound
			}
		}
	}
	return nil
}

func (m *model) beginInput(field InputField, initial string) (tea.Model, tea.Cmd) {
	m.mode = ModeInput
	m.input = field
	m.inputText = initial
	return m, nil
}

func (m *model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.errorMessage = ""
		return m, nil
	case "enter":
		cmd, err := m.inputCommand()
		if err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.mode = ModeNormal
		m.errorMessage = ""
		if cmd == nil {
			return m, nil
		}
		return m, m.push(cmd)
	case "backspace":
		if r := []rune(m.inputText); len(r) > 0 {
			m.inputText = string(r[:len(r)-1])
		}
		return m, nil
	case "ctrl+u":
		m.inputText = ""
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		m.inputText += string(msg.Runes)
	}
	return m, nil
}

// inputCommand turns the typed value into a document command.
func (m *model) inputCommand() (document.Command, error) {
	text := strings.TrimSpace(m.inputText)
	active := m.doc.Active()

	switch m.input {
	case InputBackground:
		c, err := layer.ParseHexColor(text)
		if err != nil {
			return nil, err
		}
		return document.SetBackgroundCmd{Color: c}, nil
	case InputCanvasSize:
		w, h, ok := strings.Cut(strings.ToLower(text), "x")
		if !ok {
			if p, found := layer.PresetByName(text); found {
				return document.SetCanvasSizeCmd{Width: p.Width, Height: p.Height}, nil
			}
			return nil, fmt.Errorf("canvas size must be WIDTHxHEIGHT or a preset name")
		}
		wi, err1 := strconv.Atoi(strings.TrimSpace(w))
		hi, err2 := strconv.Atoi(strings.TrimSpace(h))
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("invalid canvas size %q", text)
		}
		return document.SetCanvasSizeCmd{Width: wi, Height: hi}, nil
	}

	if active == nil {
		return nil, nil
	}
	if m.input == InputFadeColor {
		c, err := layer.ParseHexColor(text)
		if err != nil {
			return nil, err
		}
		return document.AdjustFadeCmd{ID: active.ID, Adjust: func(f *fade.Config) { f.Color = c }}, nil
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(text, "%"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", text)
	}
	switch m.input {
	case InputScale:
		return document.ScaleLayerCmd{ID: active.ID, Percent: v}, nil
	case InputWidth:
		return document.SetLayerSizeCmd{ID: active.ID, Width: &v}, nil
	case InputHeight:
		return document.SetLayerSizeCmd{ID: active.ID, Height: &v}, nil
	}
	return nil, nil
}

func (m *model) scanFiles() {
	m.filename = ""
	m.selectedFile = -1
	dir, err := os.Getwd()
	if err != nil {
		m.fileList = nil
		return
	}
	m.fileList = scanImageFiles(dir)
	if len(m.fileList) > 0 {
		m.selectedFile = 0
		m.filename = m.fileList[0]
	}
}

func (m *model) handleFileInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.errorMessage = ""
		return m, nil
	case "up":
		if m.fileOp == FileOpOpen && m.selectedFile > 0 {
			m.selectedFile--
			m.filename = m.fileList[m.selectedFile]
		}
		return m, nil
	case "down":
		if m.fileOp == FileOpOpen && m.selectedFile < len(m.fileList)-1 {
			m.selectedFile++
			m.filename = m.fileList[m.selectedFile]
		}
		return m, nil
	case "backspace":
		if r := []rune(m.filename); len(r) > 0 {
			m.filename = string(r[:len(r)-1])
		}
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.filename)
		if name == "" {
			m.errorMessage = "filename required"
			return m, nil
		}
		if m.fileOp == FileOpOpen {
			m.mode = ModeNormal
			m.errorMessage = ""
			m.loading++
			return m, decodeCmd(name)
		}
		if _, err := os.Stat(m.config.GetSavePath(exportName(name, m.config.ExportFormat))); err == nil {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteFile
			return m, nil
		}
		return m.export(name)
	}
	if msg.Type == tea.KeyRunes {
		m.filename += string(msg.Runes)
		m.selectedFile = -1
	}
	return m, nil
}

func (m *model) export(name string) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	// edits still waiting for the next frame belong in the file
	m.queue.Drain(m.doc)
	path, err := exportDocument(m.doc, name, m.config)
	if err != nil {
		m.errorMessage = err.Error()
		document.Logger().Warn("export failed", "file", name, "err", err)
		return m, nil
	}
	m.errorMessage = ""
	m.successMessage = fmt.Sprintf("Exported to %s", path)
	if m.config.CopyPath {
		if err := copyPath(path); err != nil {
			document.Logger().Warn("clipboard failed", "path", path, "err", err)
			m.successMessage += " (could not copy path)"
		} else {
			m.successMessage += " (path copied)"
		}
	}
	document.Logger().Info("exported", "path", path)
	return m, nil
}

func (m *model) handleConfirmKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmRemoveLayer:
			if l := m.doc.Active(); l != nil {
				return m, m.push(document.RemoveLayerCmd{ID: l.ID})
			}
		case ConfirmOverwriteFile:
			return m.export(strings.TrimSpace(m.filename))
		}
		return m, nil
	case "n", "N", "esc":
		if m.confirmAction == ConfirmOverwriteFile {
			m.mode = ModeFileInput
		} else {
			m.mode = ModeNormal
		}
		return m, nil
	}
	return m, nil
}

func (m *model) handleHelpKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "q", "?":
		m.help = false
		m.helpScroll = 0
	case "j", "down":
		if m.helpScroll < len(helpLines)-1 {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	}
	return m, nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
