package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fader/internal/fade"
	"fader/internal/layer"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f4ede4")).
			Background(lipgloss.Color("#1b1714"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b5b")).Bold(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e27d39")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8178"))
	panelStyle  = lipgloss.NewStyle().
			Width(panelWidth).
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("#4a423b"))
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	if m.width <= 0 || m.height <= 0 {
		return "starting…"
	}

	var body string
	if m.mode == ModeFileInput && m.fileOp == FileOpOpen {
		body = m.fileListView()
	} else {
		body = m.preview
	}
	body = lipgloss.NewStyle().
		Width(m.view.cols).
		Height(max(1, m.height-1)).
		MaxHeight(max(1, m.height-1)).
		Render(body)
	if m.width >= panelWidth*2 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, panelStyle.Height(max(1, m.height-1)).Render(m.panelView()))
	}
	return body + "\n" + statusStyle.Width(m.width).MaxWidth(m.width).Render(m.statusLine())
}

func (m model) panelView() string {
	var b strings.Builder
	c := m.doc.Canvas
	bg := layer.HexColor(c.Background)
	if c.Transparent {
		bg = "transparent"
	}
	b.WriteString(accentStyle.Render("Canvas"))
	fmt.Fprintf(&b, "\n%dx%d  %s\n", c.Width, c.Height, bg)
	fmt.Fprintf(&b, "lock %s  brush %s  eraser %s\n\n",
		onOff(m.doc.LockRatio), onOff(m.doc.BrushTool), onOff(m.doc.Eraser))

	b.WriteString(accentStyle.Render("Layers"))
	b.WriteString("\n")
	layers := m.doc.Layers()
	if len(layers) == 0 {
		b.WriteString(dimStyle.Render("(o to open an image)"))
		b.WriteString("\n")
	}
	activeID := m.doc.Stack.ActiveID()
	for i := len(layers) - 1; i >= 0; i-- {
		l := layers[i]
		name := truncate(l.Name, panelWidth-6)
		if l.ID == activeID {
			b.WriteString(accentStyle.Render("> " + name))
		} else {
			b.WriteString("  " + name)
		}
		b.WriteString("\n")
	}
	if m.loading > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("loading %d…", m.loading)))
		b.WriteString("\n")
	}

	l := m.doc.Active()
	if l == nil {
		return b.String()
	}
	f := l.Fade
	b.WriteString("\n")
	b.WriteString(accentStyle.Render("Layer"))
	fmt.Fprintf(&b, "\npos %.0f,%.0f\nsize %.0fx%.0f  %d%%\n", l.X, l.Y, l.Width, l.Height, m.doc.ScalePercent())
	b.WriteString("\n")
	b.WriteString(accentStyle.Render("Fade"))
	fmt.Fprintf(&b, "\ntype %s  mode %s\n", f.Type, f.Mode)
	switch f.Type {
	case fade.TypeLinear:
		fmt.Fprintf(&b, "direction %s\n", f.Direction)
		fallthrough
	case fade.TypeRadial:
		fmt.Fprintf(&b, "size %.0f%%  softness %.0f%%\n", f.Size, f.Softness)
	case fade.TypeBrush:
		fmt.Fprintf(&b, "brush %.0fpx %s  strength %.0f%%\n", f.BrushSize, f.BrushShape, f.BrushStrength)
		if !l.HasBrushMask() {
			b.WriteString(dimStyle.Render("(nothing painted)"))
			b.WriteString("\n")
		}
	}
	if f.Mode == fade.ModeColor {
		fmt.Fprintf(&b, "color %s\n", layer.HexColor(f.Color))
	}
	return b.String()
}

func (m model) fileListView() string {
	var b strings.Builder
	b.WriteString("Select an image:\n")
	b.WriteString(strings.Repeat("─", max(1, m.view.cols)))
	b.WriteString("\n")
	if len(m.fileList) == 0 {
		b.WriteString("(No images found in current directory)\n")
		return b.String()
	}
	maxFiles := max(1, m.height-5)
	start := 0
	if m.selectedFile >= maxFiles {
		start = m.selectedFile - maxFiles + 1
	}
	end := min(len(m.fileList), start+maxFiles)
	for i := start; i < end; i++ {
		if i == m.selectedFile {
			b.WriteString(accentStyle.Render("> " + m.fileList[i] + " <"))
		} else {
			b.WriteString("  " + m.fileList[i])
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeFileInput:
		op := "Open"
		hint := "↑/↓=navigate, Type=enter path, Enter=confirm, Esc=cancel"
		if m.fileOp == FileOpExport {
			op = "Export"
			hint = "Enter=confirm, Esc=cancel"
		}
		status := fmt.Sprintf("Mode: FILE | %s filename: %s█ | %s", op, m.filename, hint)
		if m.errorMessage != "" {
			status = fmt.Sprintf("Mode: FILE | %s | %s filename: %s█ | Enter=retry, Esc=cancel",
				errorStyle.Render("ERROR: "+m.errorMessage), op, m.filename)
		}
		return status
	case ModeInput:
		status := fmt.Sprintf("Mode: INPUT | %s: %s█ | Enter=apply, Esc=cancel", m.inputLabel(), m.inputText)
		if m.errorMessage != "" {
			status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
		}
		return status
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmQuit:
			message = "Quit fader? Unexported changes will be lost. (y/n)"
		case ConfirmRemoveLayer:
			name := ""
			if l := m.doc.Active(); l != nil {
				name = l.Name
			}
			message = fmt.Sprintf("Remove layer %s? (y/n)", name)
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.filename)
		}
		return fmt.Sprintf("Mode: CONFIRM | %s", message)
	}

	status := fmt.Sprintf("Mode: %s", m.modeString())
	if m.cursorOK {
		status += fmt.Sprintf(" | Cursor: (%.0f,%.0f)", m.cursorX, m.cursorY)
	}
	if l := m.doc.Active(); l != nil {
		status += fmt.Sprintf(" | Selected: %s", l.Name)
	}
	if m.successMessage != "" {
		status += fmt.Sprintf(" | %s", m.successMessage)
	}
	if m.errorMessage != "" {
		status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	} else if m.successMessage == "" {
		status += " | ? for help | q to quit"
	}
	return status
}

func (m model) inputLabel() string {
	switch m.input {
	case InputScale:
		return "Scale %"
	case InputWidth:
		return "Width"
	case InputHeight:
		return "Height"
	case InputFadeColor:
		return "Fade color"
	case InputBackground:
		return "Background"
	case InputCanvasSize:
		return "Canvas size"
	default:
		return "Value"
	}
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		if m.doc.BrushTool {
			if m.doc.Eraser {
				return "RESTORE"
			}
			return "BRUSH"
		}
		return "NORMAL"
	case ModeFileInput:
		return "FILE"
	case ModeInput:
		return "INPUT"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

var helpLines = []string{
	"fader Help",
	"==========",
	"",
	"Mouse:",
	"------",
	"  Click layer      Select it and bring it to front",
	"  Drag layer       Move it",
	"  Drag a corner    Resize the selected layer (opposite corner stays put)",
	"  Drag (brush on)  Paint: erases the image, or tints it in color mode",
	"  Wheel            Scale the selected layer",
	"",
	"Layers:",
	"-------",
	"  o                Open an image as a new layer",
	"  Tab/Shift+Tab    Select next/previous layer",
	"  Esc              Clear selection",
	"  ←/↓/↑/→          Nudge selected layer",
	"  Shift+arrows     Nudge 10x faster",
	"  +/-              Scale by 5%",
	"  z                Type a scale percentage",
	"  w / h            Type width / height",
	"  l                Toggle aspect ratio lock",
	"  f                Fit to canvas",
	"  C                Center on canvas",
	"  PgUp/PgDn        Raise / lower",
	"  Home/End         Bring to front / send to back",
	"  D                Duplicate",
	"  X/Delete         Remove",
	"",
	"Fade:",
	"-----",
	"  t                Cycle type: none, linear, radial, brush",
	"  d                Cycle direction: left, right, top, bottom, both-x, both-y",
	"  m                Toggle mode: transparent / color",
	"  c                Type the fade color",
	"  [ / ]            Fade size -/+ 5%",
	"  { / }            Softness -/+ 5%",
	"",
	"Brush:",
	"------",
	"  b                Toggle brush tool",
	"  e                Toggle eraser: strokes remove paint and restore the image",
	"  , / .            Brush radius -/+",
	"  < / >            Brush strength -/+",
	"  p                Toggle round / square brush",
	"  x                Clear brush mask",
	"",
	"Canvas:",
	"-------",
	"  P                Cycle size presets",
	"  Z                Type canvas size (WIDTHxHEIGHT or preset)",
	"  B                Type background color",
	"  T                Toggle transparent background",
	"",
	"General:",
	"--------",
	"  s                Export (png, jpg or pdf by extension)",
	"  ?                Toggle this help screen",
	"  q/Ctrl+C         Quit",
}

func (m model) helpView() string {
	visibleHeight := max(1, m.height-1)
	start := min(m.helpScroll, max(0, len(helpLines)-visibleHeight))
	end := min(len(helpLines), start+visibleHeight)

	result := strings.Join(helpLines[start:end], "\n")
	result += "\n" + fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		start+1, end, len(helpLines))
	return result
}
