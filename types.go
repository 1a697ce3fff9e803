package main

import (
	"fader/internal/document"
)

type model struct {
	width  int
	height int
	config *Config

	doc     *document.Document
	queue   *document.Queue
	startup []string

	mode          Mode
	help          bool
	helpScroll    int
	fileOp        FileOperation
	filename      string
	fileList      []string
	selectedFile  int
	input         InputField
	inputText     string
	confirmAction ConfirmAction
	presetIndex   int
	loading       int

	errorMessage   string
	successMessage string
	notices        []func(*document.Document) string

	view    viewport
	preview string

	// pointer position in canvas space, for the brush outline
	cursorX, cursorY float64
	cursorOK         bool
}
