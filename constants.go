package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeFileInput
	ModeInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpOpen FileOperation = iota
	FileOpExport
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmRemoveLayer
	ConfirmOverwriteFile
)

// InputField is the value being typed in ModeInput.
type InputField int

const (
	InputScale InputField = iota
	InputWidth
	InputHeight
	InputFadeColor
	InputBackground
	InputCanvasSize
)

const (
	panelWidth   = 32
	fadeStep     = 5  // fade size and softness, percent
	scaleStep    = 5  // layer scale, percent
	brushStep    = 5  // brush radius, canvas pixels
	strengthStep = 10 // brush strength, percent
	fastSpeed    = 10 // nudge multiplier with shift
)
