package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"fader/internal/document"
)

type decodedMsg struct {
	path   string
	source document.Source
	err    error
}

func decodeFile(path string) (document.Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return document.Source{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return document.Source{}, fmt.Errorf("decode %s: %w", path, err)
	}
	src, err := document.SourceFromImage(img, layerName(path))
	if err != nil {
		return document.Source{}, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

// decodeCmd decodes off the update loop. The layer is added when the
// message comes back.
func decodeCmd(path string) tea.Cmd {
	return func() tea.Msg {
		src, err := decodeFile(path)
		return decodedMsg{path: path, source: src, err: err}
	}
}
