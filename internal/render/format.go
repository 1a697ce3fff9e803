package render

import (
	"fmt"
	"strings"
)

type Format int

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatPDF
)

func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "jpg"
	case FormatPDF:
		return "pdf"
	default:
		return "png"
	}
}

// Ext is the file extension including the dot.
func (f Format) Ext() string { return "." + f.String() }

// HasAlpha reports whether the container keeps transparency. Formats
// without it always get the background color.
func (f Format) HasAlpha() bool { return f != FormatJPEG }

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "png", "":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "pdf":
		return FormatPDF, nil
	}
	return FormatPNG, fmt.Errorf("unknown export format %q", s)
}
