package main

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/jung-kurt/gofpdf"

	"fader/internal/document"
	"fader/internal/render"
)

const jpegQuality = 92

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// exportDocument renders the document at the configured scale and writes
// it to filename. The format follows the extension, falling back to the
// configured one (whose extension is then appended). A document without
// layers exports its background.
func exportDocument(doc *document.Document, filename string, config *Config) (string, error) {
	filename = exportName(filename, config.ExportFormat)
	format, err := render.ParseFormat(filepath.Ext(filename))
	if err != nil {
		return "", err
	}
	path := config.GetSavePath(filename)

	img := render.RenderForExport(doc.Canvas, doc.Layers(), format, config.ExportScale)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := encode(file, img, format); err != nil {
		file.Close()
		return "", fmt.Errorf("encode %s: %w", format, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// copyPath puts the absolute form of path on the system clipboard.
func copyPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := writeClipboard(abs); err != nil {
		return fmt.Errorf("copy path: %w", err)
	}
	return nil
}

// exportName gives filename an export extension, replacing one that is
// not an export format.
func exportName(filename string, fallback render.Format) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		return filename + fallback.Ext()
	}
	if _, err := render.ParseFormat(ext); err != nil {
		return strings.TrimSuffix(filename, ext) + fallback.Ext()
	}
	return filename
}

func encode(w io.Writer, img *image.RGBA, format render.Format) error {
	switch format {
	case render.FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case render.FormatPDF:
		return encodePDF(w, img)
	default:
		return png.Encode(w, img)
	}
}

// encodePDF writes a single page sized to the image at 72 dpi with the
// render embedded as PNG, so transparency survives.
func encodePDF(w io.Writer, img *image.RGBA) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}

	b := img.Bounds()
	width, height := float64(b.Dx()), float64(b.Dy())
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("render", opts, &buf)
	pdf.ImageOptions("render", 0, 0, width, height, false, opts, 0, "")
	return pdf.Output(w)
}
