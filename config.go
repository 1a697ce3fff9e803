package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fader/internal/layer"
	"fader/internal/render"
)

type Config struct {
	SaveDirectory string
	Canvas        layer.Canvas
	LockRatio     bool
	ExportFormat  render.Format
	ExportScale   float64
	FPS           int
	LogFile       string
	CopyPath      bool
}

func defaultConfig() *Config {
	return &Config{
		Canvas:       layer.DefaultCanvas(),
		LockRatio:    true,
		ExportFormat: render.FormatPNG,
		ExportScale:  1,
		FPS:          30,
	}
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}

	file, err := os.Open(filepath.Join(homeDir, ".faderrc"))
	if err != nil {
		return defaultConfig()
	}
	defer file.Close()

	return parseConfig(file, homeDir)
}

// parseConfig reads key = value lines. Unknown keys and bad values leave
// the defaults in place.
func parseConfig(r io.Reader, homeDir string) *Config {
	config := defaultConfig()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "canvaswidth", "canvas_width", "width":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.Canvas.Width = n
			}
		case "canvasheight", "canvas_height", "height":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.Canvas.Height = n
			}
		case "canvas", "preset":
			if p, ok := layer.PresetByName(value); ok {
				config.Canvas.Width, config.Canvas.Height = p.Width, p.Height
			}
		case "background", "bg":
			if c, err := layer.ParseHexColor(value); err == nil {
				config.Canvas.Background = c
			}
		case "transparent":
			config.Canvas.Transparent = strings.ToLower(value) == "true"
		case "lockratio", "lock_ratio", "lock":
			config.LockRatio = strings.ToLower(value) == "true"
		case "exportformat", "export_format", "format":
			if f, err := render.ParseFormat(value); err == nil {
				config.ExportFormat = f
			}
		case "exportscale", "export_scale", "scale":
			if s, err := strconv.ParseFloat(value, 64); err == nil && s > 0 {
				config.ExportScale = s
			}
		case "fps":
			if n, err := strconv.Atoi(value); err == nil && n > 0 && n <= 120 {
				config.FPS = n
			}
		case "logfile", "log_file", "log":
			config.LogFile = expandPath(value, homeDir)
		case "copypath", "copy_path", "clipboard":
			config.CopyPath = strings.ToLower(value) == "true"
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
