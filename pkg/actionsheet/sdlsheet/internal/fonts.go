package internal

import (
	"fmt"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet"
	"github.com/veandco/go-sdl2/ttf"
)

type fontKey struct {
	path string
	size int
}

var fonts = map[fontKey]*ttf.Font{}

// Font returns the font at path in the given size, opening it once. An empty path
// uses the theme font.
func Font(path string, size int) (*ttf.Font, error) {
	if path == "" {
		path = GetTheme().FontPath
	}

	key := fontKey{path: path, size: size}
	if f, ok := fonts[key]; ok {
		return f, nil
	}

	f, err := ttf.OpenFont(path, size)
	if err != nil {
		return nil, fmt.Errorf("open font %s: %w", path, err)
	}

	actionsheet.GetInternalLogger().Debug("Opened font", "path", path, "size", size)
	fonts[key] = f
	return f, nil
}

func closeFonts() {
	for key, f := range fonts {
		f.Close()
		delete(fonts, key)
	}
}
