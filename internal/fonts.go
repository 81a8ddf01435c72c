package internal

import (
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSet holds the open fonts at the sizes the screens use.
type FontSet struct {
	LargeFont  *ttf.Font // Titles
	MediumFont *ttf.Font // Choices, questions
	SmallFont  *ttf.Font // Hints, footer, progress
}

// Fonts is the process-wide font set, valid after Init.
var Fonts FontSet

const (
	largeFontSize  = 42
	mediumFontSize = 28
	smallFontSize  = 18
)

// systemFontPaths are tried when the theme does not name a font. DejaVu
// covers the Latin labels; the Urdu/Sindhi text needs a Nastaliq-capable
// font configured through the theme on production devices.
var systemFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
}

func initFonts() {
	path := GetTheme().FontPath
	if path == "" {
		for _, p := range systemFontPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path == "" {
		Logger().Error("no usable font found; set font_path in the config")
		os.Exit(1)
	}

	open := func(size int) *ttf.Font {
		f, err := ttf.OpenFont(path, size)
		if err != nil {
			Logger().Error("failed to open font", "path", path, "size", size, "error", err)
			os.Exit(1)
		}
		return f
	}

	Fonts = FontSet{
		LargeFont:  open(largeFontSize),
		MediumFont: open(mediumFontSize),
		SmallFont:  open(smallFontSize),
	}
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont} {
		if f != nil {
			f.Close()
		}
	}
	Fonts = FontSet{}
}
