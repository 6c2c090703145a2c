package countdown

import (
	"image/color"

	"intervaltimer/internal/core/interval"
)

// Colors is the visual treatment of a single phase style.
type Colors struct {
	Foreground color.NRGBA
	Background color.NRGBA
	Caption    string
}

// Palette maps a phase style to its colors.
func Palette(style interval.Style) Colors {
	switch style {
	case interval.StyleRunning:
		return Colors{
			Foreground: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			Background: color.NRGBA{R: 46, G: 125, B: 50, A: 255},
			Caption:    "Work",
		}
	case interval.StyleAlerting:
		return Colors{
			Foreground: color.NRGBA{R: 33, G: 33, B: 33, A: 255},
			Background: color.NRGBA{R: 232, G: 190, B: 66, A: 255},
			Caption:    "Almost there",
		}
	case interval.StylePaused:
		return Colors{
			Foreground: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			Background: color.NRGBA{R: 33, G: 101, B: 192, A: 255},
			Caption:    "Rest",
		}
	default:
		return Colors{
			Foreground: color.NRGBA{R: 189, G: 189, B: 189, A: 255},
			Background: color.NRGBA{R: 38, G: 38, B: 38, A: 255},
			Caption:    "Ready",
		}
	}
}
