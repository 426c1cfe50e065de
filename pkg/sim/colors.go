package sim

// Color represents a coat color in the snake's fixed palette.
// Eating an apple advances the snake to the next color, wrapping
// back to red after purple.
type Color int

const (
	ColorRed Color = iota
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorPurple
	ColorCount // Sentinel for wraparound arithmetic
)

// PaletteSize is the number of colors the snake cycles through.
const PaletteSize = int(ColorCount)

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	default:
		return "unknown"
	}
}

// ParseColor resolves a color name back to its palette entry.
// Used when reading recorded runs, where colors are stored by name.
func ParseColor(name string) (Color, bool) {
	for c := Color(0); c < ColorCount; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return ColorRed, false
}

// Next returns the color one step further along the palette.
func (c Color) Next() Color {
	return (c + 1) % ColorCount
}

// ANSI returns the terminal escape sequence for the color.
// Orange has no base ANSI slot, so it uses the 256-color code.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "\033[31m"
	case ColorOrange:
		return "\033[38;5;208m"
	case ColorYellow:
		return "\033[33m"
	case ColorGreen:
		return "\033[32m"
	case ColorBlue:
		return "\033[34m"
	case ColorPurple:
		return "\033[35m"
	default:
		return "\033[0m"
	}
}
