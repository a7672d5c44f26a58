package core

// Color is a foreground color for a screen cell.
// Values are either ANSI 256-color codes ("1".."255") or "#RRGGBB" hex,
// both of which the platform layer hands straight to the terminal styler.
type Color string

// Predefined colors for game elements.
const (
	ColorDefault       Color = ""
	ColorRed           Color = "1"
	ColorGreen         Color = "2"
	ColorYellow        Color = "3"
	ColorBlue          Color = "4"
	ColorMagenta       Color = "5"
	ColorCyan          Color = "6"
	ColorWhite         Color = "7"
	ColorBrightRed     Color = "9"
	ColorBrightGreen   Color = "10"
	ColorBrightYellow  Color = "11"
	ColorBrightBlue    Color = "12"
	ColorBrightMagenta Color = "13"
	ColorBrightCyan    Color = "14"
	ColorBrightWhite   Color = "15"
	ColorOrange        Color = "208"
	ColorGray          Color = "245"
	ColorGrid          Color = "236"
)

// Neon palette.
const (
	ColorNeonCyan   Color = "#00E5FF"
	ColorNeonPurple Color = "#E040FB"
	ColorNeonYellow Color = "#FFEA00"
	ColorNeonRed    Color = "#FF1744"
	ColorGold       Color = "#FFD700"
	ColorAccent     Color = "#00FFCC"
)

// IsHex reports whether the color is a "#RRGGBB" value.
func (c Color) IsHex() bool {
	if len(c) != 7 || c[0] != '#' {
		return false
	}
	for i := 1; i < 7; i++ {
		ch := c[i]
		isDigit := ch >= '0' && ch <= '9'
		isHexLetter := (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
		if !isDigit && !isHexLetter {
			return false
		}
	}
	return true
}
