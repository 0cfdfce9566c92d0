package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared text styles for the interactive view and CLI output.
var (
	Title   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	Label   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	Value   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	Accent  = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	KeyHint = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	ErrText = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Ramp endpoints: core (z = -1) is blue, background (z = +1) is red.
var (
	rampLow  = [3]int{59, 108, 255}
	rampMid  = [3]int{255, 255, 255}
	rampHigh = [3]int{255, 68, 68}
)

// RampHex maps a z-component in [-1, 1] to a hex color on the blue-white-red
// ramp. Values outside the range are clamped.
func RampHex(sz float64) string {
	if sz < -1 {
		sz = -1
	}
	if sz > 1 {
		sz = 1
	}

	var from, to [3]int
	var t float64
	if sz < 0 {
		from, to = rampLow, rampMid
		t = sz + 1
	} else {
		from, to = rampMid, rampHigh
		t = sz
	}

	r := int(float64(from[0]) + t*float64(to[0]-from[0]))
	g := int(float64(from[1]) + t*float64(to[1]-from[1]))
	b := int(float64(from[2]) + t*float64(to[2]-from[2]))
	return hexColor(r, g, b)
}

// StyleFor returns a foreground style for the given z-component.
func StyleFor(sz float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(RampHex(sz)))
}

// ColorBar renders a horizontal legend from z = -1 to z = +1.
func ColorBar(width int) string {
	if width < 2 {
		width = 2
	}
	var b strings.Builder
	for i := 0; i < width; i++ {
		sz := -1 + 2*float64(i)/float64(width-1)
		b.WriteString(StyleFor(sz).Render("█"))
	}
	return b.String()
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
