// Package preview renders card faces as half-block ANSI art for the terminal.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
	"golang.org/x/term"
)

// DefaultWidth is used when the terminal size cannot be read
const DefaultWidth = 80

// TerminalWidth returns the width of stdout, or DefaultWidth
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// Rows returns how many text rows keep img's aspect ratio at the given width.
// Each character cell is about twice as tall as it is wide.
func Rows(img image.Image, cols int) int {
	b := img.Bounds()
	if b.Dx() == 0 || cols <= 0 {
		return 0
	}
	rows := cols * b.Dy() / b.Dx() / 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

// ImageToAnsi converts an image to ANSI art of width x height cells
func ImageToAnsi(img image.Image, width, height int, trueColor bool) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	// Resize image to desired dimensions (doubled for half-block characters)
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			// Top pixels as foreground, bottom pixels as background
			upper := averageColor(colorAt(resized, x, y), colorAt(resized, x+1, y))
			lower := averageColor(colorAt(resized, x, y+1), colorAt(resized, x+1, y+1))

			buffer.WriteString(ansiColorString('▀', toNRGBA(upper), toNRGBA(lower), trueColor))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// Swatch returns two colored blocks showing c
func Swatch(c color.Color) string {
	return ansiColorString('█', c, c, true) + ansiColorString('█', c, c, true)
}

// colorAt returns the color at a coordinate, black when out of bounds
func colorAt(img image.Image, x, y int) colorful.Color {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return colorful.Color{}
	}

	// Transparent pixels show as the terminal background would, black
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		return colorful.Color{}
	}
	return c
}

// averageColor calculates the average of multiple colors
func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// ansiColorString formats a character with 24-bit ANSI color codes
func ansiColorString(char rune, fg, bg color.Color, trueColor bool) string {
	if !trueColor {
		return string(char)
	}

	r1, g1, b1, _ := fg.RGBA()
	r2, g2, b2, _ := bg.RGBA()

	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1>>8, g1>>8, b1>>8, r2>>8, g2>>8, b2>>8, char)
}

// StripAnsi removes ANSI escape sequences from a string
func StripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// visibleWidth counts the runes shown on screen
func visibleWidth(s string) int {
	return len([]rune(StripAnsi(s)))
}

// SideBySide lays the art out on the left and the info lines on the right
func SideBySide(art string, info []string) string {
	artLines := strings.Split(strings.TrimRight(art, "\n"), "\n")

	artWidth := 0
	for _, line := range artLines {
		artWidth = max(artWidth, visibleWidth(line))
	}

	const spacing = 4
	infoStartCol := artWidth + spacing

	var out strings.Builder
	lines := max(len(artLines), len(info))
	for i := 0; i < lines; i++ {
		out.WriteString("  ")
		if i < len(artLines) {
			out.WriteString(artLines[i])
			out.WriteString(strings.Repeat(" ", infoStartCol-visibleWidth(artLines[i])))
		} else {
			out.WriteString(strings.Repeat(" ", infoStartCol))
		}
		if i < len(info) {
			out.WriteString(info[i])
		}
		out.WriteString("\n")
	}
	return out.String()
}
