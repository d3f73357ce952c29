// Package layout holds the calibration data of the printed card faces:
// face size, sampling regions, probe coordinates and ink colors.
// Every value was measured on 300 dpi renders cropped to FaceWidth x FaceHeight.
package layout

import (
	"image"
	"image/color"

	"github.com/arcanaland/codexcards/internal/symbol"
)

// Face dimensions after cropping, in pixels
const (
	FaceWidth  = 792
	FaceHeight = 544
)

// FaceBounds is the rectangle every face image must occupy
func FaceBounds() image.Rectangle { return image.Rect(0, 0, FaceWidth, FaceHeight) }

// Corner and center sampling regions
var (
	topLeft     = image.Rect(50, 50, 170, 200)
	topRight    = image.Rect(FaceWidth-170, 50, FaceWidth-50, 200)
	center      = image.Rect(FaceWidth/2-50, FaceHeight/2-50, FaceWidth/2+50, FaceHeight/2+50)
	bottomLeft  = image.Rect(50, FaceHeight-200, 170, FaceHeight-50)
	bottomRight = image.Rect(FaceWidth-170, FaceHeight-200, FaceWidth-50, FaceHeight-50)
)

// Corners returns the corner regions in TL, TR, BL, BR order
func Corners() [4]image.Rectangle {
	return [4]image.Rectangle{topLeft, topRight, bottomLeft, bottomRight}
}

// Center returns the center sampling region
func Center() image.Rectangle { return center }

// Ink colors of the printed score banner and requirement strip
var (
	ink           = color.NRGBA{R: 53, G: 31, B: 22, A: 255}
	flaskGold     = color.NRGBA{R: 183, G: 154, B: 60, A: 255}
	cornerGold    = color.NRGBA{R: 174, G: 144, B: 56, A: 255}
	requireRed    = color.NRGBA{R: 239, G: 45, B: 50, A: 255}
	requireBlue   = color.NRGBA{R: 54, G: 172, B: 156, A: 255}
	requireGreen  = color.NRGBA{R: 44, G: 133, B: 58, A: 255}
	requirePurple = color.NRGBA{R: 142, G: 26, B: 133, A: 255}
)

// Ink is the dark brown of the score digits and glyph outlines
func Ink() color.NRGBA { return ink }

// FlaskGold fills the flask glyph
func FlaskGold() color.NRGBA { return flaskGold }

// CornerGold fills the corner glyph
func CornerGold() color.NRGBA { return cornerGold }

// Probe points on the score banner
var (
	scorePoint      = image.Pt(394, 18)
	multiplierPoint = image.Pt(286, 18)

	multipliedOnePoint = image.Pt(351, 56)
	multipliedTwoPoint = image.Pt(340, 58)

	featherPoint = image.Pt(459, 56)
	flaskPoint   = image.Pt(458, 49)
	scrollPoint  = image.Pt(437, 62)
	cornerPoint  = image.Pt(480, 54)

	plainOnePoint   = image.Pt(397, 62)
	plainThreePoint = image.Pt(405, 59)
	plainFivePoint  = image.Pt(387, 70)
)

// ScorePoint is inked on every face with a score banner
func ScorePoint() image.Point      { return scorePoint }
func MultiplierPoint() image.Point { return multiplierPoint }

// Digits printed before a multiplier glyph
func MultipliedOnePoint() image.Point { return multipliedOnePoint }
func MultipliedTwoPoint() image.Point { return multipliedTwoPoint }

// Multiplier glyphs
func FeatherPoint() image.Point { return featherPoint }
func FlaskPoint() image.Point   { return flaskPoint }
func ScrollPoint() image.Point  { return scrollPoint }
func CornerPoint() image.Point  { return cornerPoint }

// Digits of a plain score
func PlainOnePoint() image.Point   { return plainOnePoint }
func PlainThreePoint() image.Point { return plainThreePoint }
func PlainFivePoint() image.Point  { return plainFivePoint }

// requirementRow is the y coordinate of every requirement icon sample
const requirementRow = 479

// RequirementLayout pairs a count marker with the icon columns it implies
type RequirementLayout struct {
	Count   int
	Marker  image.Point
	Columns []int
}

// Samples returns the icon sample points of the layout
func (l RequirementLayout) Samples() []image.Point {
	pts := make([]image.Point, len(l.Columns))
	for i, x := range l.Columns {
		pts[i] = image.Pt(x, requirementRow)
	}
	return pts
}

// Checked in this order; the first marker present decides the count
var requirementLayouts = []RequirementLayout{
	{Count: 3, Marker: image.Pt(288, 517), Columns: []int{347, 398, 449}},
	{Count: 4, Marker: image.Pt(258, 521), Columns: []int{318, 369, 420, 471}},
	{Count: 5, Marker: image.Pt(240, 523), Columns: []int{300, 351, 402, 453, 504}},
}

// RequirementLayouts returns a copy of the requirement strip layouts in priority order
func RequirementLayouts() []RequirementLayout {
	out := make([]RequirementLayout, len(requirementLayouts))
	for i, l := range requirementLayouts {
		out[i] = RequirementLayout{Count: l.Count, Marker: l.Marker, Columns: append([]int(nil), l.Columns...)}
	}
	return out
}

// RequirementLayoutFor returns the layout printing n requirement icons
func RequirementLayoutFor(n int) (RequirementLayout, bool) {
	for _, l := range RequirementLayouts() {
		if l.Count == n {
			return l, true
		}
	}
	return RequirementLayout{}, false
}

type requirementColor struct {
	color  color.NRGBA
	symbol symbol.Symbol
}

var requirementColors = []requirementColor{
	{requireRed, symbol.Red},
	{requireBlue, symbol.Blue},
	{requireGreen, symbol.Green},
	{requirePurple, symbol.Purple},
}

// RequirementSymbol maps an exact requirement icon color to its symbol
func RequirementSymbol(c color.NRGBA) (symbol.Symbol, bool) {
	for _, rc := range requirementColors {
		if rc.color == c {
			return rc.symbol, true
		}
	}
	return symbol.None, false
}

// RequirementColor is the inverse of RequirementSymbol
func RequirementColor(s symbol.Symbol) (color.NRGBA, bool) {
	for _, rc := range requirementColors {
		if rc.symbol == s {
			return rc.color, true
		}
	}
	return color.NRGBA{}, false
}
