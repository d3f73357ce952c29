// Package decode reads the score banner and requirement strip of a front
// face by testing exact ink colors at calibrated pixel coordinates.
package decode

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/arcanaland/codexcards/internal/layout"
	"github.com/arcanaland/codexcards/internal/symbol"
)

// ErrUnknownPattern is returned when no decoding rule matches a face
var ErrUnknownPattern = errors.New("unknown pattern")

// Probe records the color observed at a tested coordinate
type Probe struct {
	Point image.Point
	Color color.NRGBA
}

func (p Probe) String() string {
	return fmt.Sprintf("(%d,%d)=rgba(%d,%d,%d,%d)",
		p.Point.X, p.Point.Y, p.Color.R, p.Color.G, p.Color.B, p.Color.A)
}

// PatternError reports a decoding step whose every rule failed
type PatternError struct {
	Step   string // score, multiplier or requirement
	Tried  []string
	Probes []Probe
}

func (e *PatternError) Error() string {
	parts := make([]string, len(e.Probes))
	for i, p := range e.Probes {
		parts[i] = p.String()
	}
	msg := fmt.Sprintf("%s: unrecognised %s", ErrUnknownPattern, e.Step)
	if len(e.Tried) > 0 {
		msg += " (tried " + strings.Join(e.Tried, ", ") + ")"
	}
	return msg + " at " + strings.Join(parts, " ")
}

func (e *PatternError) Unwrap() error {
	return ErrUnknownPattern
}

// Scoring is everything the decoder reads off a front face
type Scoring struct {
	Score        int
	Multiplier   symbol.Symbol
	Requirements []symbol.Symbol
}

// At returns the non-premultiplied color of img at p
func At(img image.Image, p image.Point) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(p.X, p.Y)).(color.NRGBA)
}

func is(img image.Image, p image.Point, c color.NRGBA) bool {
	return At(img, p) == c
}

// rule is one entry of an ordered first-match-wins chain
type rule[T any] struct {
	name   string
	probes []image.Point
	test   func(image.Image) bool
	result T
}

func inkAt(p image.Point) func(image.Image) bool {
	return func(img image.Image) bool { return is(img, p, layout.Ink()) }
}

var multipliedScoreRules = []rule[int]{
	{name: "one", probes: []image.Point{layout.MultipliedOnePoint()}, test: inkAt(layout.MultipliedOnePoint()), result: 1},
	{name: "two", probes: []image.Point{layout.MultipliedTwoPoint()}, test: inkAt(layout.MultipliedTwoPoint()), result: 2},
}

var multiplierRules = []rule[symbol.Symbol]{
	{
		name:   "feather",
		probes: []image.Point{layout.FeatherPoint(), layout.FlaskPoint()},
		test: func(img image.Image) bool {
			return is(img, layout.FeatherPoint(), layout.Ink()) && !is(img, layout.FlaskPoint(), layout.FlaskGold())
		},
		result: symbol.Feather,
	},
	{
		name:   "flask",
		probes: []image.Point{layout.FlaskPoint()},
		test:   func(img image.Image) bool { return is(img, layout.FlaskPoint(), layout.FlaskGold()) },
		result: symbol.Flask,
	},
	{
		name:   "scroll",
		probes: []image.Point{layout.ScrollPoint()},
		test:   inkAt(layout.ScrollPoint()),
		result: symbol.Scroll,
	},
	{
		name:   "corner",
		probes: []image.Point{layout.CornerPoint()},
		test:   func(img image.Image) bool { return is(img, layout.CornerPoint(), layout.CornerGold()) },
		result: symbol.Corner,
	},
}

var plainScoreRules = []rule[int]{
	{name: "one", probes: []image.Point{layout.PlainOnePoint()}, test: inkAt(layout.PlainOnePoint()), result: 1},
	{name: "three", probes: []image.Point{layout.PlainThreePoint()}, test: inkAt(layout.PlainThreePoint()), result: 3},
	{name: "five", probes: []image.Point{layout.PlainFivePoint()}, test: inkAt(layout.PlainFivePoint()), result: 5},
}

// first evaluates rules in order and returns the result of the first match
func first[T any](img image.Image, step string, rules []rule[T]) (T, error) {
	for _, r := range rules {
		if r.test(img) {
			return r.result, nil
		}
	}

	var zero T
	perr := &PatternError{Step: step}
	seen := make(map[image.Point]bool)
	for _, r := range rules {
		perr.Tried = append(perr.Tried, r.name)
		for _, p := range r.probes {
			if seen[p] {
				continue
			}
			seen[p] = true
			perr.Probes = append(perr.Probes, Probe{Point: p, Color: At(img, p)})
		}
	}
	return zero, perr
}

// HasScore reports whether the face carries a score banner
func HasScore(img image.Image) bool {
	return is(img, layout.ScorePoint(), layout.Ink())
}

// HasMultiplier reports whether the score banner uses a multiplier glyph
func HasMultiplier(img image.Image) bool {
	return is(img, layout.MultiplierPoint(), layout.Ink())
}

// Score decodes the score and its multiplier.
// Faces without a banner score 0 with no multiplier.
func Score(img image.Image) (int, symbol.Symbol, error) {
	if !HasScore(img) {
		return 0, symbol.None, nil
	}

	if !HasMultiplier(img) {
		score, err := first(img, "score", plainScoreRules)
		if err != nil {
			return 0, symbol.None, err
		}
		return score, symbol.None, nil
	}

	score, err := first(img, "score", multipliedScoreRules)
	if err != nil {
		return 0, symbol.None, err
	}

	multiplier, err := first(img, "multiplier", multiplierRules)
	if err != nil {
		return 0, symbol.None, err
	}

	return score, multiplier, nil
}

// Requirements decodes the crafting requirement strip.
// A face without a count marker has no requirements.
func Requirements(img image.Image) ([]symbol.Symbol, error) {
	for _, l := range layout.RequirementLayouts() {
		if !is(img, l.Marker, layout.Ink()) {
			continue
		}

		reqs := make([]symbol.Symbol, 0, l.Count)
		for _, p := range l.Samples() {
			c := At(img, p)
			s, ok := layout.RequirementSymbol(c)
			if !ok {
				return nil, &PatternError{
					Step:   fmt.Sprintf("requirement %d of %d", len(reqs)+1, l.Count),
					Probes: []Probe{{Point: p, Color: c}},
				}
			}
			reqs = append(reqs, s)
		}
		return reqs, nil
	}

	return nil, nil
}

// Decode reads score, multiplier and requirements off a front face
func Decode(img image.Image) (Scoring, error) {
	score, multiplier, err := Score(img)
	if err != nil {
		return Scoring{}, err
	}

	reqs, err := Requirements(img)
	if err != nil {
		return Scoring{}, err
	}

	return Scoring{Score: score, Multiplier: multiplier, Requirements: reqs}, nil
}
