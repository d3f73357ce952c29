// Package classify maps averaged region colors to card symbols using
// ordered reference tables with per-reference tolerance radii.
package classify

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/arcanaland/codexcards/internal/symbol"
)

// ErrUnclassifiable is returned when a region matches no reference color
var ErrUnclassifiable = errors.New("unclassifiable region")

// Reference is one calibrated color and the symbol it stands for
type Reference struct {
	Name      string
	Color     RGB
	Tolerance int // Squared distance; a sample matches when strictly below it
	Symbol    symbol.Symbol
}

// Matches reports whether c lies strictly inside the reference's radius
func (r Reference) Matches(c RGB) bool {
	return c.DistanceSquared(r.Color) < r.Tolerance
}

// Table is an ordered list of references for one sampling context
type Table struct {
	Name       string
	References []Reference
}

// Match returns the symbol of the first reference that matches c
func (t Table) Match(c RGB) (symbol.Symbol, bool) {
	for _, ref := range t.References {
		if ref.Matches(c) {
			return ref.Symbol, true
		}
	}
	return symbol.None, false
}

// Nearest returns the reference closest to c and its squared distance
func (t Table) Nearest(c RGB) (Reference, int, bool) {
	var best Reference
	bestDist := -1
	for _, ref := range t.References {
		d := c.DistanceSquared(ref.Color)
		if bestDist < 0 || d < bestDist {
			best, bestDist = ref, d
		}
	}
	return best, bestDist, bestDist >= 0
}

// UnclassifiableError describes a region whose mean color matched nothing
type UnclassifiableError struct {
	Table   string
	Region  image.Rectangle
	Mean    RGB
	Nearest string
	Dist    int
	Dump    string // Path of the debug crop, if one was written
}

func (e *UnclassifiableError) Error() string {
	msg := fmt.Sprintf("%s: no %s reference matches mean %s (%s) in region %v",
		ErrUnclassifiable, e.Table, e.Mean, e.Mean.Hex(), e.Region)
	if e.Nearest != "" {
		msg += fmt.Sprintf(", nearest %q at distance %d", e.Nearest, e.Dist)
	}
	if e.Dump != "" {
		msg += ", crop saved to " + e.Dump
	}
	return msg
}

func (e *UnclassifiableError) Unwrap() error {
	return ErrUnclassifiable
}

// Classifier samples image regions and classifies them against a table
type Classifier struct {
	// DebugDir, when set, receives a PNG crop of every unclassifiable region
	DebugDir string
	Logger   *slog.Logger
}

// NewClassifier creates a classifier; debugDir may be empty
func NewClassifier(debugDir string, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{DebugDir: debugDir, Logger: logger}
}

// Classify averages region of img and returns the first matching symbol of table
func (c *Classifier) Classify(img image.Image, region image.Rectangle, table Table) (symbol.Symbol, error) {
	mean, err := MeanColor(img, region)
	if err != nil {
		return symbol.None, err
	}

	if s, ok := table.Match(mean); ok {
		return s, nil
	}

	uerr := &UnclassifiableError{Table: table.Name, Region: region, Mean: mean}
	if ref, dist, ok := table.Nearest(mean); ok {
		uerr.Nearest, uerr.Dist = ref.Name, dist
	}

	if c.DebugDir != "" {
		path, err := c.dump(img, region, table.Name)
		if err != nil {
			c.logger().Warn("failed to save unclassifiable region",
				slog.String("table", table.Name),
				slog.Any("error", err))
		} else {
			uerr.Dump = path
		}
	}

	return symbol.None, uerr
}

func (c *Classifier) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// dump writes the offending crop so the region can be inspected afterwards
func (c *Classifier) dump(img image.Image, region image.Rectangle, table string) (string, error) {
	if err := os.MkdirAll(c.DebugDir, 0755); err != nil {
		return "", fmt.Errorf("error creating debug directory: %v", err)
	}

	name := fmt.Sprintf("%s_%d_%d_%d_%d.png", strings.ReplaceAll(table, " ", "_"),
		region.Min.X, region.Min.Y, region.Max.X, region.Max.Y)
	path := filepath.Join(c.DebugDir, name)

	if err := imaging.Save(imaging.Crop(img, region), path); err != nil {
		return "", err
	}

	c.logger().Debug("saved unclassifiable region", slog.String("path", path))
	return path, nil
}
