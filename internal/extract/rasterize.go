package extract

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// Request describes one PDF to render
type Request struct {
	PDF       string
	Prefix    string // Output path prefix; pages are written as <prefix>-<n>.png
	CropBox   bool   // Render the crop box instead of the media box
	FirstPage bool   // Render only the first page
}

// Rasterizer renders PDF pages to PNG files and returns them in page order
type Rasterizer interface {
	Rasterize(ctx context.Context, req Request) ([]string, error)
}

// PDFToCairo runs the poppler pdftocairo tool
type PDFToCairo struct {
	Binary string
	DPI    int
}

// Args returns the command line used for req
func (p PDFToCairo) Args(req Request) []string {
	args := []string{"-png", "-r", strconv.Itoa(p.DPI)}
	if req.CropBox {
		args = append(args, "-cropbox")
	}
	if req.FirstPage {
		args = append(args, "-f", "1", "-l", "1")
	}
	return append(args, req.PDF, req.Prefix)
}

// Rasterize runs pdftocairo and collects the pages it wrote
func (p PDFToCairo) Rasterize(ctx context.Context, req Request) ([]string, error) {
	binary := p.Binary
	if binary == "" {
		binary = "pdftocairo"
	}
	if _, err := exec.LookPath(binary); err != nil {
		return nil, fmt.Errorf("rasterizer %q not found: %v", binary, err)
	}

	cmd := exec.CommandContext(ctx, binary, p.Args(req)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("%s failed: %v: %s", binary, err, strings.TrimSpace(string(out)))
	}

	return Pages(req.Prefix)
}

// Pages finds the files written for prefix, ordered by page number.
// pdftocairo zero-pads page numbers to the width of the page count.
func Pages(prefix string) ([]string, error) {
	matches, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, err
	}

	type page struct {
		n    int
		path string
	}
	pages := make([]page, 0, len(matches))
	for _, m := range matches {
		num := strings.TrimSuffix(strings.TrimPrefix(m, prefix+"-"), ".png")
		n, err := strconv.Atoi(num)
		if err != nil {
			continue
		}
		pages = append(pages, page{n: n, path: m})
	}

	slices.SortFunc(pages, func(a, b page) int { return a.n - b.n })

	paths := make([]string, len(pages))
	for i, p := range pages {
		paths[i] = p.path
	}
	return paths, nil
}
