package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/drake/bento/grid"
	"github.com/drake/bento/internal/ctxlog"
	"github.com/drake/bento/preset"
)

// Source names where a layout came from.
type Source string

const (
	SourcePreset Source = "preset"
	SourceUser   Source = "user"
	SourceFlag   Source = "flag"
)

// hclGridFile is the top-level shape of a grid file:
//
//	columns = [1.3, 1, 1.8, 2.3]
//	rows    = [0.6, 1, 1.2, 1, 1]
//	flow    = "row"
//
//	block "1" {
//	  title    = "1. Full Header"
//	  col_span = 4
//	}
type hclGridFile struct {
	Columns []float64   `hcl:"columns"`
	Rows    []float64   `hcl:"rows"`
	Flow    *string     `hcl:"flow,optional"`
	Blocks  []*hclBlock `hcl:"block,block"`
}

type hclBlock struct {
	ID      string  `hcl:"id,label"`
	Title   *string `hcl:"title,optional"`
	Label   *string `hcl:"label,optional"`
	ColSpan *int    `hcl:"col_span,optional"`
	RowSpan *int    `hcl:"row_span,optional"`
}

// LoadGrid parses and decodes an HCL grid file.
func LoadGrid(path string) (grid.Layout, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return grid.Layout{}, fmt.Errorf("failed to parse grid file %s: %w", path, diags)
	}
	return decodeGrid(path, file)
}

// ParseGrid decodes grid source held in memory. filename is used in
// diagnostics only.
func ParseGrid(filename string, src []byte) (grid.Layout, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return grid.Layout{}, fmt.Errorf("failed to parse grid file %s: %w", filename, diags)
	}
	return decodeGrid(filename, file)
}

func decodeGrid(filename string, file *hcl.File) (grid.Layout, error) {
	var parsed hclGridFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return grid.Layout{}, fmt.Errorf("failed to decode grid file %s: %w", filename, diags)
	}

	flow := grid.FlowRow
	if parsed.Flow != nil {
		f, err := grid.ParseFlow(*parsed.Flow)
		if err != nil {
			return grid.Layout{}, fmt.Errorf("grid file %s: %w", filename, err)
		}
		flow = f
	}

	layout := grid.Layout{
		Template: grid.Template{
			Columns: parsed.Columns,
			Rows:    parsed.Rows,
			Flow:    flow,
		},
		Items: make([]grid.Item, 0, len(parsed.Blocks)),
	}

	for _, b := range parsed.Blocks {
		id, err := strconv.Atoi(b.ID)
		if err != nil {
			return grid.Layout{}, fmt.Errorf("grid file %s: block label %q is not an integer id", filename, b.ID)
		}
		item := grid.Item{
			ID:      id,
			Title:   fmt.Sprintf("%d. Block", id),
			Label:   b.ID,
			ColSpan: 1,
			RowSpan: 1,
		}
		if b.Title != nil {
			item.Title = *b.Title
		}
		if b.Label != nil {
			item.Label = *b.Label
		}
		if b.ColSpan != nil {
			item.ColSpan = *b.ColSpan
		}
		if b.RowSpan != nil {
			item.RowSpan = *b.RowSpan
		}
		layout.Items = append(layout.Items, item)
	}

	return layout, nil
}

// ResolveGrid picks the layout to render: an explicit path wins, then the
// user's GridFile if it exists, then the built-in preset.
func ResolveGrid(ctx context.Context, path string) (grid.Layout, Source, error) {
	logger := ctxlog.FromContext(ctx)

	if path != "" {
		logger.Debug("Loading grid from flag.", "path", path)
		l, err := LoadGrid(path)
		return l, SourceFlag, err
	}

	user := GridFile()
	if _, err := os.Stat(user); err == nil {
		logger.Debug("Loading user grid.", "path", user)
		l, err := LoadGrid(user)
		return l, SourceUser, err
	} else if !errors.Is(err, fs.ErrNotExist) {
		return grid.Layout{}, SourceUser, fmt.Errorf("failed to stat %s: %w", user, err)
	}

	logger.Debug("Using built-in bento preset.")
	return preset.Bento(), SourcePreset, nil
}
