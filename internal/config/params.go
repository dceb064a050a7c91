// Package config holds the tool's tunable parameters and an optional JSON
// params file. Fields omitted from the JSON keep their defaults, so partial
// configs are safe.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/cluster.report/internal/cluster"
)

// Params is the optional on-disk configuration. All fields are pointers so
// a partial file only overrides what it names.
type Params struct {
	// Container tuning
	GrowthChunk *int `json:"growth_chunk,omitempty"`

	// Plot output tuning
	PlotWidthCm  *float64 `json:"plot_width_cm,omitempty"`
	PlotHeightCm *float64 `json:"plot_height_cm,omitempty"`
	SymbolSizePx *int     `json:"symbol_size_px,omitempty"`
}

// Defaults used for any field the params file does not set.
const (
	DefaultGrowthChunk  = cluster.DefaultGrowthChunk
	DefaultPlotWidthCm  = 18.0
	DefaultPlotHeightCm = 18.0
	DefaultSymbolSizePx = 8
)

// Load reads a Params file from path. The file must have a .json extension
// and stay under the size cap.
func Load(path string) (*Params, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("params file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat params file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("params file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read params file: %w", err)
	}

	p := &Params{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse params JSON: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	return p, nil
}

// Validate checks that set fields carry usable values.
func (p *Params) Validate() error {
	if p.GrowthChunk != nil && *p.GrowthChunk < 1 {
		return fmt.Errorf("growth_chunk must be positive, got %d", *p.GrowthChunk)
	}
	if p.PlotWidthCm != nil && *p.PlotWidthCm <= 0 {
		return fmt.Errorf("plot_width_cm must be positive, got %f", *p.PlotWidthCm)
	}
	if p.PlotHeightCm != nil && *p.PlotHeightCm <= 0 {
		return fmt.Errorf("plot_height_cm must be positive, got %f", *p.PlotHeightCm)
	}
	if p.SymbolSizePx != nil && *p.SymbolSizePx < 1 {
		return fmt.Errorf("symbol_size_px must be positive, got %d", *p.SymbolSizePx)
	}
	return nil
}

// GetGrowthChunk returns the configured growth chunk or its default.
func (p *Params) GetGrowthChunk() int {
	if p != nil && p.GrowthChunk != nil {
		return *p.GrowthChunk
	}
	return DefaultGrowthChunk
}

// GetPlotWidthCm returns the configured plot width or its default.
func (p *Params) GetPlotWidthCm() float64 {
	if p != nil && p.PlotWidthCm != nil {
		return *p.PlotWidthCm
	}
	return DefaultPlotWidthCm
}

// GetPlotHeightCm returns the configured plot height or its default.
func (p *Params) GetPlotHeightCm() float64 {
	if p != nil && p.PlotHeightCm != nil {
		return *p.PlotHeightCm
	}
	return DefaultPlotHeightCm
}

// GetSymbolSizePx returns the configured scatter symbol size or its default.
func (p *Params) GetSymbolSizePx() int {
	if p != nil && p.SymbolSizePx != nil {
		return *p.SymbolSizePx
	}
	return DefaultSymbolSizePx
}
