// seehuhn.de/go/vgcore - a 2D vector graphics core
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package scene reads YAML scene descriptions and renders them onto a
// [vgcore.Canvas].
package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scene is a list of drawing operations on a canvas.
type Scene struct {
	Width      float64   `yaml:"width"`
	Height     float64   `yaml:"height"`
	Origin     []float64 `yaml:"origin,omitempty,flow"` // device position of the top-left corner
	Background string    `yaml:"background,omitempty"`
	Ops        []Op      `yaml:"ops"`

	// dir is used to resolve relative image file names.
	dir string
}

// Op is a single drawing operation.  Op selects the kind:
//
//   - fill, stroke: draw Path with Paint
//   - clip: intersect the clip region with Path, or with Rect
//   - save, restore: push or pop the graphics state
//   - luminance: convert the canvas to a luminance mask
//   - image: draw the PNG file Image into Rect
//   - group: draw Ops onto a new layer, then blend it onto the canvas
type Op struct {
	Op        string    `yaml:"op"`
	Path      string    `yaml:"path,omitempty"`
	Rect      []float64 `yaml:"rect,omitempty,flow"`
	Rule      string    `yaml:"rule,omitempty"`
	Transform string    `yaml:"transform,omitempty"`
	Paint     *Paint    `yaml:"paint,omitempty"`
	Stroke    *Stroke   `yaml:"stroke,omitempty"`

	Image  string    `yaml:"image,omitempty"`
	Source []float64 `yaml:"source,omitempty,flow"`

	Blend   string   `yaml:"blend,omitempty"`
	Opacity *float64 `yaml:"opacity,omitempty"`
	Ops     []Op     `yaml:"ops,omitempty"`
}

// Paint selects the source colour of fill and stroke operations.  At
// most one of the fields may be set; the default is opaque black.
type Paint struct {
	Color  string  `yaml:"color,omitempty"`
	Linear *Linear `yaml:"linear,omitempty"`
	Radial *Radial `yaml:"radial,omitempty"`
}

// Linear describes a linear gradient.
type Linear struct {
	X1        float64 `yaml:"x1"`
	Y1        float64 `yaml:"y1"`
	X2        float64 `yaml:"x2"`
	Y2        float64 `yaml:"y2"`
	Spread    string  `yaml:"spread,omitempty"`
	Stops     []Stop  `yaml:"stops"`
	Transform string  `yaml:"transform,omitempty"`
}

// Radial describes a radial gradient.  The focal point defaults to the
// centre.
type Radial struct {
	CX        float64  `yaml:"cx"`
	CY        float64  `yaml:"cy"`
	R         float64  `yaml:"r"`
	FX        *float64 `yaml:"fx,omitempty"`
	FY        *float64 `yaml:"fy,omitempty"`
	Spread    string   `yaml:"spread,omitempty"`
	Stops     []Stop   `yaml:"stops"`
	Transform string   `yaml:"transform,omitempty"`
}

// Stop is a gradient stop.
type Stop struct {
	Offset float64 `yaml:"offset"`
	Color  string  `yaml:"color"`
}

// Stroke holds the stroke parameters.  Missing values take the
// defaults of [vgcore.NewStrokeData], with line width 1.
type Stroke struct {
	Width      *float64  `yaml:"width,omitempty"`
	Cap        string    `yaml:"cap,omitempty"`
	Join       string    `yaml:"join,omitempty"`
	MiterLimit *float64  `yaml:"miter_limit,omitempty"`
	Dash       []float64 `yaml:"dash,omitempty,flow"`
	DashOffset float64   `yaml:"dash_offset,omitempty"`
}

// Parse decodes a scene from YAML.  Relative image file names are
// resolved against dir.
func Parse(data []byte, dir string) (*Scene, error) {
	s := &Scene{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if !(s.Width > 0 && s.Height > 0) {
		return nil, fmt.Errorf("invalid scene size %gx%g", s.Width, s.Height)
	}
	if len(s.Origin) != 0 && len(s.Origin) != 2 {
		return nil, fmt.Errorf("origin must have two coordinates, not %d", len(s.Origin))
	}
	s.dir = dir
	return s, nil
}

// Load reads a scene file.
func Load(fname string) (*Scene, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := Parse(data, filepath.Dir(fname))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return s, nil
}

// Marshal encodes s as YAML.
func (s *Scene) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
