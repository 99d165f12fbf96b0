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

package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"seehuhn.de/go/vgcore"
	"seehuhn.de/go/vgcore/raster/testcases"
)

// FromTestCase converts a rasterizer test case into a scene, which
// draws the case in black on a white background.
func FromTestCase(tc *testcases.TestCase) *Scene {
	op := Op{
		Path:  vgcore.PathFromData(tc.Path).String(),
		Paint: &Paint{Color: formatColor(vgcore.Black)},
	}
	if t := vgcore.TransformFromMatrix(tc.Matrix()); !t.IsIdentity() {
		op.Transform = t.String()
	}

	switch o := tc.Op.(type) {
	case testcases.Fill:
		op.Op = "fill"
		op.Rule = o.Rule.String()
	case testcases.Stroke:
		st := o.Style
		op.Op = "stroke"
		op.Stroke = &Stroke{
			Width:      &st.Width,
			Cap:        st.Cap.String(),
			Join:       st.Join.String(),
			MiterLimit: &st.MiterLimit,
			Dash:       st.Dash,
			DashOffset: st.DashOffset,
		}
	}

	return &Scene{
		Width:      float64(tc.Width),
		Height:     float64(tc.Height),
		Background: formatColor(vgcore.White),
		Ops:        []Op{op},
	}
}

// ExportTestCases writes every rasterizer test case to dir, as a scene
// file named <category>_<name>.yaml.  It returns the number of files
// written.
func ExportTestCases(dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, err
	}
	n := 0
	for _, category := range testcases.Categories() {
		for i := range testcases.All[category] {
			tc := &testcases.All[category][i]
			data, err := FromTestCase(tc).Marshal()
			if err != nil {
				return n, fmt.Errorf("%s/%s: %w", category, tc.Name, err)
			}
			fname := filepath.Join(dir, category+"_"+tc.Name+".yaml")
			if err := os.WriteFile(fname, data, 0o644); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}
