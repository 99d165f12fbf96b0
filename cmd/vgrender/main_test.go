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

package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "box.yaml")
	out := filepath.Join(dir, "box.png")
	scene := `
width: 30
height: 20
background: white
ops:
  - op: fill
    path: "M5 5h10v10h-10z"
    paint: {color: "#336699"}
`
	if err := os.WriteFile(in, []byte(scene), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := renderFile(in, out); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 20 {
		t.Errorf("got size %dx%d", b.Dx(), b.Dy())
	}
	r, g, b, _ := img.At(10, 10).RGBA()
	if r>>8 != 0x33 || g>>8 != 0x66 || b>>8 != 0x99 {
		t.Errorf("got colour %02x%02x%02x", r>>8, g>>8, b>>8)
	}

	leftovers, _ := filepath.Glob(filepath.Join(dir, ".vgrender-*"))
	if len(leftovers) != 0 {
		t.Errorf("temporary files left behind: %v", leftovers)
	}
}

func TestRenderFileErrors(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.png")
	if err := renderFile(filepath.Join(dir, "missing.yaml"), out); err == nil {
		t.Error("missing scene: no error")
	}

	in := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(in, []byte("width: 5\nheight: 5\nops:\n  - op: nope\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := renderFile(in, out); err == nil {
		t.Error("bad scene: no error")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output written for a failed render")
	}
}
