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

// Package vgcore is the geometry and rendering-state core of a 2D vector
// graphics library.
//
// Callers build a [Path], possibly shared across many draws, and a
// [Transform] describing where it goes, and then hand both to a [Canvas].
// The canvas combines geometry, transform and the current paint into
// calls to a rasterization backend (see package
// seehuhn.de/go/vgcore/backend).  Every drawing operation installs its
// complete transformation before acting, so that no call is affected by
// state left behind by an earlier one.
//
// Paths are copy-on-write: copies made with [Path.Clone] share the
// underlying command buffer until one of them is modified.
//
// By default the canvas draws using the software rasterizer from
// seehuhn.de/go/vgcore/raster.  Other backends can be injected using
// [WithBackend].
package vgcore
