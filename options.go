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

package vgcore

import (
	"log/slog"

	"seehuhn.de/go/vgcore/backend"
	"seehuhn.de/go/vgcore/raster"
)

// Option configures a [Canvas] during creation.
type Option func(*options)

type options struct {
	backend backend.Factory
	logger  *slog.Logger
}

func defaultOptions() options {
	return options{
		backend: raster.New,
	}
}

// WithBackend selects the rasterization backend.  The factory is called
// once, with the surface of the new canvas.  The default is the software
// rasterizer from package raster.
func WithBackend(f backend.Factory) Option {
	return func(o *options) {
		if f != nil {
			o.backend = f
		}
	}
}

// WithLogger sets a logger for one canvas, overriding the package-wide
// logger set by [SetLogger].
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
