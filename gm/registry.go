// seehuhn.de/go/rastergm - visual tests for a 2D rasterizer
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

package gm

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Factory creates a new, unprepared GM.
type Factory func() GM

// Errors returned by a Registry.
var (
	ErrDuplicate = errors.New("GM already registered")
	ErrUnknown   = errors.New("unknown GM")
)

// Registry maps GM names to factories.
// There is no global registry: programs create one and register the tests
// they want to run.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under the given name.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" {
		return errors.New("empty GM name")
	}
	if f == nil {
		return fmt.Errorf("%s: nil factory", name)
	}
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%s: %w", name, ErrDuplicate)
	}
	r.factories[name] = f
	return nil
}

// New creates a fresh instance of the named GM.
func (r *Registry) New(name string) (*Instance, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknown)
	}
	return NewInstance(f()), nil
}

// Names returns the registered names in alphabetical order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.factories))
}
