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

package testcases

import (
	"iter"
	"maps"
	"slices"
)

// All contains all test cases, grouped by category.
var All = map[string][]TestCase{
	"arc":    arcCases,
	"ctm":    ctmCases,
	"fill":   fillCases,
	"stroke": strokeCases,
}

// Key returns the name of the reference image of a case.
func Key(category, name string) string {
	return category + "_" + name
}

// Sorted yields every case with its key, ordered by category and, within
// a category, in table order.
func Sorted() iter.Seq2[string, TestCase] {
	return func(yield func(string, TestCase) bool) {
		for _, category := range slices.Sorted(maps.Keys(All)) {
			for _, tc := range All[category] {
				if !yield(Key(category, tc.Name), tc) {
					return
				}
			}
		}
	}
}
