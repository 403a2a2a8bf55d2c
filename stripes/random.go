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

package stripes

// Random is a reproducible stream of pseudo-random numbers.
// It combines two multiply-with-carry generators, and produces the same
// sequence as the generator of the Skia graphics library, so that stripe
// colors match reference images made there.
//
// The zero value is not useful; use NewRandom.
type Random struct {
	k, j uint32
}

// NewRandom returns a generator initialized with seed.
func NewRandom(seed uint32) *Random {
	r := &Random{}
	r.Seed(seed)
	return r
}

// Seed restarts the stream.
func (r *Random) Seed(seed uint32) {
	r.k = nextLCG(seed)
	if r.k == 0 {
		r.k = nextLCG(r.k)
	}
	r.j = nextLCG(r.k)
	if r.j == 0 {
		r.j = nextLCG(r.j)
	}
}

// NextU returns the next 32 random bits.
func (r *Random) NextU() uint32 {
	r.k = 30345*(r.k&0xffff) + r.k>>16
	r.j = 18000*(r.j&0xffff) + r.j>>16
	return (r.k<<16 | r.k>>16) + r.j
}

func nextLCG(x uint32) uint32 {
	return 1664525*x + 1013904223
}
