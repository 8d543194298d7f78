// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gomesh/geo"
	"github.com/cpmech/gosl/chk"
)

// Front holds the active front: the circular sequence of surface
// vertices separating the meshed region from the unmeshed surface.
// Indexing is modular; a contiguous slice with linear-time splice is
// adequate for front sizes in the thousands.
type Front struct {
	verts []*geo.Vertex
}

// Append adds a vertex at the end
func (o *Front) Append(v *geo.Vertex) {
	o.verts = append(o.verts, v)
}

// Size returns the number of front vertices
func (o *Front) Size() int {
	return len(o.verts)
}

// At returns the vertex at index i
func (o *Front) At(i int) *geo.Vertex {
	return o.verts[i]
}

// Prev returns the index of the predecessor of i, modulo size
func (o *Front) Prev(i int) int {
	if i == 0 {
		return len(o.verts) - 1
	}
	return i - 1
}

// Succ returns the index of the successor of i, modulo size
func (o *Front) Succ(i int) int {
	if i == len(o.verts)-1 {
		return 0
	}
	return i + 1
}

// Splice replaces the single vertex at idx with the ordered contents of
// seg. The circular order of the remaining vertices is preserved and
// indices smaller than idx are stable. seg may be empty.
func (o *Front) Splice(idx int, seg []*geo.Vertex) {
	if idx < 0 || idx >= len(o.verts) {
		chk.Panic("cannot splice: index %d is out of range [0,%d)", idx, len(o.verts))
	}
	nnew := len(o.verts) - 1 + len(seg)
	res := make([]*geo.Vertex, 0, nnew)
	res = append(res, o.verts[:idx]...)
	res = append(res, seg...)
	res = append(res, o.verts[idx+1:]...)
	o.verts = res
}
