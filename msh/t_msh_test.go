// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"testing"

	"github.com/cpmech/gomesh/geo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// newVerts returns n bare vertices tagged by their x-coordinate
func newVerts(n int) (res []*geo.Vertex) {
	for i := 0; i < n; i++ {
		res = append(res, &geo.Vertex{X: []float64{float64(i), 0, 0}})
	}
	return
}

// frontIds extracts the x-coordinate tags of the front, in order
func frontIds(f *Front) (ids []int) {
	for i := 0; i < f.Size(); i++ {
		ids = append(ids, int(f.At(i).X[0]))
	}
	return
}

func Test_front01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("front01. modular predecessor and successor")

	var f Front
	for _, v := range newVerts(5) {
		f.Append(v)
	}
	chk.IntAssert(f.Size(), 5)
	chk.IntAssert(f.Prev(0), 4)
	chk.IntAssert(f.Prev(3), 2)
	chk.IntAssert(f.Succ(4), 0)
	chk.IntAssert(f.Succ(1), 2)
}

func Test_front02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("front02. splice preserves order and earlier indices")

	vv := newVerts(9)
	var f Front
	for _, v := range vv[:5] {
		f.Append(v)
	}

	// replace middle element with two new ones
	f.Splice(2, []*geo.Vertex{vv[7], vv[8]})
	chk.Ints(tst, "after mid splice", frontIds(&f), []int{0, 1, 7, 8, 3, 4})

	// replace last element with nothing
	f.Splice(5, nil)
	chk.Ints(tst, "after drop", frontIds(&f), []int{0, 1, 7, 8, 3})

	// replace first element with one
	f.Splice(0, []*geo.Vertex{vv[6]})
	chk.Ints(tst, "after head splice", frontIds(&f), []int{6, 1, 7, 8, 3})
}

func Test_front03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("front03. splice down to the empty front")

	var f Front
	f.Append(newVerts(1)[0])
	f.Splice(0, nil)
	chk.IntAssert(f.Size(), 0)

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("splice on the empty front should have panicked\n")
		}
	}()
	f.Splice(0, nil)
}

func Test_mesh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh01. append-only growth")

	vv := newVerts(4)
	var m Mesh
	for _, v := range vv {
		m.AddVert(v)
	}
	m.AddTri(vv[0], vv[1], vv[2])
	m.AddTri(vv[0], vv[2], vv[3])
	chk.IntAssert(len(m.Verts), 4)
	chk.IntAssert(m.Ntri(), 2)
	if m.Tris[0].V[1] != vv[1] {
		tst.Errorf("triangle does not keep its vertex records\n")
	}
}
