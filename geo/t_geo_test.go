// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"
	"testing"

	"github.com/cpmech/gomesh/pot"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// checkFrame verifies orthonormality and the inverse round-trip
func checkFrame(tst *testing.T, v *Vertex) {
	chk.Float64(tst, "‖n‖", 1e-10, la.VecNorm(v.N), 1)
	chk.Float64(tst, "‖t1‖", 1e-10, la.VecNorm(v.T1), 1)
	chk.Float64(tst, "‖t2‖", 1e-10, la.VecNorm(v.T2), 1)
	chk.Float64(tst, "n·t1", 1e-10, la.VecDot(v.N, v.T1), 0)
	chk.Float64(tst, "n·t2", 1e-10, la.VecDot(v.N, v.T2), 0)
	chk.Float64(tst, "t1·t2", 1e-10, la.VecDot(v.T1, v.T2), 0)
	u := []float64{0.31, -1.7, 2.9}
	l := make([]float64, 3)
	w := make([]float64, 3)
	v.Cart2Local(l, u)
	v.Local2Cart(w, l)
	chk.Vector(tst, "local2cart(cart2local(u))", 1e-10, w, u)
}

func Test_frame01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame01. orthonormal frames over many normals")

	model, err := pot.New("Sphere", []float64{1})
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	// sweep directions, including near the z-axis where the tangent
	// selection switches branch
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			θ := 1e-3 + float64(i)*(math.Pi-2e-3)/7.0
			φ := float64(j) * 2.0 * math.Pi / 8.0
			x := []float64{math.Sin(θ) * math.Cos(φ), math.Sin(θ) * math.Sin(φ), math.Cos(θ)}
			v := NewVertex(x, model)
			checkFrame(tst, v)
			chk.Vector(tst, io.Sf("n @ (%.3f,%.3f)", θ, φ), 1e-10, v.N, x)
		}
	}
}

func Test_project01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("project01. projection onto the unit sphere")

	model, err := pot.New("Sphere", []float64{1})
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	prj := NewProjector(model)
	seeds := [][]float64{
		{-2e-5, 0, 0},
		{3, 2, 1},
		{0.1, 0.1, 0.1},
		{0, 0, 5},
	}
	for _, x0 := range seeds {
		v := prj.Project(x0)
		chk.Float64(tst, io.Sf("Φ @ proj(%g,%g,%g)", x0[0], x0[1], x0[2]), 1e-6, model.Phi(v.X), 0)
		chk.Float64(tst, "‖x‖", 1e-6, la.VecNorm(v.X), 1)
		checkFrame(tst, v)
	}
	chk.IntAssert(prj.Nwarn, 0)
}

func Test_project02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("project02. projection onto the torus")

	model, err := pot.New("Torus", []float64{1, 0.3})
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	prj := NewProjector(model)
	seeds := [][]float64{
		{-2e-5, 0, 0},
		{1.6, 0, 0.2},
		{0, 0.8, -0.4},
	}
	for _, x0 := range seeds {
		v := prj.Project(x0)
		chk.Float64(tst, io.Sf("Φ @ proj(%g,%g,%g)", x0[0], x0[1], x0[2]), 1e-6, model.Phi(v.X), 0)
		ρ := math.Sqrt(v.X[0]*v.X[0] + v.X[1]*v.X[1])
		tube := (ρ-1)*(ρ-1) + v.X[2]*v.X[2]
		chk.Float64(tst, "tube radius²", 1e-6, tube, 0.09)
		checkFrame(tst, v)
	}
}
