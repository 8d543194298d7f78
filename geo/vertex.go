// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements surface vertices with orthonormal local frames
// and the gradient-descent projection onto the zero level set
package geo

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Vertex holds a point on the surface together with its local frame.
// The frame matrix is M = [n|t1|t2] (columns); Minv maps world vectors
// into (n,t1,t2) components in one matrix-vector product.
type Vertex struct {
	X    []float64   // position on the surface
	N    []float64   // unit outward normal ∇Φ/‖∇Φ‖
	T1   []float64   // first tangent, T1 ⟂ N
	T2   []float64   // second tangent, T2 = N × T1
	Minv [][]float64 // inverse of the frame matrix
}

// NewVertex returns a vertex at x with the frame derived from ∇Φ(x).
// The tangent selection avoids the degenerate division when the normal
// is close to the z-axis.
func NewVertex(x []float64, model Potential) (o *Vertex) {
	o = new(Vertex)
	o.X = []float64{x[0], x[1], x[2]}
	g := make([]float64, 3)
	model.Gradient(g, x)
	gnorm := la.VecNorm(g)
	if gnorm == 0 {
		chk.Panic("cannot build frame: zero gradient at (%g,%g,%g)", x[0], x[1], x[2])
	}
	o.N = []float64{g[0] / gnorm, g[1] / gnorm, g[2] / gnorm}
	o.T1 = make([]float64, 3)
	if math.Abs(o.N[0]) > 0.5 || math.Abs(o.N[1]) > 0.5 {
		den := math.Sqrt(o.N[0]*o.N[0] + o.N[1]*o.N[1])
		o.T1[0], o.T1[1], o.T1[2] = o.N[1]/den, -o.N[0]/den, 0
	} else {
		den := math.Sqrt(o.N[0]*o.N[0] + o.N[2]*o.N[2])
		o.T1[0], o.T1[1], o.T1[2] = -o.N[2]/den, 0, o.N[0]/den
	}
	o.T2 = make([]float64, 3)
	utl.Cross3d(o.T2, o.N, o.T1) // t2 := n cross t1
	m := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		m[i][0] = o.N[i]
		m[i][1] = o.T1[i]
		m[i][2] = o.T2[i]
	}
	o.Minv = la.MatAlloc(3, 3)
	_, err := la.MatInv(o.Minv, m, 1e-14)
	if err != nil {
		chk.Panic("cannot invert frame matrix at (%g,%g,%g): %v", x[0], x[1], x[2], err)
	}
	return
}

// Cart2Local computes l := Minv * v; i.e. the (n,t1,t2) components of v
func (o *Vertex) Cart2Local(l, v []float64) {
	la.MatVecMul(l, 1, o.Minv, v)
}

// Local2Cart computes v := l[0]*n + l[1]*t1 + l[2]*t2
func (o *Vertex) Local2Cart(v, l []float64) {
	for i := 0; i < 3; i++ {
		v[i] = l[0]*o.N[i] + l[1]*o.T1[i] + l[2]*o.T2[i]
	}
}
