// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"github.com/cpmech/gosl/io"
)

// projection constants
const (
	projTol   = 1e-12 // tolerance on the squared step length
	projItMax = 100   // hard cap on iterations
	projItWrn = 90    // iteration count at which a warning is issued
)

// Projector snaps ambient points onto the zero level set of a potential
// by descending along the gradient:
//  x ← x - Φ(x) ∇Φ(x) / ‖∇Φ(x)‖²
type Projector struct {
	Model Potential // the potential defining the surface
	Nwarn int       // number of non-converged projections so far
	g     []float64 // gradient workspace
}

// Potential defines what the projector needs from a potential
type Potential interface {
	Phi(x []float64) float64
	Gradient(g, x []float64)
}

// NewProjector returns a projector for the given potential
func NewProjector(model Potential) *Projector {
	return &Projector{Model: model, g: make([]float64, 3)}
}

// Project returns the surface vertex obtained by projecting x0 onto Φ=0.
// Non-convergence is not fatal: the last iterate is used and a warning
// is counted (and printed when io.Verbose is on).
func (o *Projector) Project(x0 []float64) *Vertex {
	x := []float64{x0[0], x0[1], x0[2]}
	it := 0
	for ; it < projItMax; it++ {
		o.Model.Gradient(o.g, x)
		gg := o.g[0]*o.g[0] + o.g[1]*o.g[1] + o.g[2]*o.g[2]
		if gg == 0 {
			break
		}
		cf := o.Model.Phi(x) / gg
		dx0 := cf * o.g[0]
		dx1 := cf * o.g[1]
		dx2 := cf * o.g[2]
		x[0] -= dx0
		x[1] -= dx1
		x[2] -= dx2
		if dx0*dx0+dx1*dx1+dx2*dx2 < projTol {
			break
		}
	}
	if it >= projItWrn {
		o.Nwarn++
		if io.Verbose {
			io.Pfyel("projection did not converge near (%g,%g,%g) after %d iterations\n", x[0], x[1], x[2], it)
		}
	}
	return NewVertex(x, o.Model)
}
