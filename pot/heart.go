// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pot

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Heart implements Taubin's algebraic heart surface
//  Φ(x) = (x² + 9y²/4 + z² - 1)³ - x²z³ - 9y²z³/80
type Heart struct{}

// add model to factory
func init() {
	allocators["Heart"] = func() Model { return new(Heart) }
}

// Init initialises model
func (o *Heart) Init(prms fun.Prms) (err error) {
	if len(prms) > 0 {
		return chk.Err("Heart: no parameters are accepted; got %d", len(prms))
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Heart) GetPrms() fun.Prms {
	return nil
}

// ArgNames returns the positional argument names and the minimum count
func (o Heart) ArgNames() ([]string, int) {
	return nil, 0
}

// Phi evaluates the potential at x
func (o Heart) Phi(x []float64) float64 {
	a := x[0]*x[0] + 9.0*x[1]*x[1]/4.0 + x[2]*x[2] - 1.0
	z3 := x[2] * x[2] * x[2]
	return a*a*a - x[0]*x[0]*z3 - 9.0*x[1]*x[1]*z3/80.0
}

// Gradient computes g := ∇Φ at x
func (o Heart) Gradient(g, x []float64) {
	a := x[0]*x[0] + 9.0*x[1]*x[1]/4.0 + x[2]*x[2] - 1.0
	a2 := a * a
	z2 := x[2] * x[2]
	z3 := z2 * x[2]
	g[0] = 6.0*x[0]*a2 - 2.0*x[0]*z3
	g[1] = 27.0*x[1]*a2/2.0 - 9.0*x[1]*z3/40.0
	g[2] = 6.0*x[2]*a2 - 3.0*x[0]*x[0]*z2 - 27.0*x[1]*x[1]*z2/80.0
}
