// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pot

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Sphere implements the spherical potential
//  Φ(x) = x² + y² + z² - R²
type Sphere struct {
	r float64 // radius
}

// add model to factory
func init() {
	allocators["Sphere"] = func() Model { return new(Sphere) }
}

// Init initialises model
func (o *Sphere) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "r":
			o.r = p.V
		default:
			return chk.Err("Sphere: parameter named %q is incorrect", p.N)
		}
	}
	if o.r <= 0 {
		return chk.Err("Sphere: radius must be positive. r=%g is invalid", o.r)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Sphere) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "r", V: 1.0},
	}
}

// ArgNames returns the positional argument names and the minimum count
func (o Sphere) ArgNames() ([]string, int) {
	return []string{"r"}, 1
}

// Phi evaluates the potential at x
func (o Sphere) Phi(x []float64) float64 {
	return x[0]*x[0] + x[1]*x[1] + x[2]*x[2] - o.r*o.r
}

// Gradient computes g := ∇Φ at x
func (o Sphere) Gradient(g, x []float64) {
	g[0] = 2.0 * x[0]
	g[1] = 2.0 * x[1]
	g[2] = 2.0 * x[2]
}
