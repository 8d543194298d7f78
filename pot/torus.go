// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pot

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Torus implements the circular torus with major radius R and minor radius r:
//  Φ(x) = (√(x²+y²) - R)² + z² - r²
type Torus struct {

	// parameters
	rmajor float64 // distance from axis to tube centre
	rminor float64 // tube radius
}

// add model to factory
func init() {
	allocators["Torus"] = func() Model { return new(Torus) }
}

// Init initialises model
func (o *Torus) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "rmajor":
			o.rmajor = p.V
		case "rminor":
			o.rminor = p.V
		default:
			return chk.Err("Torus: parameter named %q is incorrect", p.N)
		}
	}
	if o.rmajor <= 0 || o.rminor <= 0 {
		return chk.Err("Torus: radii must be positive. R=%g, r=%g is invalid", o.rmajor, o.rminor)
	}
	if o.rminor >= o.rmajor {
		return chk.Err("Torus: minor radius must be smaller than major radius. R=%g, r=%g is invalid", o.rmajor, o.rminor)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Torus) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "rmajor", V: 1.0},
		&fun.Prm{N: "rminor", V: 0.3},
	}
}

// ArgNames returns the positional argument names and the minimum count
func (o Torus) ArgNames() ([]string, int) {
	return []string{"rmajor", "rminor"}, 2
}

// Phi evaluates the potential at x
func (o Torus) Phi(x []float64) float64 {
	ρ := math.Sqrt(x[0]*x[0] + x[1]*x[1])
	return (ρ-o.rmajor)*(ρ-o.rmajor) + x[2]*x[2] - o.rminor*o.rminor
}

// Gradient computes g := ∇Φ at x
//  Note: the gradient is singular on the torus axis ρ=0; the axis is far
//  from the zero level set, so the marching loop never evaluates it there
func (o Torus) Gradient(g, x []float64) {
	ρ := math.Sqrt(x[0]*x[0] + x[1]*x[1])
	cf := 0.0
	if ρ > 0 {
		cf = 2.0 * (ρ - o.rmajor) / ρ
	}
	g[0] = cf * x[0]
	g[1] = cf * x[1]
	g[2] = 2.0 * x[2]
}
