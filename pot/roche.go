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

// BinaryRoche implements the Roche potential of a synchronously rotating
// binary with instantaneous separation d, mass ratio q and synchronicity
// parameter F, shifted by the surface value Ω₀:
//  Φ(x) = 1/|r| + q (1/ρ - x/d²) + F² (1+q) (x²+y²)/2 - Ω₀
// where ρ = √((x-d)² + y² + z²)
type BinaryRoche struct {

	// parameters
	d      float64 // instantaneous separation
	q      float64 // mass ratio m2/m1
	f      float64 // synchronicity parameter
	omega0 float64 // surface potential value
}

// add model to factory
func init() {
	allocators["BinaryRoche"] = func() Model { return new(BinaryRoche) }
}

// Init initialises model
func (o *BinaryRoche) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "d":
			o.d = p.V
		case "q":
			o.q = p.V
		case "f":
			o.f = p.V
		case "omega0":
			o.omega0 = p.V
		default:
			return chk.Err("BinaryRoche: parameter named %q is incorrect", p.N)
		}
	}
	if o.d <= 0 {
		return chk.Err("BinaryRoche: separation must be positive. d=%g is invalid", o.d)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o BinaryRoche) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "d", V: 1.0},
		&fun.Prm{N: "q", V: 0.5},
		&fun.Prm{N: "f", V: 1.0},
		&fun.Prm{N: "omega0", V: 3.5},
	}
}

// ArgNames returns the positional argument names and the minimum count
func (o BinaryRoche) ArgNames() ([]string, int) {
	return []string{"d", "q", "f", "omega0"}, 3
}

// Phi evaluates the potential at x
func (o BinaryRoche) Phi(x []float64) float64 {
	r := math.Sqrt(x[0]*x[0] + x[1]*x[1] + x[2]*x[2])
	ρ := math.Sqrt((x[0]-o.d)*(x[0]-o.d) + x[1]*x[1] + x[2]*x[2])
	return 1.0/r + o.q*(1.0/ρ-x[0]/(o.d*o.d)) + o.f*o.f*(1.0+o.q)*(x[0]*x[0]+x[1]*x[1])/2.0 - o.omega0
}

// Gradient computes g := ∇Φ at x
func (o BinaryRoche) Gradient(g, x []float64) {
	r := math.Sqrt(x[0]*x[0] + x[1]*x[1] + x[2]*x[2])
	ρ := math.Sqrt((x[0]-o.d)*(x[0]-o.d) + x[1]*x[1] + x[2]*x[2])
	r3 := r * r * r
	ρ3 := ρ * ρ * ρ
	cf := o.f * o.f * (1.0 + o.q)
	g[0] = -x[0]/r3 + o.q*(-(x[0]-o.d)/ρ3-1.0/(o.d*o.d)) + cf*x[0]
	g[1] = -x[1]/r3 - o.q*x[1]/ρ3 + cf*x[1]
	g[2] = -x[2]/r3 - o.q*x[2]/ρ3
}

// MisalignedBinaryRoche implements the Roche potential of a binary whose
// spin axis ŝ = (sinθ cosφ, sinθ sinφ, cosθ) is misaligned with the
// orbital angular momentum. The centrifugal term measures the squared
// distance from the spin axis:
//  Φ(x) = 1/|r| + q (1/ρ - x/d²) + F² (1+q) (|r|² - (r·ŝ)²)/2 - Ω₀
type MisalignedBinaryRoche struct {

	// parameters
	d      float64 // instantaneous separation
	q      float64 // mass ratio m2/m1
	f      float64 // synchronicity parameter
	theta  float64 // spin axis polar angle
	phi    float64 // spin axis azimuth
	omega0 float64 // surface potential value

	// derived
	s []float64 // unit spin axis
}

// add model to factory
func init() {
	allocators["MisalignedBinaryRoche"] = func() Model { return new(MisalignedBinaryRoche) }
}

// Init initialises model
func (o *MisalignedBinaryRoche) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "d":
			o.d = p.V
		case "q":
			o.q = p.V
		case "f":
			o.f = p.V
		case "theta":
			o.theta = p.V
		case "phi":
			o.phi = p.V
		case "omega0":
			o.omega0 = p.V
		default:
			return chk.Err("MisalignedBinaryRoche: parameter named %q is incorrect", p.N)
		}
	}
	if o.d <= 0 {
		return chk.Err("MisalignedBinaryRoche: separation must be positive. d=%g is invalid", o.d)
	}
	st, ct := math.Sin(o.theta), math.Cos(o.theta)
	o.s = []float64{st * math.Cos(o.phi), st * math.Sin(o.phi), ct}
	return
}

// GetPrms gets (an example) of parameters
func (o MisalignedBinaryRoche) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "d", V: 1.0},
		&fun.Prm{N: "q", V: 0.5},
		&fun.Prm{N: "f", V: 1.0},
		&fun.Prm{N: "theta", V: 0.2},
		&fun.Prm{N: "phi", V: 0.0},
		&fun.Prm{N: "omega0", V: 3.5},
	}
}

// ArgNames returns the positional argument names and the minimum count
func (o MisalignedBinaryRoche) ArgNames() ([]string, int) {
	return []string{"d", "q", "f", "theta", "phi", "omega0"}, 5
}

// Phi evaluates the potential at x
func (o MisalignedBinaryRoche) Phi(x []float64) float64 {
	r2 := x[0]*x[0] + x[1]*x[1] + x[2]*x[2]
	r := math.Sqrt(r2)
	ρ := math.Sqrt((x[0]-o.d)*(x[0]-o.d) + x[1]*x[1] + x[2]*x[2])
	rs := x[0]*o.s[0] + x[1]*o.s[1] + x[2]*o.s[2]
	return 1.0/r + o.q*(1.0/ρ-x[0]/(o.d*o.d)) + o.f*o.f*(1.0+o.q)*(r2-rs*rs)/2.0 - o.omega0
}

// Gradient computes g := ∇Φ at x
func (o MisalignedBinaryRoche) Gradient(g, x []float64) {
	r := math.Sqrt(x[0]*x[0] + x[1]*x[1] + x[2]*x[2])
	ρ := math.Sqrt((x[0]-o.d)*(x[0]-o.d) + x[1]*x[1] + x[2]*x[2])
	r3 := r * r * r
	ρ3 := ρ * ρ * ρ
	cf := o.f * o.f * (1.0 + o.q)
	rs := x[0]*o.s[0] + x[1]*o.s[1] + x[2]*o.s[2]
	g[0] = -x[0]/r3 + o.q*(-(x[0]-o.d)/ρ3-1.0/(o.d*o.d)) + cf*(x[0]-rs*o.s[0])
	g[1] = -x[1]/r3 - o.q*x[1]/ρ3 + cf*(x[1]-rs*o.s[1])
	g[2] = -x[2]/r3 - o.q*x[2]/ρ3 + cf*(x[2]-rs*o.s[2])
}

// RotateRoche implements the potential of a single rotating star with
// angular velocity scale ω and polar radius r₀:
//  Φ(x) = 1/|r| + ω² (x²+y²)/2 - 1/r₀
type RotateRoche struct {

	// parameters
	omega float64 // angular velocity scale
	r0    float64 // non-rotating radius
}

// add model to factory
func init() {
	allocators["RotateRoche"] = func() Model { return new(RotateRoche) }
}

// Init initialises model
func (o *RotateRoche) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "omega":
			o.omega = p.V
		case "r0":
			o.r0 = p.V
		default:
			return chk.Err("RotateRoche: parameter named %q is incorrect", p.N)
		}
	}
	if o.r0 <= 0 {
		return chk.Err("RotateRoche: reference radius must be positive. r0=%g is invalid", o.r0)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o RotateRoche) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "omega", V: 0.1},
		&fun.Prm{N: "r0", V: 1.0},
	}
}

// ArgNames returns the positional argument names and the minimum count
func (o RotateRoche) ArgNames() ([]string, int) {
	return []string{"omega", "r0"}, 2
}

// Phi evaluates the potential at x
func (o RotateRoche) Phi(x []float64) float64 {
	r := math.Sqrt(x[0]*x[0] + x[1]*x[1] + x[2]*x[2])
	return 1.0/r + o.omega*o.omega*(x[0]*x[0]+x[1]*x[1])/2.0 - 1.0/o.r0
}

// Gradient computes g := ∇Φ at x
func (o RotateRoche) Gradient(g, x []float64) {
	r := math.Sqrt(x[0]*x[0] + x[1]*x[1] + x[2]*x[2])
	r3 := r * r * r
	ω2 := o.omega * o.omega
	g[0] = -x[0]/r3 + ω2*x[0]
	g[1] = -x[1]/r3 + ω2*x[1]
	g[2] = -x[2]/r3
}
