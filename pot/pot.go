// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pot implements scalar potentials whose zero level set is the
// surface to be triangulated. Each potential provides Φ and its analytic
// gradient as pure functions of position.
package pot

import (
	"errors"
	"fmt"
	"log"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model defines the interface for potentials
type Model interface {
	Init(prms fun.Prms) error   // initialises model with named parameters
	GetPrms() fun.Prms          // gets (an example) of parameters
	ArgNames() ([]string, int)  // positional argument names and minimum count
	Phi(x []float64) float64    // evaluates Φ at x
	Gradient(g, x []float64)    // computes g := ∇Φ at x
}

// errors returned by New
var (
	ErrUnknownPotential = errors.New("unknown potential")
	ErrBadArity         = errors.New("wrong number of potential parameters")
)

// New returns a potential initialised from the positional argument tail.
// Arguments map onto ArgNames in order; trailing optional slots that are
// not given keep their zero value.
func New(name string, args []float64) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPotential, name)
	}
	model = allocator()
	names, nmin := model.ArgNames()
	if len(args) < nmin || len(args) > len(names) {
		return nil, fmt.Errorf("%w: %q takes %d to %d parameters; got %d", ErrBadArity, name, nmin, len(names), len(args))
	}
	var prms fun.Prms
	for i, v := range args {
		prms = append(prms, &fun.Prm{N: names[i], V: v})
	}
	err = model.Init(prms)
	if err != nil {
		return nil, chk.Err("cannot initialise potential %q: %v", name, err)
	}
	return
}

// LogModels prints to log information on available potentials
func LogModels() {
	l := "pot: available:"
	for name := range allocators {
		l += " " + name
	}
	log.Println(l)
}

// allocators holds all available potentials; name => allocator
var allocators = map[string]func() Model{}
