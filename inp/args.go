// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the parsing of the positional arguments of the
// discretize entry point
package inp

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNotEnoughParameters indicates fewer than the three mandatory
// positional arguments (delta, max_triangles, potential name)
var ErrNotEnoughParameters = errors.New("not enough parameters")

// Parse splits the positional arguments of a discretize call:
//  delta max_triangles potential p0 p1 ... p5
// The potential-specific tail is converted but not validated here; the
// registry checks name and arity.
func Parse(args []string) (delta float64, maxTriangles int, name string, prms []float64, err error) {
	if len(args) < 3 {
		err = fmt.Errorf("%w: need delta, max_triangles and potential name; got %d arguments", ErrNotEnoughParameters, len(args))
		return
	}
	delta, err = strconv.ParseFloat(args[0], 64)
	if err != nil {
		err = fmt.Errorf("cannot parse delta from %q: %v", args[0], err)
		return
	}
	maxTriangles, err = strconv.Atoi(args[1])
	if err != nil {
		err = fmt.Errorf("cannot parse max_triangles from %q: %v", args[1], err)
		return
	}
	name = args[2]
	for _, a := range args[3:] {
		var v float64
		v, err = strconv.ParseFloat(a, 64)
		if err != nil {
			err = fmt.Errorf("cannot parse potential parameter from %q: %v", a, err)
			return
		}
		prms = append(prms, v)
	}
	return
}
