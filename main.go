// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gomesh/inp"
	"github.com/cpmech/gomesh/march"
	"github.com/cpmech/gomesh/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// message
	io.PfWhite("\nGomesh -- equipotential surface triangulation\n\n")
	io.Pf("Copyright 2016 The Gomesh Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	// options
	dirout := flag.String("dir", "/tmp/gomesh", "output directory")
	fnkey := flag.String("fnkey", "mesh", "filename key for output files")
	vtu := flag.Bool("vtu", false, "also write a .vtu file for ParaView")
	flag.Parse()

	// positional arguments
	if len(flag.Args()) < 3 {
		chk.Panic("Usage: gomesh [options] delta max_triangles potential [p0 ... p5]\nEx.:   gomesh 0.1 0 Sphere 1.0")
	}
	delta, maxtri, name, prms, err := inp.Parse(flag.Args())
	if err != nil {
		chk.Panic("cannot parse arguments:\n%v", err)
	}

	// discretize
	io.Verbose = true
	res, err := march.Discretize(delta, maxtri, name, prms...)
	if err != nil {
		chk.Panic("discretization failed:\n%v", err)
	}

	// results
	io.Pf("ntriangles = %d\n", res.Ntri())
	io.Pf("total area = %g\n", res.TotalArea())
	out.Write(*dirout, *fnkey+".dat", res)
	if *vtu {
		out.WriteVtu(*dirout, *fnkey+".vtu", res)
	}
}
