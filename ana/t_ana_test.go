// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_ana01(tst *testing.T) {

	chk.PrintTitle("ana01. closed-form areas")

	chk.Float64(tst, "sphere", 1e-15, SphereArea(1), 4.0*math.Pi)
	chk.Float64(tst, "sphere r=2", 1e-14, SphereArea(2), 16.0*math.Pi)
	chk.Float64(tst, "torus", 1e-14, TorusArea(1, 0.3), 1.2*math.Pi*math.Pi)
}
