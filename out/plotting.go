// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gomesh/march"
	"github.com/cpmech/gosl/plt"
)

// Draw plots the centroids of the triangulation projected onto the xy,
// xz and yz planes and saves a png
func Draw(dirout, fnkey string, res *march.Res) {
	n := res.Ntri()
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	for i, row := range res.Table {
		x[i], y[i], z[i] = row[0], row[1], row[2]
	}
	plt.Reset()
	plt.Subplot(1, 3, 1)
	plt.Plot(x, y, "'b.', clip_on=0")
	plt.Gll("$x$", "$y$", "")
	plt.Subplot(1, 3, 2)
	plt.Plot(x, z, "'b.', clip_on=0")
	plt.Gll("$x$", "$z$", "")
	plt.Subplot(1, 3, 3)
	plt.Plot(y, z, "'b.', clip_on=0")
	plt.Gll("$y$", "$z$", "")
	plt.SaveD(dirout, fnkey+".png")
}
