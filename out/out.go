// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements writers and plotting helpers for discretization
// results
package out

import (
	"bytes"

	"github.com/cpmech/gomesh/march"
	"github.com/cpmech/gosl/io"
)

// Write writes the N×16 result table as a whitespace-separated text
// file; one row per triangle, in emission order
func Write(dirout, fn string, res *march.Res) {
	var buf bytes.Buffer
	for _, row := range res.Table {
		for j, x := range row {
			if j > 0 {
				io.Ff(&buf, " ")
			}
			io.Ff(&buf, "%23.15e", x)
		}
		io.Ff(&buf, "\n")
	}
	io.WriteFileVD(dirout, fn, &buf)
}
