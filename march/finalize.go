// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package march

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// number of columns of the result table
const Ncols = 16

// Res holds the result of one discretization: one 16-column row per
// triangle, in emission order. Columns:
//   0-2    centroid, projected onto the surface
//   3      Heron area of the flat triangle
//   4-6    vertex v0
//   7-9    vertex v1
//   10-12  vertex v2
//   13-15  surface normal at the projected centroid
type Res struct {
	Table [][]float64 // N×16 rows
	Nwarn int         // non-converged projections over the whole run
}

// Ntri returns the number of triangles
func (o *Res) Ntri() int {
	return len(o.Table)
}

// TotalArea returns the sum of all triangle areas
func (o *Res) TotalArea() (res float64) {
	for _, row := range o.Table {
		res += row[3]
	}
	return
}

// Finalize computes the per-triangle output rows: projected centroid,
// Heron area, the three vertices, and the normal at the centroid
func (o *Mesher) Finalize() (res *Res) {
	res = new(Res)
	res.Table = make([][]float64, 0, o.mesh.Ntri())
	c := make([]float64, 3)
	e1 := make([]float64, 3)
	e2 := make([]float64, 3)
	e3 := make([]float64, 3)
	for _, t := range o.mesh.Tris {
		v0, v1, v2 := t.V[0], t.V[1], t.V[2]
		for j := 0; j < 3; j++ {
			c[j] = (v0.X[j] + v1.X[j] + v2.X[j]) / 3.0
			e1[j] = v0.X[j] - v1.X[j]
			e2[j] = v0.X[j] - v2.X[j]
			e3[j] = v2.X[j] - v1.X[j]
		}
		cv := o.prj.Project(c)
		s1 := la.VecNorm(e1)
		s2 := la.VecNorm(e2)
		s3 := la.VecNorm(e3)
		s := (s1 + s2 + s3) / 2.0
		area := math.Sqrt(s * (s - s1) * (s - s2) * (s - s3))
		row := make([]float64, Ncols)
		row[0], row[1], row[2] = cv.X[0], cv.X[1], cv.X[2]
		row[3] = area
		row[4], row[5], row[6] = v0.X[0], v0.X[1], v0.X[2]
		row[7], row[8], row[9] = v1.X[0], v1.X[1], v1.X[2]
		row[10], row[11], row[12] = v2.X[0], v2.X[1], v2.X[2]
		row[13], row[14], row[15] = cv.N[0], cv.N[1], cv.N[2]
		res.Table = append(res.Table, row)
	}
	res.Nwarn = o.prj.Nwarn
	o.state = done
	return
}
