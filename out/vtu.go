// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/gomesh/march"
	"github.com/cpmech/gosl/io"
)

// WriteVtu writes the triangulation as a VTK unstructured grid (.vtu)
// for inspection in ParaView. Triangles are written as independent
// cells; per-cell data holds the Heron area and the centroid normal.
func WriteVtu(dirout, fn string, res *march.Res) {

	nc := res.Ntri()
	nv := 3 * nc

	// header and footer
	var hdr, geo, dat, foo bytes.Buffer
	io.Ff(&hdr, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&hdr, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", nv, nc)
	io.Ff(&foo, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")

	// coordinates
	io.Ff(&geo, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, row := range res.Table {
		for v := 0; v < 3; v++ {
			io.Ff(&geo, "%23.15e %23.15e %23.15e ", row[4+3*v], row[5+3*v], row[6+3*v])
		}
	}
	io.Ff(&geo, "\n</DataArray>\n</Points>\n")

	// connectivities
	io.Ff(&geo, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for i := 0; i < nv; i++ {
		io.Ff(&geo, "%d ", i)
	}

	// offsets and cell types (5 = VTK_TRIANGLE)
	io.Ff(&geo, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	for i := 1; i <= nc; i++ {
		io.Ff(&geo, "%d ", 3*i)
	}
	io.Ff(&geo, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for i := 0; i < nc; i++ {
		io.Ff(&geo, "5 ")
	}
	io.Ff(&geo, "\n</DataArray>\n</Cells>\n")

	// cell data: area and centroid normal
	io.Ff(&dat, "<CellData Scalars=\"area\">\n")
	io.Ff(&dat, "<DataArray type=\"Float64\" Name=\"area\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, row := range res.Table {
		io.Ff(&dat, "%23.15e ", row[3])
	}
	io.Ff(&dat, "\n</DataArray>\n")
	io.Ff(&dat, "<DataArray type=\"Float64\" Name=\"normal\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, row := range res.Table {
		io.Ff(&dat, "%23.15e %23.15e %23.15e ", row[13], row[14], row[15])
	}
	io.Ff(&dat, "\n</DataArray>\n</CellData>\n")

	// write file
	io.WriteFileVD(dirout, fn, &hdr, &geo, &dat, &foo)
}
