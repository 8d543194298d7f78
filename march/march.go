// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package march implements the advancing-front marching triangulator:
// a mesh grows outward from a seed point while a live polygonal front
// tracks the boundary between tessellated and untessellated surface.
// Each step closes the smallest-angle front vertex with a fan of new
// triangles whose vertices are projected onto the surface.
package march

import (
	"math"

	"github.com/cpmech/gomesh/geo"
	"github.com/cpmech/gomesh/msh"
	"github.com/cpmech/gomesh/pot"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// driver states; transitions are one-way
const (
	seeding = iota
	ringing
	marching
	finalizing
	done
)

// tie-break tolerance of the minimum-angle scan. Different tolerances
// yield different meshes, so this value must not change.
const angTol = 1e-6

// minimum wedge subdivision angle; narrower subdivisions are widened by
// dropping one fan triangle to avoid slivers
const minSubAng = 0.8

// Mesher holds the state of one discretization run. The front, the mesh
// and the potential are owned exclusively by the mesher.
type Mesher struct {

	// input
	Delta  float64   // target edge length
	MaxTri int       // bound on marching triangles; <=0 means unbounded
	model  pot.Model // the potential being tessellated

	// state
	prj   *geo.Projector // projection operator
	front msh.Front      // active front
	mesh  msh.Mesh       // growing mesh
	nemit int            // triangles emitted by the marching loop
	state int
}

// NewMesher returns a mesher for the given potential
func NewMesher(delta float64, maxTriangles int, model pot.Model) (o *Mesher, err error) {
	if delta <= 0 {
		return nil, chk.Err("delta must be positive. delta=%g is invalid", delta)
	}
	o = new(Mesher)
	o.Delta = delta
	o.MaxTri = maxTriangles
	o.model = model
	o.prj = geo.NewProjector(model)
	o.state = seeding
	return
}

// Mesh gives access to the generated mesh
func (o *Mesher) Mesh() *msh.Mesh {
	return &o.mesh
}

// Nwarn returns the number of non-converged projections
func (o *Mesher) Nwarn() int {
	return o.prj.Nwarn
}

// Run produces the mesh: seed, initial hexagonal fan, marching loop.
// The state machine has no back-edges; a mesher runs once.
func (o *Mesher) Run() {
	if o.state != seeding {
		chk.Panic("mesher cannot be run twice")
	}
	o.seed()
	o.ring()
	o.march()
	o.state = finalizing
}

// seed projects the off-origin seed point onto the surface. The small
// displacement avoids evaluating potentials at their singularities.
func (o *Mesher) seed() {
	p0 := o.prj.Project([]float64{-2e-5, 0, 0})
	o.mesh.AddVert(p0)
	o.state = ringing
}

// ring builds the initial hexagon: six points at distance delta from the
// seed in its tangent plane, at angles k·π/3, each projected onto the
// surface. The six fan triangles seed the mesh and the ring becomes the
// initial front.
func (o *Mesher) ring() {
	p0 := o.mesh.Verts[0]
	l := make([]float64, 3)
	w := make([]float64, 3)
	for k := 0; k < 6; k++ {
		θ := float64(k) * math.Pi / 3.0
		l[0] = 0
		l[1] = o.Delta * math.Cos(θ)
		l[2] = o.Delta * math.Sin(θ)
		p0.Local2Cart(w, l)
		for i := 0; i < 3; i++ {
			w[i] += p0.X[i]
		}
		q := o.prj.Project(w)
		o.mesh.AddVert(q)
		o.front.Append(q)
	}
	for k := 0; k < 6; k++ {
		o.mesh.AddTri(p0, o.front.At(k), o.front.At((k+1)%6))
	}
	o.state = marching
}

// emit appends one marching triangle, honouring the triangle bound.
// Returns false when the bound is reached.
func (o *Mesher) emit(v0, v1, v2 *geo.Vertex) bool {
	if o.MaxTri > 0 && o.nemit >= o.MaxTri {
		return false
	}
	o.mesh.AddTri(v0, v1, v2)
	o.nemit++
	return true
}

// march runs the main loop: close the smallest-angle front vertex with
// a fan of triangles, splice the new arc into the front, repeat. A front
// reduced to three vertices bounds a triangular hole and is closed with
// a single final triangle.
func (o *Mesher) march() {
	for o.front.Size() > 3 {
		if o.MaxTri > 0 && o.nemit >= o.MaxTri {
			return
		}
		k, α := o.minAngle()
		if !o.closeWedge(k, α) {
			return
		}
	}
	if o.front.Size() == 3 {
		o.emit(o.front.At(0), o.front.At(1), o.front.At(2))
		o.front.Splice(2, nil)
		o.front.Splice(1, nil)
		o.front.Splice(0, nil)
	}
}

// minAngle computes the interior angle at every front vertex, in that
// vertex's tangent plane, and returns the argmin. The linear scan only
// accepts a new minimum when it beats the current one by more than the
// tie-break tolerance, so the earliest near-minimum wins.
func (o *Mesher) minAngle() (k int, α float64) {
	a := make([]float64, 3)
	b := make([]float64, 3)
	al := make([]float64, 3)
	bl := make([]float64, 3)
	for i := 0; i < o.front.Size(); i++ {
		p := o.front.At(i)
		vm := o.front.At(o.front.Prev(i))
		vp := o.front.At(o.front.Succ(i))
		for j := 0; j < 3; j++ {
			a[j] = vm.X[j] - p.X[j]
			b[j] = vp.X[j] - p.X[j]
		}
		p.Cart2Local(al, a)
		p.Cart2Local(bl, b)
		φa := math.Atan2(al[2], al[1])
		φb := math.Atan2(bl[2], bl[1])
		ω := math.Mod(φb-φa, 2.0*math.Pi)
		if ω < 0 {
			ω += 2.0 * math.Pi
		}
		if i == 0 || ω < α-angTol {
			k = i
			α = ω
		}
	}
	return
}

// closeWedge fans nt triangles into the wedge at front vertex k with
// interior angle α and splices the new arc into the front. Returns false
// when the triangle bound was hit mid-fan.
func (o *Mesher) closeWedge(k int, α float64) bool {

	// wedge division: target ~π/3 per triangle, then widen narrow
	// subdivisions by one
	nt := int(α*3.0/math.Pi) + 1
	δω := α / float64(nt)
	if δω < minSubAng && nt > 1 {
		nt--
		δω = α / float64(nt)
	}

	pivot := o.front.At(k)
	vm := o.front.At(o.front.Prev(k))
	vp := o.front.At(o.front.Succ(k))

	// offset from pivot to the predecessor, in the pivot's tangent
	// plane (the normal component is dropped)
	r := make([]float64, 3)
	l := make([]float64, 3)
	for j := 0; j < 3; j++ {
		r[j] = vm.X[j] - pivot.X[j]
	}
	pivot.Cart2Local(l, r)

	// fan construction
	seg := make([]*geo.Vertex, 0, nt-1)
	w := make([]float64, 3)
	prev := vm
	for i := 1; i < nt; i++ {
		θ := float64(i) * δω
		cs, sn := math.Cos(θ), math.Sin(θ)
		u := l[1]*cs - l[2]*sn
		v := l[1]*sn + l[2]*cs
		den := math.Sqrt(u*u + v*v)
		if den > 0 {
			u *= o.Delta / den
			v *= o.Delta / den
		}
		for j := 0; j < 3; j++ {
			w[j] = pivot.X[j] + u*pivot.T1[j] + v*pivot.T2[j]
		}
		q := o.prj.Project(w)
		o.mesh.AddVert(q)
		seg = append(seg, q)
		if !o.emit(prev, q, pivot) {
			return false
		}
		prev = q
	}

	// closing triangle
	if !o.emit(prev, vp, pivot) {
		return false
	}

	// splice the new arc in place of the pivot
	o.front.Splice(k, seg)
	return true
}

// Discretize tessellates the zero level set of the named potential into
// triangles with edge length approximately delta. It is the single
// entry point: argument errors abort with no mesh; numerical
// non-convergence is absorbed and counted.
func Discretize(delta float64, maxTriangles int, name string, args ...float64) (res *Res, err error) {
	model, err := pot.New(name, args)
	if err != nil {
		return nil, err
	}
	o, err := NewMesher(delta, maxTriangles, model)
	if err != nil {
		return nil, err
	}
	if io.Verbose {
		io.Pf("discretizing %q with delta=%g\n", name, delta)
	}
	o.Run()
	res = o.Finalize()
	if io.Verbose {
		io.Pf("%v\n", o.mesh.String())
		if o.Nwarn() > 0 {
			io.Pfyel("%d projections did not converge\n", o.Nwarn())
		}
	}
	return
}
