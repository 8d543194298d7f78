// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical (closed-form) surface areas used to
// verify discretizations
package ana

import "math"

// SphereArea returns the area of the sphere with radius r
func SphereArea(r float64) float64 {
	return 4.0 * math.Pi * r * r
}

// TorusArea returns the area of the torus with major radius R and minor
// radius r
func TorusArea(R, r float64) float64 {
	return 4.0 * math.Pi * math.Pi * R * r
}
