// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		delta   float64
		maxTri  int
		pot     string
		prms    []float64
		wantErr error
	}{
		{
			name:   "sphere",
			args:   []string{"0.1", "0", "Sphere", "1.0"},
			delta:  0.1,
			maxTri: 0,
			pot:    "Sphere",
			prms:   []float64{1.0},
		},
		{
			name:   "roche with optional omega0",
			args:   []string{"0.05", "1000", "BinaryRoche", "0.5", "0.3", "1.0", "3.5"},
			delta:  0.05,
			maxTri: 1000,
			pot:    "BinaryRoche",
			prms:   []float64{0.5, 0.3, 1.0, 3.5},
		},
		{
			name:   "heart has no tail",
			args:   []string{"0.1", "-1", "Heart"},
			delta:  0.1,
			maxTri: -1,
			pot:    "Heart",
			prms:   nil,
		},
		{
			name:    "missing potential name",
			args:    []string{"0.1", "0"},
			wantErr: ErrNotEnoughParameters,
		},
		{
			name:    "no arguments",
			args:    nil,
			wantErr: ErrNotEnoughParameters,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			delta, maxTri, pot, prms, err := Parse(tc.args)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.delta, delta)
			assert.Equal(t, tc.maxTri, maxTri)
			assert.Equal(t, tc.pot, pot)
			assert.Equal(t, tc.prms, prms)
		})
	}
}

func TestParseBadNumbers(t *testing.T) {
	_, _, _, _, err := Parse([]string{"abc", "0", "Sphere", "1"})
	require.Error(t, err)
	_, _, _, _, err = Parse([]string{"0.1", "x", "Sphere", "1"})
	require.Error(t, err)
	_, _, _, _, err = Parse([]string{"0.1", "0", "Sphere", "oops"})
	require.Error(t, err)
}
