// Copyright 2024 The Copulas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package univariate

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func TestGaussianFit(t *testing.T) {
	g := NewGaussian()
	require.NoError(t, g.Fit([]float64{1, 2, 3, 4, 5}))

	assert.Equal(t, 3.0, g.Mean)
	if !aeq(math.Sqrt2, g.Sigma) {
		t.Errorf("sigma: want %v, got %v", math.Sqrt2, g.Sigma)
	}

	// At the mean the density is 1/(σ·sqrt(2π)).
	want := 1 / (g.Sigma * math.Sqrt(2*math.Pi))
	if !aeq(want, g.PDF(3)) {
		t.Errorf("pdf(3): want %v, got %v", want, g.PDF(3))
	}
	assert.Equal(t, 0.5, g.CDF(3))
}

func TestGaussianFitEmpty(t *testing.T) {
	g := NewGaussian()
	assert.ErrorIs(t, g.Fit(nil), ErrNoData)
	assert.ErrorIs(t, g.Fit([]float64{}), ErrNoData)

	// A failed fit commits no state.
	assert.Equal(t, 0.0, g.Mean)
	assert.Equal(t, 1.0, g.Sigma)
}

func TestGaussianZeroSpread(t *testing.T) {
	g := NewGaussian()
	require.NoError(t, g.Fit([]float64{4, 4, 4, 4}))
	assert.Equal(t, 4.0, g.Mean)
	assert.Equal(t, 0.001, g.Sigma)
	assert.False(t, math.IsInf(g.PDF(4), 1))
}

func TestGaussianPercentPoint(t *testing.T) {
	g := NewGaussian()
	require.NoError(t, g.Fit([]float64{1, 2, 3, 4, 5}))

	for _, x := range []float64{0.5, 2, 3, 4.5} {
		if got := g.PercentPoint(g.CDF(x)); !aeq(x, got) {
			t.Errorf("PercentPoint(CDF(%v)) = %v", x, got)
		}
	}
	assert.InDelta(t, 3.0, g.PercentPoint(0.5), 1e-12)
}

func TestGaussianEach(t *testing.T) {
	g := NewGaussian()
	require.NoError(t, g.Fit([]float64{1, 2, 3, 4, 5}))

	xs := []float64{1, 3, 5}
	pdfs := g.PDFEach(xs)
	cdfs := g.CDFEach(xs)
	require.Len(t, pdfs, len(xs))
	require.Len(t, cdfs, len(xs))
	for i, x := range xs {
		assert.Equal(t, g.PDF(x), pdfs[i])
		assert.Equal(t, g.CDF(x), cdfs[i])
	}
	back := g.PercentPointEach(cdfs)
	for i := range xs {
		assert.InDelta(t, xs[i], back[i], 1e-9)
	}
}

func TestGaussianSample(t *testing.T) {
	g := &Gaussian{Mean: 3, Sigma: 2, Src: rand.NewPCG(1, 2)}
	xs := g.Sample(2000)
	require.Len(t, xs, 2000)

	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	assert.InDelta(t, 3, sum/float64(len(xs)), 0.2)

	// A fresh source with the same seed reproduces the draw.
	g2 := &Gaussian{Mean: 3, Sigma: 2, Src: rand.NewPCG(1, 2)}
	assert.Equal(t, xs, g2.Sample(2000))
}
