// Copyright 2024 The Copulas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package univariate

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// sigmaFloor replaces a zero empirical spread so a degenerate dataset
// yields a very narrow distribution instead of an infinite-density
// point mass.
const sigmaFloor = 0.001

// Gaussian is a normal marginal model. The zero value is the standard
// normal; Fit estimates the mean and the population standard
// deviation from data.
type Gaussian struct {
	Mean  float64
	Sigma float64

	// Src is the randomness source used by Sample. If nil, the
	// global source is used.
	Src rand.Source
}

// NewGaussian returns an unfitted standard normal model.
func NewGaussian() *Gaussian {
	return &Gaussian{Sigma: 1}
}

func (g *Gaussian) dist() distuv.Normal {
	return distuv.Normal{Mu: g.Mean, Sigma: g.Sigma, Src: g.Src}
}

// Fit estimates the mean and population standard deviation of xs. A
// dataset with zero spread is clamped to a small positive sigma. An
// empty dataset returns ErrNoData and leaves the model unchanged.
func (g *Gaussian) Fit(xs []float64) error {
	if len(xs) == 0 {
		return ErrNoData
	}
	sigma := stat.PopStdDev(xs, nil)
	if sigma == 0 {
		sigma = sigmaFloor
	}
	g.Mean = stat.Mean(xs, nil)
	g.Sigma = sigma
	return nil
}

// PDF returns the normal density at x.
func (g *Gaussian) PDF(x float64) float64 {
	return g.dist().Prob(x)
}

// PDFEach returns PDF(xs[i]) for each i.
func (g *Gaussian) PDFEach(xs []float64) []float64 {
	return each(xs, g.PDF)
}

// CDF returns the cumulative probability at x.
func (g *Gaussian) CDF(x float64) float64 {
	return g.dist().CDF(x)
}

// CDFEach returns CDF(xs[i]) for each i.
func (g *Gaussian) CDFEach(xs []float64) []float64 {
	return each(xs, g.CDF)
}

// PercentPoint returns the value whose cumulative probability is p,
// mapping uniform pseudo-observations back to the original scale.
func (g *Gaussian) PercentPoint(p float64) float64 {
	return g.dist().Quantile(p)
}

// PercentPointEach returns PercentPoint(ps[i]) for each i.
func (g *Gaussian) PercentPointEach(ps []float64) []float64 {
	return each(ps, g.PercentPoint)
}

// Sample draws n independent normal values. With a fixed Src the
// output is deterministic.
func (g *Gaussian) Sample(n int) []float64 {
	d := g.dist()
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Rand()
	}
	return out
}
