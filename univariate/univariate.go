// Copyright 2024 The Copulas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package univariate provides marginal distribution models that map
// observed data to and from the uniform pseudo-observations the
// copula code operates on.
package univariate

import "github.com/pkg/errors"

// ErrNoData is returned by Fit when the dataset is empty. The model's
// parameters are left untouched.
var ErrNoData = errors.New("univariate: cannot fit an empty dataset")

// A Univariate is a continuous marginal distribution model.
type Univariate interface {
	// Fit estimates the model's parameters from data. Refitting
	// fully replaces the previous state.
	Fit(xs []float64) error

	// PDF returns the probability density at x.
	PDF(x float64) float64

	// PDFEach returns PDF(xs[i]) for each i.
	PDFEach(xs []float64) []float64

	// CDF returns the cumulative probability at x.
	CDF(x float64) float64

	// CDFEach returns CDF(xs[i]) for each i.
	CDFEach(xs []float64) []float64

	// PercentPoint returns the inverse of the CDF at p. That is,
	// CDF(PercentPoint(p)) = p for p in [0, 1].
	PercentPoint(p float64) float64

	// PercentPointEach returns PercentPoint(ps[i]) for each i.
	PercentPointEach(ps []float64) []float64

	// Sample draws n independent values from the fitted model.
	Sample(n int) []float64
}

func each(xs []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}
