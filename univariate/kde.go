// Copyright 2024 The Copulas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package univariate

import (
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/hookeyplayer/Copulas/mathx"
)

// KDE is a non-parametric marginal model built from a Gaussian kernel
// density estimate. Unlike Gaussian it does not assume any particular
// true distribution; the estimate depends on the selected bandwidth.
type KDE struct {
	// Bandwidth is the kernel bandwidth. If zero, it is computed
	// from the data at Fit time using Scott's Rule.
	Bandwidth float64

	// Src is the randomness source used by Sample. If nil, the
	// global source is used.
	Src rand.Source

	xs []float64 // sorted fitted sample
	h  float64   // effective bandwidth
}

// NewKDE returns an unfitted KDE model with a data-driven bandwidth.
func NewKDE() *KDE {
	return &KDE{}
}

// bandwidthScott implements Scott's Rule: the minimum of the sample
// standard deviation and IQR/1.349, a robust estimator of a Gaussian
// distribution's standard deviation, scaled by 1.06·n^(-1/5).
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func bandwidthScott(sorted []float64) float64 {
	n := float64(len(sorted))
	hScale := 1.06 * math.Pow(n, -1.0/5)
	stdDev := stat.StdDev(sorted, nil)
	iqr := stat.Quantile(0.75, stat.Empirical, sorted, nil) -
		stat.Quantile(0.25, stat.Empirical, sorted, nil)
	if stdDev < iqr/1.349 {
		return hScale * stdDev
	}
	return hScale * (iqr / 1.349)
}

// Fit stores a sorted copy of xs and resolves the bandwidth. An empty
// dataset returns ErrNoData and leaves the model unchanged; a dataset
// with zero spread is clamped to a small positive bandwidth.
func (k *KDE) Fit(xs []float64) error {
	if len(xs) == 0 {
		return ErrNoData
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	h := k.Bandwidth
	if h == 0 {
		h = bandwidthScott(sorted)
	}
	if h == 0 || math.IsNaN(h) {
		h = sigmaFloor
	}
	k.xs, k.h = sorted, h
	return nil
}

func (k *KDE) kernel() distuv.Normal {
	return distuv.Normal{Mu: 0, Sigma: k.h}
}

// PDF returns the density estimate at x: the mean of the kernel
// density shifted to each fitted point, evaluated at x. Shifting the
// kernel to each xs[i] and evaluating at x is equivalent to
// evaluating one unshifted kernel at x - xs[i].
func (k *KDE) PDF(x float64) float64 {
	kern := k.kernel()
	sum := 0.0
	for _, xi := range k.xs {
		sum += kern.Prob(x - xi)
	}
	return sum / float64(len(k.xs))
}

// PDFEach returns PDF(xs[i]) for each i.
func (k *KDE) PDFEach(xs []float64) []float64 {
	return each(xs, k.PDF)
}

// CDF returns the cumulative estimate at x, the mean of the shifted
// kernel integrals.
func (k *KDE) CDF(x float64) float64 {
	kern := k.kernel()
	sum := 0.0
	for _, xi := range k.xs {
		sum += kern.CDF(x - xi)
	}
	return sum / float64(len(k.xs))
}

// CDFEach returns CDF(xs[i]) for each i.
func (k *KDE) CDFEach(xs []float64) []float64 {
	return each(xs, k.CDF)
}

// PercentPoint inverts the CDF estimate by bisection. The estimate
// has no closed-form inverse, so the bracket starts at the sample
// extremes and is widened until it contains p.
func (k *KDE) PercentPoint(p float64) float64 {
	const tolerance = 1e-9

	// Use the lowest and highest fitted points, padded by the
	// bandwidth, as starting points.
	lo := k.xs[0] - 4*k.h
	hi := k.xs[len(k.xs)-1] + 4*k.h

	// Since bisection requires that the root be bracketed, expand
	// the range until it is.
	for k.CDF(lo) > p {
		lo -= hi - lo
	}
	for k.CDF(hi) < p {
		hi += hi - lo
	}

	x, _ := mathx.Bisect(func(x float64) float64 { return k.CDF(x) - p }, lo, hi,
		mathx.RootOptions{Tol: tolerance})
	return x
}

// PercentPointEach returns PercentPoint(ps[i]) for each i.
func (k *KDE) PercentPointEach(ps []float64) []float64 {
	return each(ps, k.PercentPoint)
}

// Sample draws n values by smoothed bootstrap: a fitted point chosen
// uniformly at random, perturbed by kernel noise.
func (k *KDE) Sample(n int) []float64 {
	kern := distuv.Normal{Mu: 0, Sigma: k.h, Src: k.Src}
	var pick func(int) int
	if k.Src != nil {
		r := rand.New(k.Src)
		pick = r.IntN
	} else {
		pick = rand.IntN
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = k.xs[pick(len(k.xs))] + kern.Rand()
	}
	return out
}
