// Copyright 2024 The Copulas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx provides the scalar numerical primitives the copula
// code is built on, currently bounded one-dimensional root finding.
package mathx

import (
	"math"

	"github.com/pkg/errors"
)

// ErrBracket is returned by FindRoot when f(lo) and f(hi) have the
// same sign, so the interval is not guaranteed to contain a root.
var ErrBracket = errors.New("mathx: interval does not bracket a root")

// ErrConverge is returned by FindRoot when the iteration budget is
// exhausted before the tolerance is reached.
var ErrConverge = errors.New("mathx: root search failed to converge")

// RootOptions configures FindRoot. The zero value selects the
// defaults, which are suitable for inverting well-behaved CDFs.
type RootOptions struct {
	// Tol is the absolute width of the final interval. If zero,
	// 1e-10 is used.
	Tol float64

	// MaxIter bounds the number of iterations. If zero, 100 is
	// used. Brent's method typically needs far fewer.
	MaxIter int
}

func (o RootOptions) tol() float64 {
	if o.Tol == 0 {
		return 1e-10
	}
	return o.Tol
}

func (o RootOptions) maxIter() int {
	if o.MaxIter == 0 {
		return 100
	}
	return o.MaxIter
}

// FindRoot returns x in [lo, hi] such that f(x) ≈ 0 using Brent's
// method (inverse quadratic interpolation and secant steps, falling
// back to bisection). f(lo) and f(hi) must have opposite signs;
// otherwise FindRoot returns ErrBracket. f must be continuous on the
// interval, but need not be differentiable.
//
// Brent, R. P. (1973) Algorithms for Minimization without
// Derivatives, chapter 4.
func FindRoot(f func(float64) float64, lo, hi float64, opt RootOptions) (float64, error) {
	a, b := lo, hi
	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return 0, ErrBracket
	}

	// Maintain |f(b)| <= |f(a)|, so b is the best estimate.
	if math.Abs(fa) < math.Abs(fb) {
		a, b, fa, fb = b, a, fb, fa
	}
	c, fc := a, fa
	mflag := true
	var d float64

	tol := opt.tol()
	for i := 0; i < opt.maxIter(); i++ {
		if fb == 0 || math.Abs(b-a) < tol {
			return b, nil
		}

		var s float64
		if fa != fc && fb != fc {
			// Inverse quadratic interpolation.
			s = a*fb*fc/((fa-fb)*(fa-fc)) +
				b*fa*fc/((fb-fa)*(fb-fc)) +
				c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			// Secant step.
			s = b - fb*(b-a)/(fb-fa)
		}

		// Accept the interpolated point only if it falls in the
		// useful part of the bracket and is making progress;
		// otherwise bisect.
		lo14 := (3*a + b) / 4
		bad := (s < math.Min(lo14, b) || s > math.Max(lo14, b)) ||
			(mflag && math.Abs(s-b) >= math.Abs(b-c)/2) ||
			(!mflag && math.Abs(s-b) >= math.Abs(c-d)/2) ||
			(mflag && math.Abs(b-c) < tol) ||
			(!mflag && math.Abs(c-d) < tol)
		if bad {
			s = (a + b) / 2
			mflag = true
		} else {
			mflag = false
		}

		fs := f(s)
		d = c
		c, fc = b, fb
		if (fa > 0) != (fs > 0) {
			b, fb = s, fs
		} else {
			a, fa = s, fs
		}
		if math.Abs(fa) < math.Abs(fb) {
			a, b, fa, fb = b, a, fb, fa
		}
	}
	return b, ErrConverge
}

// Bisect returns x in [lo, hi] such that f(x) ≈ 0 using plain
// bisection. It has the same bracketing requirement as FindRoot but
// tolerates discontinuous f, converging to a discontinuity that
// crosses zero if there is no true root.
func Bisect(f func(float64) float64, lo, hi float64, opt RootOptions) (float64, error) {
	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if (flo > 0) == (fhi > 0) {
		return 0, ErrBracket
	}

	tol := opt.tol()
	for i := 0; i < opt.maxIter(); i++ {
		if hi-lo < tol {
			break
		}
		mid := (lo + hi) / 2
		fmid := f(mid)
		if fmid == 0 {
			return mid, nil
		}
		if (fmid > 0) == (flo > 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}
