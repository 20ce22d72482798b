// Copyright 2024 The Copulas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bivariate models statistical dependence between two
// continuous random variables with parametric copula functions.
//
// A copula is a joint distribution on the unit square whose margins
// are uniform, so it captures dependence structure independently of
// the variables' marginal distributions. A model is constructed
// unfitted, fitted once from Kendall's tau (supplied directly or
// estimated from rank-transformed observations), and is then
// immutable: density, distribution, and sampling calls may run
// concurrently on a fitted model, but fitting must not race with
// reads on the same instance.
package bivariate

import (
	"github.com/pkg/errors"
)

// ErrNotFitted is returned by evaluation methods invoked before a
// successful Fit or FitValues call.
var ErrNotFitted = errors.New("bivariate: copula has not been fitted")

// ErrTheta is returned when the dependence parameter is outside the
// family's valid domain, before any per-element computation runs.
var ErrTheta = errors.New("bivariate: theta out of the family's domain")

// ErrLength is returned by batch methods when input slices have
// mismatched lengths.
var ErrLength = errors.New("bivariate: input slices have different lengths")

// CopulaType identifies a copula family.
type CopulaType int

const (
	ClaytonCopula CopulaType = iota
	FrankCopula
	GumbelCopula
)

var copulaTypeNames = [...]string{
	ClaytonCopula: "Clayton",
	FrankCopula:   "Frank",
	GumbelCopula:  "Gumbel",
}

func (t CopulaType) String() string {
	if t < 0 || int(t) >= len(copulaTypeNames) {
		return "Unknown"
	}
	return copulaTypeNames[t]
}

// A Copula is one bivariate dependence structure. Implementations are
// parameterized by a single dependence parameter theta derived from
// Kendall's rank correlation tau.
//
// All evaluation methods fail with ErrNotFitted until Fit or
// FitValues succeeds.
type Copula interface {
	// Type returns the family tag of this copula.
	Type() CopulaType

	// Fit derives theta from Kendall's tau. Refitting fully
	// replaces the previous state.
	Fit(tau float64) error

	// FitValues estimates Kendall's tau from paired
	// pseudo-observations in (0, 1) and then fits as Fit does.
	FitValues(u, v []float64) error

	// Theta returns the fitted dependence parameter.
	Theta() (float64, error)

	// Tau returns the Kendall's tau the model was fitted from.
	Tau() (float64, error)

	// CDF returns the joint probability C(u, v).
	CDF(u, v float64) (float64, error)

	// CDFEach returns CDF(u[i], v[i]) for each i.
	CDFEach(u, v []float64) ([]float64, error)

	// PDF returns the copula density at (u, v).
	PDF(u, v float64) (float64, error)

	// PDFEach returns PDF(u[i], v[i]) for each i.
	PDFEach(u, v []float64) ([]float64, error)

	// PartialDerivative returns the conditional distribution
	// C(u|v), the derivative of the CDF along the second margin,
	// minus the offset y.
	PartialDerivative(u, v, y float64) (float64, error)

	// PercentPoint inverts the conditional distribution: it
	// returns u such that C(u|v) = y.
	PercentPoint(y, v float64) (float64, error)

	// Sample returns PercentPoint(c[i], v[i]) for each i,
	// preserving index correspondence.
	Sample(v, c []float64) ([]float64, error)

	// Params returns the fitted parameters for persistence.
	Params() (Params, error)
}

// New returns an unfitted copula of the given family. Clayton and
// Frank are recognized tags but not yet implemented.
func New(t CopulaType) (Copula, error) {
	switch t {
	case GumbelCopula:
		return NewGumbel(), nil
	case ClaytonCopula, FrankCopula:
		return nil, errors.Errorf("bivariate: %v copula not implemented", t)
	}
	return nil, errors.Errorf("bivariate: unknown copula type %d", int(t))
}
