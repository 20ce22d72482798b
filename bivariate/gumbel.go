// Copyright 2024 The Copulas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bivariate

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/hookeyplayer/Copulas/mathx"
)

// epsilon bounds inversion brackets away from the logarithmic
// singularity at u = 0. It is the float32 machine epsilon.
const epsilon = 1.1920929e-07

// thetaMax is the sentinel theta for tau = 1, where the closed-form
// estimator 1/(1-tau) diverges. It represents near-total dependence.
const thetaMax = 10000

// Gumbel is an Archimedean copula with generator (-ln t)^theta. It
// models upper-tail dependence and requires theta >= 1; theta = 1 is
// the independence copula.
//
// For the Gumbel family Kendall's tau relates to theta as
// tau = (theta-1)/theta, which Fit inverts as theta = 1/(1-tau).
//
// Nelsen, R. B. (2006) An Introduction to Copulas, section 4.2.
type Gumbel struct {
	// Root configures the bounded root search used by
	// PercentPoint. The zero value selects mathx defaults.
	Root mathx.RootOptions

	theta  float64
	tau    float64
	fitted bool
}

// NewGumbel returns an unfitted Gumbel copula.
func NewGumbel() *Gumbel {
	return &Gumbel{}
}

// Type returns GumbelCopula.
func (g *Gumbel) Type() CopulaType { return GumbelCopula }

func (g *Gumbel) checkFit() error {
	if !g.fitted {
		return ErrNotFitted
	}
	return nil
}

// checkTheta guards the evaluation formulas, which are only defined
// for theta >= 1.
func (g *Gumbel) checkTheta() error {
	if g.theta < 1 {
		return errors.Wrapf(ErrTheta, "theta %v < 1 for Gumbel", g.theta)
	}
	return nil
}

// Fit derives theta from Kendall's tau. tau must be in [-1, 1]. A
// tau of exactly 1 clamps theta to a large finite sentinel rather
// than dividing by zero. Fitting with tau < 0 succeeds but yields
// theta < 1, which every evaluation method then rejects.
func (g *Gumbel) Fit(tau float64) error {
	if tau < -1 || tau > 1 || math.IsNaN(tau) {
		return errors.Errorf("bivariate: tau %v outside [-1, 1]", tau)
	}
	g.tau = tau
	if tau == 1 {
		g.theta = thetaMax
	} else {
		g.theta = 1 / (1 - tau)
	}
	g.fitted = true
	return nil
}

// FitValues estimates Kendall's tau from paired pseudo-observations
// and fits theta from it.
func (g *Gumbel) FitValues(u, v []float64) error {
	if len(u) != len(v) {
		return ErrLength
	}
	if len(u) == 0 {
		return errors.New("bivariate: fit requires at least one observation pair")
	}
	return g.Fit(stat.Kendall(u, v, nil))
}

// Theta returns the fitted dependence parameter.
func (g *Gumbel) Theta() (float64, error) {
	if err := g.checkFit(); err != nil {
		return 0, err
	}
	return g.theta, nil
}

// Tau returns the Kendall's tau the model was fitted from.
func (g *Gumbel) Tau() (float64, error) {
	if err := g.checkFit(); err != nil {
		return 0, err
	}
	return g.tau, nil
}

// generator is the Archimedean generator (-ln t)^theta.
func (g *Gumbel) generator(t float64) float64 {
	return math.Pow(-math.Log(t), g.theta)
}

// CDF returns the joint probability
//
//	C(u, v) = exp(-[(-ln u)^θ + (-ln v)^θ]^(1/θ))
//
// At theta = 1 this degenerates to the independence copula u·v. The
// Fréchet boundary conditions hold: C(1,1) = 1 and C(u,0) = C(0,v) = 0.
func (g *Gumbel) CDF(u, v float64) (float64, error) {
	if err := g.checkFit(); err != nil {
		return 0, err
	}
	if err := g.checkTheta(); err != nil {
		return 0, err
	}
	return g.cdf(u, v), nil
}

// cdf evaluates the CDF with the preconditions already checked. The
// inversion objective calls this in a tight loop.
func (g *Gumbel) cdf(u, v float64) float64 {
	if g.theta == 1 {
		return u * v
	}
	h := g.generator(u) + g.generator(v)
	return math.Exp(-math.Pow(h, 1/g.theta))
}

// CDFEach returns CDF(u[i], v[i]) for each i.
func (g *Gumbel) CDFEach(u, v []float64) ([]float64, error) {
	return g.each(u, v, g.cdf)
}

// PDF returns the copula density, the mixed second partial derivative
// of the CDF:
//
//	c(u, v) = C(u,v) · (uv)^-1 · h^(-2+2/θ) · (ln u · ln v)^(θ-1) · (1 + (θ-1)·h^(-1/θ))
//
// where h = (-ln u)^θ + (-ln v)^θ. At theta = 1 the density is the
// independence density, identically 1.
func (g *Gumbel) PDF(u, v float64) (float64, error) {
	if err := g.checkFit(); err != nil {
		return 0, err
	}
	if err := g.checkTheta(); err != nil {
		return 0, err
	}
	return g.pdf(u, v), nil
}

func (g *Gumbel) pdf(u, v float64) float64 {
	if g.theta == 1 {
		return 1
	}
	a := 1 / (u * v)
	h := g.generator(u) + g.generator(v)
	b := math.Pow(h, -2+2/g.theta)
	c := math.Pow(math.Log(u)*math.Log(v), g.theta-1)
	d := 1 + (g.theta-1)*math.Pow(h, -1/g.theta)
	return g.cdf(u, v) * a * b * c * d
}

// PDFEach returns PDF(u[i], v[i]) for each i.
func (g *Gumbel) PDFEach(u, v []float64) ([]float64, error) {
	return g.each(u, v, g.pdf)
}

// PartialDerivative returns the conditional distribution C(u|v), the
// derivative of the CDF along the second margin, minus the offset y.
// With y = 0 it is the conditional CDF itself; a nonzero y turns it
// into the root objective PercentPoint solves. At theta = 1 it
// collapses to v - y.
func (g *Gumbel) PartialDerivative(u, v, y float64) (float64, error) {
	if err := g.checkFit(); err != nil {
		return 0, err
	}
	if err := g.checkTheta(); err != nil {
		return 0, err
	}
	return g.partial(u, v, y), nil
}

func (g *Gumbel) partial(u, v, y float64) float64 {
	if g.theta == 1 {
		return v - y
	}
	t1 := g.generator(u)
	t2 := g.generator(v)
	p1 := g.cdf(u, v)
	p2 := math.Pow(t1+t2, -1+1/g.theta)
	p3 := math.Pow(-math.Log(v), g.theta-1)
	return p1*p2*p3/v - y
}

// PercentPoint inverts the conditional distribution: it returns u in
// (0, 1) such that C(u|v) = y. There is no closed form, so the offset
// objective is solved with a bounded monotonic root search over
// [ε, 1]; targets outside the reachable range clamp to the nearest
// bracket endpoint. At theta = 1 the conditional distribution is the
// identity and the inverse is y itself.
func (g *Gumbel) PercentPoint(y, v float64) (float64, error) {
	if err := g.checkFit(); err != nil {
		return 0, err
	}
	if err := g.checkTheta(); err != nil {
		return 0, err
	}
	if g.theta == 1 {
		return y, nil
	}

	// C(·|v) increases from ~0 at ε to exactly 1 at u = 1, so the
	// bracket holds for any y strictly inside that range.
	f := func(u float64) float64 { return g.partial(u, v, y) }
	if f(epsilon) >= 0 {
		return epsilon, nil
	}
	if f(1) <= 0 {
		return 1, nil
	}
	u, err := mathx.FindRoot(f, epsilon, 1, g.Root)
	if err != nil {
		return 0, errors.Wrap(err, "bivariate: conditional inversion")
	}
	return u, nil
}

// Sample returns PercentPoint(c[i], v[i]) for each i: v holds
// conditioning values and c target conditional probabilities. The
// output preserves index correspondence and is deterministic for
// identical inputs and model state.
func (g *Gumbel) Sample(v, c []float64) ([]float64, error) {
	if len(v) != len(c) {
		return nil, ErrLength
	}
	out := make([]float64, len(v))
	for i := range v {
		u, err := g.PercentPoint(c[i], v[i])
		if err != nil {
			return nil, err
		}
		out[i] = u
	}
	return out, nil
}

// Params returns the fitted parameters for persistence.
func (g *Gumbel) Params() (Params, error) {
	if err := g.checkFit(); err != nil {
		return Params{}, err
	}
	return Params{Type: GumbelCopula, Theta: g.theta, Tau: g.tau}, nil
}

// each evaluates f over paired slices with the fit and domain guards
// applied once, before any element is touched.
func (g *Gumbel) each(u, v []float64, f func(u, v float64) float64) ([]float64, error) {
	if err := g.checkFit(); err != nil {
		return nil, err
	}
	if err := g.checkTheta(); err != nil {
		return nil, err
	}
	if len(u) != len(v) {
		return nil, ErrLength
	}
	out := make([]float64, len(u))
	for i := range u {
		out[i] = f(u[i], v[i])
	}
	return out, nil
}
