// Copyright 2024 The Copulas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bivariate

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Params is the serializable state of a fitted copula. The JSON field
// names and the upper-case family tag match the original Python
// copulas wire format, so models round-trip between the two.
type Params struct {
	Type  CopulaType `json:"copula_type"`
	Theta float64    `json:"theta"`
	Tau   float64    `json:"tau"`
}

// MarshalText encodes the family tag as its upper-case name.
func (t CopulaType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(copulaTypeNames) {
		return nil, errors.Errorf("bivariate: unknown copula type %d", int(t))
	}
	return []byte(strings.ToUpper(t.String())), nil
}

// UnmarshalText decodes a family tag name, case-insensitively.
func (t *CopulaType) UnmarshalText(text []byte) error {
	name := string(text)
	for i, n := range copulaTypeNames {
		if strings.EqualFold(name, n) {
			*t = CopulaType(i)
			return nil
		}
	}
	return errors.Errorf("bivariate: unknown copula type %q", name)
}

// FromParams reconstructs a fitted copula from persisted parameters.
func FromParams(p Params) (Copula, error) {
	c, err := New(p.Type)
	if err != nil {
		return nil, err
	}
	g := c.(*Gumbel)
	g.theta = p.Theta
	g.tau = p.Tau
	g.fitted = true
	return g, nil
}

// Save writes the fitted parameters of c to path as JSON.
func Save(path string, c Copula) error {
	p, err := c.Params()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, append(data, '\n'), 0o644), "bivariate: save model")
}

// Load reads fitted parameters from a JSON file written by Save and
// reconstructs the copula.
func Load(path string) (Copula, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "bivariate: load model")
	}
	var p Params
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "bivariate: load model")
	}
	return FromParams(p)
}
