// SPDX-License-Identifier: MIT
// Package builder — RandomSPD implementation.
//
// Model: draw (or accept) a spectrum λ₁..λₙ, build an orthogonal Q as the
// product of independent random Householder reflections I − 2vvᵀ (v a
// random unit vector), and return Q·diag(λ)·Qᵀ. The result is symmetric
// by construction and positive-semidefinite exactly when the spectrum is
// non-negative — guaranteed on the default Uniform(0,1) path, the
// caller's responsibility when eigenvalues are supplied (negative values
// are accepted and produce an indefinite matrix).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - len(eigenvalues) ≤ n (else ErrEigenCount); short lists zero-pad.
//   - cfg.rng non-nil (else ErrNeedRandSource): reflections are always
//     random even under a pinned spectrum.
//
// Complexity: O(reflections·n²) via explicit rank-one updates; O(n²) space.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

const (
	methodRandomSPD = "RandomSPD"
	minSPDNodes     = 2
)

// RandomSPD returns a random n×n symmetric positive-semidefinite matrix.
// See WithEigenvalues and WithReflections for the spectrum and
// orthogonal-factor knobs.
func RandomSPD(n int, opts ...Option) (*mat.SymDense, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Parameter validation, fail fast.
	if n < minSPDNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSPD, n, minSPDNodes, ErrTooFewNodes)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSPD, ErrNeedRandSource)
	}

	// 2) Resolve the spectrum: supplied (zero-padded) or Uniform(0,1).
	eigs := make([]float64, n)
	if cfg.eigsSet {
		if len(cfg.eigenvalues) > n {
			return nil, fmt.Errorf("%s: %d eigenvalues for n=%d: %w",
				methodRandomSPD, len(cfg.eigenvalues), n, ErrEigenCount)
		}
		copy(eigs, cfg.eigenvalues)
	} else {
		for i := range eigs {
			eigs[i] = cfg.rng.Float64()
		}
	}

	// 3) Compose Q from independent random Householder reflections.
	q := identity(n)
	v := make([]float64, n)
	for r := 0; r < cfg.reflections; r++ {
		randomUnitVector(cfg.rng, v)
		h := householder(v)
		next := &mat.Dense{}
		next.Mul(q, h)
		q = next
	}

	// 4) Assemble Q·diag(λ)·Qᵀ and symmetrize away float round-off.
	var qd, full mat.Dense
	qd.Mul(q, mat.NewDiagDense(n, eigs))
	full.Mul(&qd, q.T())

	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.SetSym(i, j, (full.At(i, j)+full.At(j, i))/2)
		}
	}

	return s, nil
}

// identity returns I_n as a dense matrix.
func identity(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, 1)
	}

	return d
}

// randomUnitVector fills v with an isotropic unit vector: independent
// standard Gaussian components normalized to length one. The zero-norm
// draw has probability zero but is guarded by a redraw anyway.
func randomUnitVector(rng *rand.Rand, v []float64) {
	for {
		var sumsq float64
		for i := range v {
			v[i] = rng.NormFloat64()
			sumsq += v[i] * v[i]
		}
		if sumsq > 0 {
			norm := math.Sqrt(sumsq)
			for i := range v {
				v[i] /= norm
			}
			return
		}
	}
}

// householder returns the reflection I − 2vvᵀ for a unit vector v.
func householder(v []float64) *mat.Dense {
	n := len(v)
	vec := mat.NewVecDense(n, v)
	h := &mat.Dense{}
	h.Outer(-2, vec, vec)
	for i := 0; i < n; i++ {
		h.Set(i, i, h.At(i, i)+1)
	}

	return h
}
