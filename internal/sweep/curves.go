package sweep

import (
	"github.com/alexiusacademia/gocomposite/internal/micromech"
	log "github.com/sirupsen/logrus"
)

// Distributions evaluates every distribution law under one porosity model
func Distributions(in Input, pm micromech.PorosityModel, p float64) ([]Outcome, error) {
	return Run(in, Combinations(micromech.Distributions(), []micromech.PorosityModel{pm}, []float64{p}))
}

// PorosityModels evaluates one distribution law under every porosity model
func PorosityModels(in Input, d micromech.Distribution, p float64) ([]Outcome, error) {
	return Run(in, Combinations([]micromech.Distribution{d}, micromech.PorosityModels(), []float64{p}))
}

// Curve is a sampled y(x) relation
type Curve struct {
	X []float64
	Y []float64
}

// PorosityFactors returns the mean porous modulus through the thickness as a
// function of the porosity factor, sampled on n points of [0, 1]
func PorosityFactors(in Input, d micromech.Distribution, pm micromech.PorosityModel, n int) (*Curve, error) {
	factors, err := micromech.Linspace(0, 1, n)
	if err != nil {
		return nil, err
	}
	outcomes, err := Run(in, Combinations([]micromech.Distribution{d}, []micromech.PorosityModel{pm}, factors))
	if err != nil {
		return nil, err
	}

	curve := &Curve{X: factors, Y: make([]float64, len(outcomes))}
	for i, o := range outcomes {
		curve.Y[i] = o.MeanModulus
	}
	return curve, nil
}

// Density returns the effective density as a function of the volume
// fraction, sampled on n points of [0, vMax]
func Density(rhoR, rhoM, vMax float64, n int) (*Curve, error) {
	fractions, err := micromech.Linspace(0, vMax, n)
	if err != nil {
		return nil, err
	}

	curve := &Curve{X: fractions, Y: make([]float64, n)}
	for i, v := range fractions {
		rho, err := micromech.EffectiveDensity(v, rhoR, rhoM)
		if err != nil {
			return nil, err
		}
		curve.Y[i] = rho
	}

	log.WithFields(log.Fields{
		"points": n,
		"v_max":  vMax,
	}).Debug("density curve evaluated")

	return curve, nil
}
