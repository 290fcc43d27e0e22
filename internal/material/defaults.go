package material

import "github.com/alexiusacademia/gocomposite/internal/micromech"

// Reference constants for an epoxy matrix reinforced with graphene
// oxide platelets

const (
	// Matrix
	MatrixModulus = 4.6    // E_m (GPa)
	MatrixDensity = 1380.0 // ρ_m (kg/m³)

	// Reinforcement
	ReinforcementModulus   = 444.8   // E_r (GPa)
	ReinforcementDensity   = 2250.0  // ρ_r (kg/m³)
	ReinforcementSize      = 500e-9  // d_r (m)
	ReinforcementThickness = 0.95e-9 // h_r (m)

	// Loading
	MassFraction     = 0.1  // w_r
	PlateThickness   = 0.01 // h (m)
	PorosityFactor   = 0.1  // p
	MaxSweepFraction = 0.6  // upper bound of the density vs volume fraction curve

	// Sampling
	GridPoints        = micromech.DefaultGridPoints
	FactorSweepPoints = 50
)

// Default returns the reference material
func Default() micromech.Material {
	return micromech.Material{
		Em:   MatrixModulus,
		RhoM: MatrixDensity,
		Er:   ReinforcementModulus,
		RhoR: ReinforcementDensity,
		Dr:   ReinforcementSize,
		Hr:   ReinforcementThickness,
	}
}
