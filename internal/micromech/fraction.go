package micromech

// NetVolumeFraction converts a reinforcement mass fraction to a volume fraction
//
//	V_net = w_r / (w_r + (ρ_r/ρ_m)(1 - w_r))
func NetVolumeFraction(wr, rhoR, rhoM float64) (float64, error) {
	if err := requireUnit("mass fraction w_r", wr); err != nil {
		return 0, err
	}
	if err := checkDensities(rhoR, rhoM); err != nil {
		return 0, err
	}
	return rationalFraction(wr, rhoR/rhoM), nil
}

// AverageVolumeFraction applies the same rational form to V_net.
// The result is the amplitude of the through-thickness distribution laws
// and is not interchangeable with V_net.
func AverageVolumeFraction(vNet, rhoR, rhoM float64) (float64, error) {
	if err := requireUnit("volume fraction V_net", vNet); err != nil {
		return 0, err
	}
	if err := checkDensities(rhoR, rhoM); err != nil {
		return 0, err
	}
	return rationalFraction(vNet, rhoR/rhoM), nil
}

// EffectiveDensity is the linear rule of mixtures ρ = V ρ_r + (1 - V) ρ_m.
// Porosity is not applied to density.
func EffectiveDensity(vNet, rhoR, rhoM float64) (float64, error) {
	if err := requireUnit("volume fraction V_net", vNet); err != nil {
		return 0, err
	}
	if err := checkDensities(rhoR, rhoM); err != nil {
		return 0, err
	}
	return vNet*rhoR + (1-vNet)*rhoM, nil
}

func rationalFraction(x, ratio float64) float64 {
	return x / (x + ratio*(1-x))
}

func checkDensities(rhoR, rhoM float64) error {
	if err := requirePositive("matrix density ρ_m", rhoM); err != nil {
		return err
	}
	return requirePositive("reinforcement density ρ_r", rhoR)
}
