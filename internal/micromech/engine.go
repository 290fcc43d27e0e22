package micromech

// Material holds the constituent constants of the composite.
// Moduli share a unit (GPa by convention); lengths are in metres.
type Material struct {
	Em   float64 // E_m - matrix Young's modulus
	RhoM float64 // ρ_m - matrix density (kg/m³)
	Er   float64 // E_r - reinforcement Young's modulus
	RhoR float64 // ρ_r - reinforcement density (kg/m³)
	Dr   float64 // d_r - mean lateral size of the reinforcement
	Hr   float64 // h_r - mean thickness of the reinforcement
}

// Validate checks that every constant is strictly positive
func (m Material) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"matrix modulus E_m", m.Em},
		{"matrix density ρ_m", m.RhoM},
		{"reinforcement modulus E_r", m.Er},
		{"reinforcement density ρ_r", m.RhoR},
		{"reinforcement size d_r", m.Dr},
		{"reinforcement thickness h_r", m.Hr},
	}
	for _, c := range checks {
		if err := requirePositive(c.name, c.v); err != nil {
			return err
		}
	}
	return nil
}

// ShapeParameter returns λ = 2 d_r / h_r
func (m Material) ShapeParameter() float64 {
	return 2 * m.Dr / m.Hr
}

// Interaction returns δ = (E_r/E_m - 1) / (E_r/E_m + λ)
func (m Material) Interaction() float64 {
	ratio := m.Er / m.Em
	return (ratio - 1) / (ratio + m.ShapeParameter())
}

// MixingWeights are the contributions of the two loading directions to the
// effective modulus. Both directions currently use the same δ.
type MixingWeights struct {
	Longitudinal float64
	Transverse   float64
}

const (
	LongitudinalWeight = 0.49
	TransverseWeight   = 0.51
)

// DefaultWeights is the 0.49/0.51 split
var DefaultWeights = MixingWeights{Longitudinal: LongitudinalWeight, Transverse: TransverseWeight}

// Result holds the through-thickness profiles, parallel to Z
type Result struct {
	Z              []float64
	Modulus        []float64 // E before porosity
	VolumeFraction []float64 // V(z)
	PorousModulus  []float64 // E after porosity attenuation

	AverageFraction float64 // V_avg
	Lambda          float64
	Delta           float64
}

// Engine evaluates the mixing rule with a given set of direction weights.
// An Engine with both weights zero uses DefaultWeights.
type Engine struct {
	Weights MixingWeights
}

// NewEngine returns an engine with the default weights
func NewEngine() *Engine {
	return &Engine{Weights: DefaultWeights}
}

// Evaluate runs the default engine
func Evaluate(grid []float64, h, vNet float64, m Material, dist Distribution, pm PorosityModel, p float64) (*Result, error) {
	return NewEngine().Evaluate(grid, h, vNet, m, dist, pm, p)
}

// Evaluate computes E(z), V(z) and the porous E(z) on grid.
// All arguments are validated before any per-position work. A singular mixing
// rule (δV = 1) is not an error; it shows up as ±Inf or NaN in the result.
func (e *Engine) Evaluate(grid []float64, h, vNet float64, m Material, dist Distribution, pm PorosityModel, p float64) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := requirePositive("plate thickness h", h); err != nil {
		return nil, err
	}
	if err := requireUnit("porosity factor p", p); err != nil {
		return nil, err
	}
	if !dist.Valid() {
		return nil, &InvalidArgumentError{Kind: "distribution", Value: dist.String()}
	}
	if !pm.Valid() {
		return nil, &InvalidArgumentError{Kind: "porosity model", Value: pm.String()}
	}
	vAvg, err := AverageVolumeFraction(vNet, m.RhoR, m.RhoM)
	if err != nil {
		return nil, err
	}

	lambda := m.ShapeParameter()
	delta1 := m.Interaction()
	delta2 := delta1

	n := len(grid)
	res := &Result{
		Z:               append([]float64(nil), grid...),
		Modulus:         make([]float64, n),
		VolumeFraction:  make([]float64, n),
		PorousModulus:   make([]float64, n),
		AverageFraction: vAvg,
		Lambda:          lambda,
		Delta:           delta1,
	}

	w := e.Weights
	if w == (MixingWeights{}) {
		w = DefaultWeights
	}

	law := distributionLaws[dist].shape
	porosity := porosityModels[pm].effect
	for i, z := range grid {
		zh := z / h
		v := vAvg * law(zh)

		x1 := halpinTsai(lambda, delta1, v)
		x2 := halpinTsai(lambda, delta2, v)
		modulus := w.Longitudinal*x1*m.Em + w.Transverse*x2*m.Em

		res.VolumeFraction[i] = v
		res.Modulus[i] = modulus
		res.PorousModulus[i] = modulus * porosity(zh, p)
	}
	return res, nil
}

// halpinTsai returns X = (1 + λδV) / (1 - δV).
// Division by zero follows IEEE semantics.
func halpinTsai(lambda, delta, v float64) float64 {
	return (1 + lambda*delta*v) / (1 - delta*v)
}
