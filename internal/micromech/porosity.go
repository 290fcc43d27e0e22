package micromech

import (
	"math"
	"strconv"
	"strings"
)

// PorosityModel selects the stiffness attenuation curve
type PorosityModel int

const (
	NoPorosity  PorosityModel = iota // none
	CosineType1                      // P-1: 1 - p cos(πz/h)
	CosineType2                      // P-2: 1 - p (1 - cos(πz/h))
	numPorosityModels
)

var porosityModels = [numPorosityModels]struct {
	code    string
	aliases []string
	effect  func(zh, p float64) float64
}{
	NoPorosity: {"none", []string{"aucun", "no"}, func(float64, float64) float64 { return 1 }},
	CosineType1: {"P-1", []string{"p1"}, func(zh, p float64) float64 {
		return 1 - p*math.Cos(math.Pi*zh)
	}},
	CosineType2: {"P-2", []string{"p2"}, func(zh, p float64) float64 {
		return 1 - p*(1-math.Cos(math.Pi*zh))
	}},
}

// PorosityModels returns every porosity model in declaration order
func PorosityModels() []PorosityModel {
	return []PorosityModel{NoPorosity, CosineType1, CosineType2}
}

// Valid reports whether m is one of the declared models
func (m PorosityModel) Valid() bool {
	return m >= 0 && m < numPorosityModels
}

func (m PorosityModel) String() string {
	if !m.Valid() {
		return "PorosityModel(" + strconv.Itoa(int(m)) + ")"
	}
	return porosityModels[m].code
}

// ParsePorosityModel accepts "none", "P-1", "P-2" and a few aliases
func ParsePorosityModel(s string) (PorosityModel, error) {
	for i, pm := range porosityModels {
		if strings.EqualFold(s, pm.code) {
			return PorosityModel(i), nil
		}
		for _, a := range pm.aliases {
			if strings.EqualFold(s, a) {
				return PorosityModel(i), nil
			}
		}
	}
	return 0, &InvalidArgumentError{Kind: "porosity model", Value: s}
}

// EffectAt returns the multiplicative attenuation applied to the modulus at z
func (m PorosityModel) EffectAt(z, h, p float64) (float64, error) {
	if !m.Valid() {
		return 0, &InvalidArgumentError{Kind: "porosity model", Value: m.String()}
	}
	return porosityModels[m].effect(z/h, p), nil
}
