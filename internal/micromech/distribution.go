package micromech

import (
	"math"
	"strconv"
	"strings"
)

// Distribution selects the through-thickness reinforcement law
type Distribution int

const (
	Uniform          Distribution = iota // FU
	LinearAscending                      // FGV
	LinearDescending                     // FGA
	SymmetricOutward                     // FGO
	SymmetricInward                      // FGX
	numDistributions
)

type distributionLaw struct {
	code string
	name string
	// shape maps the normalized position z/h to a multiplier of V_avg
	shape func(zh float64) float64
}

var distributionLaws = [numDistributions]distributionLaw{
	Uniform: {"FU", "Uniform", func(float64) float64 { return 1 }},
	LinearAscending: {"FGV", "Linear ascending", func(zh float64) float64 {
		return zh + 0.5
	}},
	LinearDescending: {"FGA", "Linear descending", func(zh float64) float64 {
		return 0.5 - zh
	}},
	SymmetricOutward: {"FGO", "Symmetric outward", func(zh float64) float64 {
		return 1 - 2*math.Abs(zh)
	}},
	SymmetricInward: {"FGX", "Symmetric inward", func(zh float64) float64 {
		return 2 * math.Abs(zh)
	}},
}

// Distributions returns every distribution law in declaration order
func Distributions() []Distribution {
	return []Distribution{Uniform, LinearAscending, LinearDescending, SymmetricOutward, SymmetricInward}
}

// Valid reports whether d is one of the declared laws
func (d Distribution) Valid() bool {
	return d >= 0 && d < numDistributions
}

// String returns the short code (FU, FGV, FGA, FGO, FGX)
func (d Distribution) String() string {
	if !d.Valid() {
		return "Distribution(" + strconv.Itoa(int(d)) + ")"
	}
	return distributionLaws[d].code
}

// Name returns a human readable label
func (d Distribution) Name() string {
	if !d.Valid() {
		return d.String()
	}
	return distributionLaws[d].name
}

// ParseDistribution accepts the short code, case-insensitively
func ParseDistribution(s string) (Distribution, error) {
	for i, law := range distributionLaws {
		if strings.EqualFold(s, law.code) {
			return Distribution(i), nil
		}
	}
	return 0, &InvalidArgumentError{Kind: "distribution", Value: s}
}

// VolumeFractionAt evaluates the local reinforcement volume fraction at z.
// No clamping is applied: positions outside [-h/2, h/2] may give values
// below 0 or above V_avg.
func (d Distribution) VolumeFractionAt(z, h, vAvg float64) (float64, error) {
	if !d.Valid() {
		return 0, &InvalidArgumentError{Kind: "distribution", Value: d.String()}
	}
	return vAvg * distributionLaws[d].shape(z/h), nil
}
