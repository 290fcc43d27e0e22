package micromech

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testH = 0.01

var testMaterial = Material{
	Em:   testEm,
	RhoM: testRhoM,
	Er:   testEr,
	RhoR: testRhoR,
	Dr:   500e-9,
	Hr:   0.95e-9,
}

func testSetup(t *testing.T) ([]float64, float64) {
	t.Helper()
	grid, err := ThicknessGrid(testH, DefaultGridPoints)
	require.NoError(t, err)
	vNet, err := NetVolumeFraction(0.1, testRhoR, testRhoM)
	require.NoError(t, err)
	return grid, vNet
}

func TestThicknessGridEndpoints(t *testing.T) {
	grid, err := ThicknessGrid(testH, DefaultGridPoints)
	require.NoError(t, err)
	require.Len(t, grid, DefaultGridPoints)
	assert.Equal(t, -testH/2, grid[0])
	assert.Equal(t, testH/2, grid[len(grid)-1])
	for i := 1; i < len(grid); i++ {
		assert.Greater(t, grid[i], grid[i-1])
	}

	// plain lo + step*(n-1) lands one ulp short of h/2 for n = 74 and past 0.6 for n = 38
	grid, err = ThicknessGrid(testH, 74)
	require.NoError(t, err)
	assert.Equal(t, testH/2, grid[73])
	span, err := Linspace(0, 0.6, 38)
	require.NoError(t, err)
	assert.Equal(t, 0.6, span[37])

	_, err = ThicknessGrid(0, 10)
	assert.Error(t, err)
	_, err = Linspace(0, 1, 1)
	assert.Error(t, err)
}

func TestUniformIsConstant(t *testing.T) {
	grid, vNet := testSetup(t)
	res, err := Evaluate(grid, testH, vNet, testMaterial, Uniform, NoPorosity, 0.1)
	require.NoError(t, err)

	for i := range grid {
		assert.Equal(t, res.AverageFraction, res.VolumeFraction[i])
		assert.Equal(t, res.Modulus[0], res.Modulus[i])
	}
}

func TestSymmetricLawsAreEven(t *testing.T) {
	grid, vNet := testSetup(t)
	n := len(grid)
	for _, d := range []Distribution{SymmetricOutward, SymmetricInward} {
		res, err := Evaluate(grid, testH, vNet, testMaterial, d, NoPorosity, 0)
		require.NoError(t, err)
		for i := 0; i < n/2; i++ {
			assert.InDelta(t, res.VolumeFraction[i], res.VolumeFraction[n-1-i], 1e-15, "%s at %d", d, i)
		}
	}
}

func TestLinearLawsAreComplementary(t *testing.T) {
	grid, vNet := testSetup(t)
	asc, err := Evaluate(grid, testH, vNet, testMaterial, LinearAscending, NoPorosity, 0)
	require.NoError(t, err)
	desc, err := Evaluate(grid, testH, vNet, testMaterial, LinearDescending, NoPorosity, 0)
	require.NoError(t, err)

	for i := range grid {
		assert.InDelta(t, asc.AverageFraction, asc.VolumeFraction[i]+desc.VolumeFraction[i], 1e-15)
	}

	last := len(grid) - 1
	assert.InDelta(t, asc.AverageFraction, asc.VolumeFraction[last], 1e-15)
	assert.Equal(t, 0.0, desc.VolumeFraction[last])
	assert.Equal(t, 0.0, asc.VolumeFraction[0])
}

func TestDistributionFormulas(t *testing.T) {
	const vAvg = 0.04
	cases := []struct {
		d    Distribution
		z    float64
		want float64
	}{
		{Uniform, 0.003, vAvg},
		{LinearAscending, 0, vAvg / 2},
		{LinearDescending, -testH / 2, vAvg},
		{SymmetricOutward, 0, vAvg},
		{SymmetricOutward, testH / 2, 0},
		{SymmetricInward, 0, 0},
		{SymmetricInward, -testH / 2, vAvg},
	}
	for _, tc := range cases {
		got, err := tc.d.VolumeFractionAt(tc.z, testH, vAvg)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-15, "%s at z=%g", tc.d, tc.z)
	}
}

func TestNoPorosityLeavesModulus(t *testing.T) {
	grid, vNet := testSetup(t)
	for _, d := range Distributions() {
		res, err := Evaluate(grid, testH, vNet, testMaterial, d, NoPorosity, 0.7)
		require.NoError(t, err)
		assert.Equal(t, res.Modulus, res.PorousModulus, d.String())
	}
}

func TestPorosityAtMidplane(t *testing.T) {
	const p = 0.3
	cases := map[PorosityModel]float64{
		NoPorosity:  1,
		CosineType1: 1 - p,
		CosineType2: 1,
	}
	for pm, want := range cases {
		got, err := pm.EffectAt(0, testH, p)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-15, pm.String())
	}

	res, err := Evaluate([]float64{0}, testH, 0.05, testMaterial, Uniform, CosineType1, p)
	require.NoError(t, err)
	assert.InDelta(t, res.Modulus[0]*(1-p), res.PorousModulus[0], 1e-12)
}

func TestPorosityAwayFromMidplane(t *testing.T) {
	const p = 0.3
	z := testH / 4
	c := math.Cos(math.Pi / 4)
	cases := []struct {
		pm   PorosityModel
		want float64
	}{
		{NoPorosity, 1},
		{CosineType1, 1 - p*c},
		{CosineType2, 1 - p*(1-c)},
	}
	for _, tc := range cases {
		got, err := tc.pm.EffectAt(z, testH, p)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-15, tc.pm.String())

		below, err := tc.pm.EffectAt(-z, testH, p)
		require.NoError(t, err)
		assert.InDelta(t, got, below, 1e-15, tc.pm.String())
	}
}

func TestMixingRule(t *testing.T) {
	grid, vNet := testSetup(t)
	res, err := Evaluate(grid, testH, vNet, testMaterial, SymmetricOutward, NoPorosity, 0)
	require.NoError(t, err)

	lambda := 2 * 500e-9 / 0.95e-9
	ratio := testEr / testEm
	delta := (ratio - 1) / (ratio + lambda)
	assert.InDelta(t, lambda, res.Lambda, 1e-9)
	assert.InDelta(t, delta, res.Delta, 1e-15)

	for i, v := range res.VolumeFraction {
		x := (1 + lambda*delta*v) / (1 - delta*v)
		assert.InDelta(t, x*testEm, res.Modulus[i], 1e-9)
	}
}

func TestEngineWeightsAreIndependent(t *testing.T) {
	grid, vNet := testSetup(t)
	e := &Engine{Weights: MixingWeights{Longitudinal: 1, Transverse: 0}}
	res, err := e.Evaluate(grid, testH, vNet, testMaterial, Uniform, NoPorosity, 0)
	require.NoError(t, err)
	ref, err := Evaluate(grid, testH, vNet, testMaterial, Uniform, NoPorosity, 0)
	require.NoError(t, err)

	// both directions share δ, so any weights summing to one give the same modulus
	assert.InDeltaSlice(t, ref.Modulus, res.Modulus, 1e-12)
	assert.Equal(t, 1.0, DefaultWeights.Longitudinal+DefaultWeights.Transverse)
}

func TestZeroEngineUsesDefaultWeights(t *testing.T) {
	grid, vNet := testSetup(t)
	res, err := (&Engine{}).Evaluate(grid, testH, vNet, testMaterial, LinearAscending, CosineType1, 0.2)
	require.NoError(t, err)
	ref, err := NewEngine().Evaluate(grid, testH, vNet, testMaterial, LinearAscending, CosineType1, 0.2)
	require.NoError(t, err)

	assert.Equal(t, ref, res)
	assert.Greater(t, res.Modulus[0], 0.0)
}

func TestSingularityPropagates(t *testing.T) {
	m := Material{Em: 1, RhoM: 1000, Er: 3, RhoR: 1000, Dr: 1e-9, Hr: 2e-9} // λ = 1, δ = 0.5
	require.Equal(t, 0.5, m.Interaction())

	// equal densities give V_avg = V_net = 1; FGX at z = h gives V = 2, so δV = 1
	res, err := Evaluate([]float64{0, testH}, testH, 1, m, SymmetricInward, CosineType1, 0.2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.VolumeFraction[1])
	assert.True(t, math.IsInf(res.Modulus[1], 1), "got %v", res.Modulus[1])
	assert.True(t, math.IsInf(res.PorousModulus[1], 0) || math.IsNaN(res.PorousModulus[1]))
	assert.False(t, math.IsInf(res.Modulus[0], 0))
}

func TestEvaluateIsPure(t *testing.T) {
	grid, vNet := testSetup(t)
	orig := append([]float64(nil), grid...)

	a, err := Evaluate(grid, testH, vNet, testMaterial, LinearAscending, CosineType2, 0.4)
	require.NoError(t, err)
	b, err := Evaluate(grid, testH, vNet, testMaterial, LinearAscending, CosineType2, 0.4)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, orig, grid)

	a.Z[0] = 42
	assert.Equal(t, orig[0], grid[0])
}

func TestEvaluateErrors(t *testing.T) {
	grid, vNet := testSetup(t)

	bad := testMaterial
	bad.Hr = 0
	_, err := Evaluate(grid, testH, vNet, bad, Uniform, NoPorosity, 0)
	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "reinforcement thickness h_r", de.Param)

	bad = testMaterial
	bad.Em = 0
	_, err = Evaluate(grid, testH, vNet, bad, Uniform, NoPorosity, 0)
	assert.True(t, errors.As(err, &de))

	_, err = Evaluate(grid, -1, vNet, testMaterial, Uniform, NoPorosity, 0)
	assert.True(t, errors.As(err, &de))

	_, err = Evaluate(grid, testH, vNet, testMaterial, Uniform, CosineType1, 1.5)
	assert.True(t, errors.As(err, &de))

	var ie *InvalidArgumentError
	_, err = Evaluate(grid, testH, vNet, testMaterial, Distribution(9), NoPorosity, 0)
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "distribution", ie.Kind)

	_, err = Evaluate(grid, testH, vNet, testMaterial, Uniform, PorosityModel(-1), 0)
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "porosity model", ie.Kind)
}

func TestParseSelectors(t *testing.T) {
	for _, d := range Distributions() {
		got, err := ParseDistribution(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	got, err := ParseDistribution("fgx")
	require.NoError(t, err)
	assert.Equal(t, SymmetricInward, got)

	_, err = ParseDistribution("FGZ")
	var ie *InvalidArgumentError
	assert.True(t, errors.As(err, &ie))

	for in, want := range map[string]PorosityModel{"none": NoPorosity, "Aucun": NoPorosity, "P-1": CosineType1, "p2": CosineType2} {
		pm, err := ParsePorosityModel(in)
		require.NoError(t, err)
		assert.Equal(t, want, pm, in)
	}
	_, err = ParsePorosityModel("P-3")
	assert.True(t, errors.As(err, &ie))
}

func TestDispatchTablesAreComplete(t *testing.T) {
	require.Len(t, Distributions(), int(numDistributions))
	for i, law := range distributionLaws {
		assert.NotEmpty(t, law.code, "distribution %d", i)
		assert.NotNil(t, law.shape, "distribution %d", i)
	}
	require.Len(t, PorosityModels(), int(numPorosityModels))
	for i, pm := range porosityModels {
		assert.NotEmpty(t, pm.code, "porosity model %d", i)
		assert.NotNil(t, pm.effect, "porosity model %d", i)
	}
}
