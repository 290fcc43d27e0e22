package sweep

import (
	"fmt"
	"math"
	"sync"

	"github.com/alexiusacademia/gocomposite/internal/micromech"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Input holds everything shared by the cases of a sweep
type Input struct {
	Material    micromech.Material
	Thickness   float64   // h (m)
	NetFraction float64   // V_net
	Grid        []float64 // through-thickness positions
}

// Case is one (distribution, porosity model, porosity factor) combination
type Case struct {
	ID           string
	Distribution micromech.Distribution
	Porosity     micromech.PorosityModel
	Factor       float64
}

// Description is a short label for legends and tables
func (c Case) Description() string {
	if c.Porosity == micromech.NoPorosity {
		return c.Distribution.String()
	}
	return fmt.Sprintf("%s / %s p=%.2f", c.Distribution, c.Porosity, c.Factor)
}

// Outcome is the evaluated profile of a case with summary statistics of the
// porous modulus
type Outcome struct {
	Case
	Result *micromech.Result

	MeanModulus float64
	MinModulus  float64
	MaxModulus  float64
}

// Combinations builds the cartesian product of the given selections
func Combinations(ds []micromech.Distribution, pms []micromech.PorosityModel, factors []float64) []Case {
	cases := make([]Case, 0, len(ds)*len(pms)*len(factors))
	for _, d := range ds {
		for _, pm := range pms {
			for _, p := range factors {
				cases = append(cases, Case{
					ID:           fmt.Sprintf("%d", len(cases)+1),
					Distribution: d,
					Porosity:     pm,
					Factor:       p,
				})
			}
		}
	}
	return cases
}

// Run evaluates every case on the shared grid. Cases are independent and are
// evaluated concurrently; outcomes keep the order of cases.
// The first failing case, in case order, is returned as the error.
func Run(in Input, cases []Case) ([]Outcome, error) {
	if len(in.Grid) == 0 {
		return nil, fmt.Errorf("sweep: empty position grid")
	}

	outcomes := make([]Outcome, len(cases))
	errs := make([]error, len(cases))

	var wg sync.WaitGroup
	for i, c := range cases {
		wg.Add(1)
		go func(i int, c Case) {
			defer wg.Done()
			res, err := micromech.Evaluate(in.Grid, in.Thickness, in.NetFraction, in.Material, c.Distribution, c.Porosity, c.Factor)
			if err != nil {
				errs[i] = fmt.Errorf("case %s (%s): %w", c.ID, c.Description(), err)
				return
			}
			outcomes[i] = Outcome{
				Case:        c,
				Result:      res,
				MeanModulus: stat.Mean(res.PorousModulus, nil),
				MinModulus:  floats.Min(res.PorousModulus),
				MaxModulus:  floats.Max(res.PorousModulus),
			}
		}(i, c)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	log.WithFields(log.Fields{
		"cases":  len(cases),
		"points": len(in.Grid),
	}).Debug("sweep evaluated")

	return outcomes, nil
}

// Governing returns the outcome with the highest mean porous modulus.
// Outcomes whose mean is not finite are skipped.
func Governing(outcomes []Outcome) (Outcome, bool) {
	var (
		best  Outcome
		found bool
	)
	for _, o := range outcomes {
		if math.IsNaN(o.MeanModulus) || math.IsInf(o.MeanModulus, 0) {
			continue
		}
		if !found || o.MeanModulus > best.MeanModulus {
			best = o
			found = true
		}
	}
	return best, found
}
