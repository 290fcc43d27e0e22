package micromech

import "fmt"

// DomainError reports a violated physical precondition
// (non-positive density or thickness, fraction outside [0,1], ...)
type DomainError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("invalid %s = %g: %s", e.Param, e.Value, e.Reason)
}

// InvalidArgumentError reports an unrecognized distribution or porosity selector
type InvalidArgumentError struct {
	Kind  string // "distribution" or "porosity model"
	Value string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
}

func requirePositive(name string, v float64) error {
	// !(v > 0) also rejects NaN
	if !(v > 0) {
		return &DomainError{Param: name, Value: v, Reason: "must be strictly positive"}
	}
	return nil
}

func requireUnit(name string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return &DomainError{Param: name, Value: v, Reason: "must lie in [0, 1]"}
	}
	return nil
}
