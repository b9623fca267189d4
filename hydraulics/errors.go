package hydraulics

import "fmt"

// DomainError reports an input outside its physical domain, such as a
// non-positive diameter. The calculation aborts at the first violation.
type DomainError struct {
	Quantity   string
	Value      float64
	Constraint string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s = %g (want %s)", e.Quantity, e.Value, e.Constraint)
}

func domainErr(quantity string, value float64, constraint string) error {
	return &DomainError{Quantity: quantity, Value: value, Constraint: constraint}
}
