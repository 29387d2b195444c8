package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AgeFactor is one row of an age-factor table: the percentage of final
// compensation earned per year of service when retiring at Age.
type AgeFactor struct {
	Age    int             `yaml:"age" json:"age"`
	Factor decimal.Decimal `yaml:"factor" json:"factor"`
}

// AgeFactorTable is a sparse, ordered age → factor mapping. Ages must be
// strictly increasing.
type AgeFactorTable []AgeFactor

// Validate reports an error if the table is empty or its ages are not
// strictly increasing.
func (t AgeFactorTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("age factor table is empty")
	}
	for i := 1; i < len(t); i++ {
		if t[i].Age <= t[i-1].Age {
			return fmt.Errorf("age factor table not strictly increasing at index %d (age %d after %d)", i, t[i].Age, t[i-1].Age)
		}
	}
	return nil
}

// MinAge returns the smallest age in the table
func (t AgeFactorTable) MinAge() int {
	if len(t) == 0 {
		return 0
	}
	return t[0].Age
}

// MaxAge returns the largest age in the table
func (t AgeFactorTable) MaxAge() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].Age
}

// Lookup returns the factor stored for an exact age.
func (t AgeFactorTable) Lookup(age int) (decimal.Decimal, bool) {
	for _, row := range t {
		if row.Age == age {
			return row.Factor, true
		}
	}
	return decimal.Zero, false
}
