package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// DetailCategory selects which detail text of an attack pattern is shown
type DetailCategory string

const (
	CategoryWeaknesses  DetailCategory = "weaknesses"
	CategoryInstances   DetailCategory = "instances"
	CategoryMitigations DetailCategory = "mitigations"
)

// AllDetailCategories returns every selectable detail category
func AllDetailCategories() []DetailCategory {
	return []DetailCategory{
		CategoryWeaknesses,
		CategoryInstances,
		CategoryMitigations,
	}
}

// Validate checks if the DetailCategory is valid
func (c DetailCategory) Validate() error {
	for _, v := range AllDetailCategories() {
		if c == v {
			return nil
		}
	}
	return goerr.New("unknown detail category", goerr.V("category", c))
}

// String returns the string representation of DetailCategory
func (c DetailCategory) String() string {
	return string(c)
}
