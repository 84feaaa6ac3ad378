package model

import (
	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/types"
)

// AttackPattern is a single row of the CAPEC catalog. The catalog is loaded
// once at startup and rows are immutable afterwards; the positional index of
// a row in the loaded table is its stable identity for UI selections.
type AttackPattern struct {
	ID          string
	Name        string
	Description string
	Severity    types.Severity
	Likelihood  types.Likelihood

	// Optional delimited text fields. An empty string means the source
	// catalog has no data for the field.
	RelatedWeaknesses string
	ExampleInstances  string
	Mitigations       string
}

// HasRelatedWeaknesses reports whether the row has related weakness data
func (p *AttackPattern) HasRelatedWeaknesses() bool {
	return p.RelatedWeaknesses != ""
}

// HasExampleInstances reports whether the row has example instance data
func (p *AttackPattern) HasExampleInstances() bool {
	return p.ExampleInstances != ""
}

// HasMitigations reports whether the row has mitigation data
func (p *AttackPattern) HasMitigations() bool {
	return p.Mitigations != ""
}
