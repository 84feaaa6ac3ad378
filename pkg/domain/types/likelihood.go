package types

// Likelihood represents the Likelihood Of Attack level of an attack pattern
type Likelihood string

const (
	LikelihoodHigh   Likelihood = "High"
	LikelihoodMedium Likelihood = "Medium"
	LikelihoodLow    Likelihood = "Low"

	// LikelihoodUnknown is used for rows whose likelihood column is empty or
	// holds a value outside the catalog's enumeration
	LikelihoodUnknown Likelihood = ""
)

// AllLikelihoods returns every known likelihood level in descending order
func AllLikelihoods() []Likelihood {
	return []Likelihood{
		LikelihoodHigh,
		LikelihoodMedium,
		LikelihoodLow,
	}
}

// IsValid checks if the Likelihood is one of the known levels
func (l Likelihood) IsValid() bool {
	for _, v := range AllLikelihoods() {
		if l == v {
			return true
		}
	}
	return false
}

// String returns the string representation of Likelihood
func (l Likelihood) String() string {
	return string(l)
}
