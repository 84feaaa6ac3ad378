package types

// Severity represents the Typical Severity level of an attack pattern
type Severity string

const (
	SeverityVeryHigh Severity = "Very High"
	SeverityHigh     Severity = "High"
	SeverityMedium   Severity = "Medium"
	SeverityLow      Severity = "Low"
	SeverityVeryLow  Severity = "Very Low"
	SeverityNone     Severity = "None"

	// SeverityUnknown is used for rows whose severity column is empty or
	// holds a value outside the catalog's enumeration
	SeverityUnknown Severity = ""
)

// AllSeverities returns every known severity level in descending order
func AllSeverities() []Severity {
	return []Severity{
		SeverityVeryHigh,
		SeverityHigh,
		SeverityMedium,
		SeverityLow,
		SeverityVeryLow,
		SeverityNone,
	}
}

// IsValid checks if the Severity is one of the known levels
func (s Severity) IsValid() bool {
	for _, v := range AllSeverities() {
		if s == v {
			return true
		}
	}
	return false
}

// String returns the string representation of Severity
func (s Severity) String() string {
	return string(s)
}
