package domain

// Severity grades how urgent a crisis alert is. Severity never overrides a
// client's privacy choice: even critical alerts are withheld from the attorney
// without effective consent.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// IsValid returns true if the severity is a known valid value.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// DisclosureScope is the granularity tier of a message, controlling how much
// detail it may contain.
type DisclosureScope string

const (
	// ScopeInternal marks full-detail records visible only to the care team.
	ScopeInternal DisclosureScope = "internal"
	// ScopeMinimal marks redacted records safe for the case's attorney.
	ScopeMinimal DisclosureScope = "minimal"
	// ScopeFull exists in the data model but is never produced for
	// attorney-facing alerts under current policy.
	ScopeFull DisclosureScope = "full"
)

// IsValid returns true if the scope is a known valid value.
func (d DisclosureScope) IsValid() bool {
	switch d {
	case ScopeInternal, ScopeMinimal, ScopeFull:
		return true
	}
	return false
}

// String returns the string representation of the scope.
func (d DisclosureScope) String() string {
	return string(d)
}
