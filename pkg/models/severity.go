package models

// Severity is a terminal monitoring state following the standard
// four-level plugin convention.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarning
	SeverityCritical
	SeverityUnknown
)

// String returns the conventional upper-case label for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "OK"
	case SeverityWarning:
		return "WARNING"
	case SeverityCritical:
		return "CRITICAL"
	case SeverityUnknown:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// ExitCode maps the severity to the monitoring scheduler's exit code.
func (s Severity) ExitCode() int {
	if s < SeverityOK || s > SeverityUnknown {
		return int(SeverityUnknown)
	}
	return int(s)
}

// Worse returns the more severe of two severities. UNKNOWN outranks
// everything: "cannot determine" must never be masked by a determined
// result from another record.
func Worse(a, b Severity) Severity {
	if a == SeverityUnknown || b == SeverityUnknown {
		return SeverityUnknown
	}
	if b > a {
		return b
	}
	return a
}

// CheckResult couples one severity with its one-line human-readable message.
type CheckResult struct {
	Severity Severity
	Message  string
}
