package check

import (
	"fmt"
	"strings"

	"github.com/HerbHall/peerwatch/internal/oidx"
	"github.com/HerbHall/peerwatch/pkg/models"
)

// ResolveMode maps the two mutually exclusive alert-direction flags to a
// threshold mode. Both set is a configuration error, rejected before any
// poll occurs.
func ResolveMode(lowBound, highBound bool) (models.ThresholdMode, error) {
	switch {
	case lowBound && highBound:
		return models.ModeNone, ErrConflictingThresholdMode
	case lowBound:
		return models.ModeLowBound, nil
	case highBound:
		return models.ModeHighBound, nil
	default:
		return models.ModeNone, nil
	}
}

// Evaluate reduces one assembled record to a terminal severity. The rules
// run in fixed order and the first match wins:
//
//  1. exact-match override: expected state mismatch is CRITICAL, a match
//     is OK immediately;
//  2. a non-established session is WARNING when administratively stopped,
//     CRITICAL otherwise;
//  3. no counter, nothing further to check;
//  4. low-bound: counter at or below critical, then warning;
//  5. high-bound: counter at or above critical, then warning;
//  6. otherwise OK.
func Evaluate(record models.SessionRecord, cfg models.ThresholdConfig) models.CheckResult {
	status := describeRecord(record)

	if cfg.ExpectedState != nil {
		if record.State != *cfg.ExpectedState {
			return models.CheckResult{
				Severity: models.SeverityCritical,
				Message:  fmt.Sprintf("%s, expected %s", status, cfg.ExpectedState),
			}
		}
		return models.CheckResult{Severity: models.SeverityOK, Message: status}
	}

	if record.State != models.StateEstablished {
		severity := models.SeverityCritical
		if record.AdminStopped {
			severity = models.SeverityWarning
		}
		return models.CheckResult{Severity: severity, Message: status}
	}

	if record.Counter == nil {
		return models.CheckResult{Severity: models.SeverityOK, Message: status}
	}

	severity, note := boundSeverity(record.Counter.Value, cfg)
	if note != "" {
		status = fmt.Sprintf("%s (%s)", status, note)
	}
	return models.CheckResult{Severity: severity, Message: status}
}

// boundSeverity applies rules 4-6: the critical bound is checked before
// the warning bound, both boundaries are inclusive, and an unconfigured
// threshold performs no transition.
func boundSeverity(counter uint64, cfg models.ThresholdConfig) (models.Severity, string) {
	switch cfg.Mode {
	case models.ModeLowBound:
		if cfg.Critical != nil && counter <= *cfg.Critical {
			return models.SeverityCritical, fmt.Sprintf("at or below critical threshold %d", *cfg.Critical)
		}
		if cfg.Warning != nil && counter <= *cfg.Warning {
			return models.SeverityWarning, fmt.Sprintf("at or below warning threshold %d", *cfg.Warning)
		}
	case models.ModeHighBound:
		if cfg.Critical != nil && counter >= *cfg.Critical {
			return models.SeverityCritical, fmt.Sprintf("at or above critical threshold %d", *cfg.Critical)
		}
		if cfg.Warning != nil && counter >= *cfg.Warning {
			return models.SeverityWarning, fmt.Sprintf("at or above warning threshold %d", *cfg.Warning)
		}
	}
	return models.SeverityOK, ""
}

// describeRecord renders the one-line status for a record.
func describeRecord(r models.SessionRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "peer %s", oidx.AddressOf(r.Identity.RemoteAddress))
	if r.RemoteAS != 0 {
		fmt.Fprintf(&b, " (%s AS%d)", r.Type, r.RemoteAS)
	}
	fmt.Fprintf(&b, " %s", r.State)
	if r.AdminStopped {
		b.WriteString(" (admin stopped)")
	}
	if r.State != models.StateEstablished && r.ErrorCode != 0 {
		fmt.Fprintf(&b, ", last error [%s]", notificationHex(r.ErrorCode, r.ErrorSubcode))
		if r.ErrorText != "" {
			fmt.Fprintf(&b, " %s", r.ErrorText)
		}
	}
	if r.Counter != nil {
		fmt.Fprintf(&b, ", %d %s", r.Counter.Value, r.Counter.Kind)
		if r.Counter.SubFamily != 0 {
			fmt.Fprintf(&b, " (safi %d)", r.Counter.SubFamily)
		}
	}
	return b.String()
}
