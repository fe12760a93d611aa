package check

import (
	"errors"
	"testing"

	"github.com/HerbHall/peerwatch/pkg/models"
)

func established(counter *models.Counter) models.SessionRecord {
	return models.SessionRecord{
		Identity: models.PeerIdentity{
			Family:        models.FamilyIPv4,
			RemoteAddress: []byte{10, 1, 1, 1},
		},
		State:    models.StateEstablished,
		LocalAS:  65000,
		RemoteAS: 65001,
		Type:     models.SessionEBGP,
		Counter:  counter,
	}
}

func TestResolveMode(t *testing.T) {
	if _, err := ResolveMode(true, true); !errors.Is(err, ErrConflictingThresholdMode) {
		t.Fatalf("both bounds: err = %v, want ErrConflictingThresholdMode", err)
	}
	mode, err := ResolveMode(true, false)
	if err != nil || mode != models.ModeLowBound {
		t.Fatalf("low: mode = %v, err = %v", mode, err)
	}
	mode, err = ResolveMode(false, true)
	if err != nil || mode != models.ModeHighBound {
		t.Fatalf("high: mode = %v, err = %v", mode, err)
	}
	mode, err = ResolveMode(false, false)
	if err != nil || mode != models.ModeNone {
		t.Fatalf("none: mode = %v, err = %v", mode, err)
	}
}

func TestEvaluateExactMatchOverride(t *testing.T) {
	expected := models.StateEstablished
	record := established(&models.Counter{Kind: models.CounterPrefixes, Value: 1})
	// Matching expected state is OK even with thresholds that would fire.
	result := Evaluate(record, models.ThresholdConfig{
		Mode:          models.ModeLowBound,
		Critical:      uintPtr(100),
		ExpectedState: &expected,
	})
	if result.Severity != models.SeverityOK {
		t.Fatalf("severity = %v, want OK: %s", result.Severity, result.Message)
	}

	wrong := models.StateConnect
	result = Evaluate(record, models.ThresholdConfig{ExpectedState: &wrong})
	if result.Severity != models.SeverityCritical {
		t.Fatalf("severity = %v, want CRITICAL: %s", result.Severity, result.Message)
	}
}

func TestEvaluateNonEstablished(t *testing.T) {
	record := established(nil)
	record.State = models.StateActive
	if got := Evaluate(record, models.ThresholdConfig{}); got.Severity != models.SeverityCritical {
		t.Fatalf("severity = %v, want CRITICAL", got.Severity)
	}

	record.AdminStopped = true
	if got := Evaluate(record, models.ThresholdConfig{}); got.Severity != models.SeverityWarning {
		t.Fatalf("admin stopped: severity = %v, want WARNING", got.Severity)
	}
}

func TestEvaluateLowBoundPrecedence(t *testing.T) {
	// Critical is checked first even though warning would also trigger.
	record := established(&models.Counter{Kind: models.CounterPrefixes, Value: 100})
	result := Evaluate(record, models.ThresholdConfig{
		Mode:     models.ModeLowBound,
		Warning:  uintPtr(150),
		Critical: uintPtr(120),
	})
	if result.Severity != models.SeverityCritical {
		t.Fatalf("severity = %v, want CRITICAL: %s", result.Severity, result.Message)
	}
}

func TestEvaluateHighBoundInclusive(t *testing.T) {
	record := established(&models.Counter{Kind: models.CounterPrefixes, Value: 130})
	result := Evaluate(record, models.ThresholdConfig{
		Mode:    models.ModeHighBound,
		Warning: uintPtr(130),
	})
	if result.Severity != models.SeverityWarning {
		t.Fatalf("severity = %v, want WARNING: %s", result.Severity, result.Message)
	}
}

func TestEvaluateAbsentCounter(t *testing.T) {
	// No counter means nothing further to check, whatever the mode.
	record := established(nil)
	result := Evaluate(record, models.ThresholdConfig{
		Mode:     models.ModeLowBound,
		Critical: uintPtr(1 << 60),
	})
	if result.Severity != models.SeverityOK {
		t.Fatalf("severity = %v, want OK: %s", result.Severity, result.Message)
	}
}

func TestEvaluateBoundModeWithoutThresholds(t *testing.T) {
	// A bound mode with no thresholds configured performs no transition.
	record := established(&models.Counter{Kind: models.CounterPrefixes, Value: 5})
	result := Evaluate(record, models.ThresholdConfig{Mode: models.ModeLowBound})
	if result.Severity != models.SeverityOK {
		t.Fatalf("severity = %v, want OK: %s", result.Severity, result.Message)
	}
}
