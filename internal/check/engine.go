// Package check implements the device-state resolution engine: schema
// detection, peer location, counter correlation, record assembly and
// threshold evaluation, reduced to one terminal monitoring severity.
package check

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/HerbHall/peerwatch/internal/oidx"
	"github.com/HerbHall/peerwatch/internal/telemetry"
	"github.com/HerbHall/peerwatch/pkg/models"
)

// Engine runs one point-in-time check against one target. Polling is
// strictly sequential: one in-flight request, candidates probed in order,
// no retries above the transport's own single one.
type Engine struct {
	Poller telemetry.Poller
	Logger *zap.Logger
}

// Params is the caller-supplied configuration for one run. Thresholds are
// validated before any network I/O.
type Params struct {
	Target     string
	VendorHint string
	Thresholds models.ThresholdConfig
}

// Run resolves the target to one record per located identity and evaluates
// each. Callers that expect a single peer still get every match evaluated
// and reported together.
func (e *Engine) Run(ctx context.Context, p Params) ([]models.CheckResult, error) {
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Address validation happens before the first poll.
	if _, err := oidx.FamilyOf(p.Target); err != nil {
		return nil, err
	}

	det, err := Detect(ctx, e.Poller, p.VendorHint, logger)
	if err != nil {
		return nil, err
	}

	if p.Thresholds.Mode != models.ModeNone && !det.Schema.SupportsCounters {
		return nil, fmt.Errorf("%w: %s schema exposes no counters", ErrCapability, det.Schema.Vendor)
	}

	identities, err := Locate(det, p.Target, logger)
	if err != nil {
		return nil, err
	}

	results := make([]models.CheckResult, 0, len(identities))
	for _, identity := range identities {
		counter, err := Correlate(ctx, e.Poller, det.Schema, identity, logger)
		if err != nil {
			return nil, err
		}
		record, err := Assemble(ctx, e.Poller, det.Schema, identity, counter, logger)
		if err != nil {
			return nil, err
		}
		results = append(results, Evaluate(record, p.Thresholds))
	}
	return results, nil
}

// Aggregate reduces per-record results to the overall process outcome: the
// most severe severity, message lines joined in locator order.
func Aggregate(results []models.CheckResult) models.CheckResult {
	if len(results) == 0 {
		return models.CheckResult{Severity: models.SeverityUnknown, Message: "no records evaluated"}
	}
	out := results[0]
	if len(results) == 1 {
		return out
	}
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = r.Message
		out.Severity = models.Worse(out.Severity, r.Severity)
	}
	out.Message = strings.Join(lines, "; ")
	return out
}

// ResultFromError maps a failed run onto the four-level convention.
// UNKNOWN is reserved for "cannot determine"; a peer that is provably
// missing or unanswerable is a determined CRITICAL, not an UNKNOWN.
func ResultFromError(err error) models.CheckResult {
	severity := models.SeverityUnknown
	message := err.Error()

	switch {
	case errors.Is(err, ErrPeerNotFound), errors.Is(err, ErrPeerStateUnavailable):
		severity = models.SeverityCritical
	case errors.Is(err, context.DeadlineExceeded):
		message = "plugin timed out: " + message
	}
	return models.CheckResult{Severity: severity, Message: message}
}
