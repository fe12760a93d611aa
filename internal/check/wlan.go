package check

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/HerbHall/peerwatch/internal/mib"
	"github.com/HerbHall/peerwatch/internal/oidx"
	"github.com/HerbHall/peerwatch/internal/telemetry"
	"github.com/HerbHall/peerwatch/pkg/models"
)

// WlanParams configures one WLC SSID check. An empty SSID enumerates
// every configured SSID and reports them together; a named SSID must
// exist. Thresholds bound the per-SSID associated client count.
type WlanParams struct {
	SSID       string
	Thresholds models.ThresholdConfig
}

// RunWlan checks SSID admin state and client counts on a wireless
// controller.
func RunWlan(ctx context.Context, poller telemetry.Poller, p WlanParams, logger *zap.Logger) ([]models.CheckResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	rows, err := poller.TableWalk(ctx, mib.OIDWlanEssSsid)
	if err != nil {
		return nil, fmt.Errorf("walk SSID table: %w", err)
	}
	sort.Slice(rows, func(i, j int) bool {
		return oidx.Compare(rows[i].OID, rows[j].OID) < 0
	})

	type essRow struct {
		id   string
		ssid string
	}
	var matches []essRow
	for _, v := range rows {
		suffix, ok := oidx.TrimPrefix(v.OID, mib.OIDWlanEssSsid)
		if !ok {
			continue
		}
		ssid := v.String()
		if p.SSID != "" && ssid != p.SSID {
			continue
		}
		matches = append(matches, essRow{id: suffix, ssid: ssid})
	}
	if len(matches) == 0 {
		if p.SSID != "" {
			return nil, fmt.Errorf("%w: SSID %q", ErrPeerNotFound, p.SSID)
		}
		return nil, fmt.Errorf("%w: no SSIDs configured", ErrPeerNotFound)
	}

	results := make([]models.CheckResult, 0, len(matches))
	for _, m := range matches {
		adminOID := mib.OIDWlanEssAdminStatus + "." + m.id
		stationsOID := mib.OIDWlanEssStations + "." + m.id
		got, err := poller.Get(ctx, []string{adminOID, stationsOID})
		if err != nil {
			return nil, fmt.Errorf("fetch SSID %q scalars: %w", m.ssid, err)
		}

		admin := got[adminOID]
		if admin.NoSuchInstance {
			return nil, fmt.Errorf("%w: SSID %q", ErrPeerStateUnavailable, m.ssid)
		}
		if admin.Int() != mib.WlanAdminEnable {
			// A disabled SSID is an operator decision, like an
			// administratively stopped session.
			results = append(results, models.CheckResult{
				Severity: models.SeverityWarning,
				Message:  fmt.Sprintf("SSID %q administratively disabled", m.ssid),
			})
			continue
		}

		stations := got[stationsOID]
		if stations.NoSuchInstance {
			results = append(results, models.CheckResult{
				Severity: models.SeverityOK,
				Message:  fmt.Sprintf("SSID %q enabled", m.ssid),
			})
			continue
		}

		count := stations.Uint64()
		status := fmt.Sprintf("SSID %q enabled, %d %s", m.ssid, count, models.CounterClients)
		severity, note := boundSeverity(count, p.Thresholds)
		if note != "" {
			status = fmt.Sprintf("%s (%s)", status, note)
		}
		results = append(results, models.CheckResult{Severity: severity, Message: status})

		logger.Debug("ssid evaluated",
			zap.String("ssid", m.ssid),
			zap.String("essId", m.id),
			zap.Uint64("clients", count),
		)
	}
	return results, nil
}
