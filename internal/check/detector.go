package check

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/HerbHall/peerwatch/internal/mib"
	"github.com/HerbHall/peerwatch/internal/telemetry"
)

// Detection is the outcome of schema detection: the selected schema and
// the state-table walk that selected it. The walk is reused by the
// locator, never re-polled.
type Detection struct {
	Schema mib.Schema
	Walk   []telemetry.Value
}

// Detect determines which vendor schema the target answers for. A hint
// short-circuits to that single schema; a hinted schema returning an empty
// table is a hard failure, not a fallback. In auto mode the candidates are
// probed strictly in priority order, one live table walk each, and the
// first non-empty result wins.
func Detect(ctx context.Context, poller telemetry.Poller, hint string, logger *zap.Logger) (Detection, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if hint != "" {
		vendor, err := mib.ParseVendor(hint)
		if err != nil {
			return Detection{}, err
		}
		schema := mib.Schemas[vendor]
		walk, err := poller.TableWalk(ctx, schema.StateOID)
		if err != nil {
			return Detection{}, fmt.Errorf("probe %s schema: %w", vendor, err)
		}
		if len(walk) == 0 {
			return Detection{}, fmt.Errorf("%w: %s", ErrVendorNotSupported, vendor)
		}
		logger.Debug("vendor hinted", zap.String("vendor", string(vendor)), zap.Int("rows", len(walk)))
		return Detection{Schema: schema, Walk: walk}, nil
	}

	for _, vendor := range mib.DetectionOrder {
		schema := mib.Schemas[vendor]
		walk, err := poller.TableWalk(ctx, schema.StateOID)
		if err != nil {
			return Detection{}, fmt.Errorf("probe %s schema: %w", vendor, err)
		}
		if len(walk) > 0 {
			logger.Debug("vendor detected",
				zap.String("vendor", string(vendor)),
				zap.Int("rows", len(walk)),
			)
			return Detection{Schema: schema, Walk: walk}, nil
		}
		logger.Debug("vendor schema empty", zap.String("vendor", string(vendor)))
	}

	return Detection{}, ErrVendorUndetected
}
