package check

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/HerbHall/peerwatch/internal/mib"
	"github.com/HerbHall/peerwatch/internal/oidx"
	"github.com/HerbHall/peerwatch/internal/telemetry"
	"github.com/HerbHall/peerwatch/pkg/models"
)

// Correlate polls the schema's counter subtree for one identity and
// resolves exactly one counter value.
//
// An empty subtree means the counter is absent, which is not an error.
// More than one row is ErrAmbiguousCounterTable: an AFI/SAFI combination
// the engine does not know how to disambiguate safely, so it refuses to
// guess. When the schema decouples counter numbering from the state-table
// index (PeerIndexOID set), the alternate index is looked up first and the
// subtree is re-addressed under it.
func Correlate(ctx context.Context, poller telemetry.Poller, schema mib.Schema, identity models.PeerIdentity, logger *zap.Logger) (*models.Counter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !schema.SupportsCounters || schema.CounterOID == "" {
		return nil, nil
	}

	key := identity.CorrelationKey
	if schema.PeerIndexOID != "" {
		resolved, ok, err := resolvePeerIndex(ctx, poller, schema, key)
		if err != nil {
			return nil, err
		}
		if !ok {
			logger.Debug("no counter index for peer", zap.String("key", key))
			return nil, nil
		}
		key = resolved
	}

	root := schema.CounterOID + "." + key
	if !schema.CounterHasSubIndex {
		// The counter is a leaf instance on the row itself; a walk under a
		// leaf yields no bindings, so it has to be fetched directly.
		got, err := poller.Get(ctx, []string{root})
		if err != nil {
			return nil, fmt.Errorf("fetch counter: %w", err)
		}
		v := got[root]
		if v.NoSuchInstance {
			return nil, nil
		}
		counter := &models.Counter{Kind: schema.CounterKind, Value: v.Uint64()}
		logger.Debug("counter correlated",
			zap.String("key", identity.CorrelationKey),
			zap.Uint64("value", counter.Value),
		)
		return counter, nil
	}

	rows, err := poller.TableWalk(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("walk counter table: %w", err)
	}

	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
	default:
		return nil, fmt.Errorf("%w: %d rows under %s", ErrAmbiguousCounterTable, len(rows), root)
	}

	counter := &models.Counter{
		Kind:  schema.CounterKind,
		Value: rows[0].Uint64(),
	}
	// A trailing index component is the sub-address-family when the table
	// encodes one. Diagnostic only; it never feeds severity logic.
	if suffix, ok := oidx.TrimPrefix(rows[0].OID, root); ok {
		if comps, err := oidx.Parse(suffix); err == nil && len(comps) > 0 {
			counter.SubFamily = comps[len(comps)-1]
		}
	}

	logger.Debug("counter correlated",
		zap.String("key", identity.CorrelationKey),
		zap.Uint64("value", counter.Value),
		zap.Int("subFamily", counter.SubFamily),
	)
	return counter, nil
}

// resolvePeerIndex fetches the alternate row index the schema's secondary
// tables are keyed by. The second return is false when the column holds no
// instance for this peer.
func resolvePeerIndex(ctx context.Context, poller telemetry.Poller, schema mib.Schema, key string) (string, bool, error) {
	indexOID := schema.PeerIndexOID + "." + key
	got, err := poller.Get(ctx, []string{indexOID})
	if err != nil {
		return "", false, fmt.Errorf("resolve peer index: %w", err)
	}
	v := got[indexOID]
	if v.NoSuchInstance {
		return "", false, nil
	}
	return strconv.Itoa(v.Int()), true, nil
}
