package check

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/HerbHall/peerwatch/internal/mib"
	"github.com/HerbHall/peerwatch/internal/telemetry"
	"github.com/HerbHall/peerwatch/pkg/models"
)

// Assemble merges the primary-table scalars and the correlated counter
// into one immutable session record. Scalar instance OIDs are built by
// concatenating each schema column with the identity's correlation key;
// columns the schema does not expose are skipped.
//
// An absent state instance means the index existed but the device cannot
// answer for it anymore: ErrPeerStateUnavailable, deliberately distinct
// from ErrPeerNotFound.
func Assemble(ctx context.Context, poller telemetry.Poller, schema mib.Schema, identity models.PeerIdentity, counter *models.Counter, logger *zap.Logger) (models.SessionRecord, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	key := identity.CorrelationKey
	stateOID := schema.StateOID + "." + key

	// Schemas that key their error table by the alternate peer index need
	// that index resolved before the error columns can be addressed. An
	// absent index just leaves the error columns unread.
	errorKey := key
	if schema.LastErrorByPeerIndex {
		resolved, ok, err := resolvePeerIndex(ctx, poller, schema, key)
		if err != nil {
			return models.SessionRecord{}, err
		}
		errorKey = ""
		if ok {
			errorKey = resolved
		}
	}

	oids := []string{stateOID}
	add := func(column, suffix string) string {
		if column == "" || suffix == "" {
			return ""
		}
		oid := column + "." + suffix
		oids = append(oids, oid)
		return oid
	}
	adminOID := add(schema.AdminStatusOID, key)
	localASOID := add(schema.LocalASOID, key)
	remoteASOID := add(schema.RemoteASOID, key)
	lastErrorOID := add(schema.LastErrorOID, errorKey)
	errorCodeOID := add(schema.LastErrorCodeOID, errorKey)
	errorSubcodeOID := add(schema.LastErrorSubcodeOID, errorKey)
	if schema.LocalASScalarOID != "" {
		oids = append(oids, schema.LocalASScalarOID)
	}

	got, err := poller.Get(ctx, oids)
	if err != nil {
		return models.SessionRecord{}, fmt.Errorf("fetch peer scalars: %w", err)
	}

	state := got[stateOID]
	if state.NoSuchInstance {
		return models.SessionRecord{}, fmt.Errorf("%w: %s", ErrPeerStateUnavailable, key)
	}

	record := models.SessionRecord{
		Identity: identity,
		State:    models.BGPState(state.Int()),
		Counter:  counter,
	}

	if adminOID != "" {
		if v := got[adminOID]; !v.NoSuchInstance {
			record.AdminStatus = v.Int()
			record.AdminStopped = v.Int() == schema.AdminStoppedValue
		}
	}
	if localASOID != "" {
		if v := got[localASOID]; !v.NoSuchInstance {
			record.LocalAS = uint32(v.Uint64()) //nolint:gosec // G115: AS numbers are 32-bit
		}
	} else if schema.LocalASScalarOID != "" {
		if v := got[schema.LocalASScalarOID]; !v.NoSuchInstance {
			record.LocalAS = uint32(v.Uint64()) //nolint:gosec // G115: AS numbers are 32-bit
		}
	}
	if remoteASOID != "" {
		if v := got[remoteASOID]; !v.NoSuchInstance {
			record.RemoteAS = uint32(v.Uint64()) //nolint:gosec // G115: AS numbers are 32-bit
		}
	}

	switch {
	case lastErrorOID != "":
		// Two-byte octet string: code then subcode.
		if v := got[lastErrorOID]; !v.NoSuchInstance {
			if b := v.Bytes(); len(b) >= 2 {
				record.ErrorCode = int(b[0])
				record.ErrorSubcode = int(b[1])
			}
		}
	case errorCodeOID != "":
		if v := got[errorCodeOID]; !v.NoSuchInstance {
			record.ErrorCode = v.Int()
		}
		if errorSubcodeOID != "" {
			if v := got[errorSubcodeOID]; !v.NoSuchInstance {
				record.ErrorSubcode = v.Int()
			}
		}
	}
	if record.ErrorCode != 0 {
		record.ErrorText = NotificationText(record.ErrorCode, record.ErrorSubcode)
	}

	record.Type = models.DeriveSessionType(record.LocalAS, record.RemoteAS)

	logger.Debug("record assembled",
		zap.String("key", key),
		zap.Stringer("state", record.State),
		zap.Uint32("localAS", record.LocalAS),
		zap.Uint32("remoteAS", record.RemoteAS),
	)
	return record, nil
}
