package check

import (
	"bytes"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/HerbHall/peerwatch/internal/oidx"
	"github.com/HerbHall/peerwatch/pkg/models"
)

// Locate scans the detection walk for rows whose decoded remote address is
// the target. The scan order is numeric over OID components so that
// multi-instance devices are visited deterministically. Zero matches is
// ErrPeerNotFound; multiple matches fan out as independent check targets.
func Locate(det Detection, target string, logger *zap.Logger) ([]models.PeerIdentity, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	family, err := oidx.FamilyOf(target)
	if err != nil {
		return nil, err
	}
	if family == models.FamilyIPv6 && !det.Schema.SupportsIPv6 {
		return nil, fmt.Errorf("%w: %s schema is IPv4-only", ErrCapability, det.Schema.Vendor)
	}
	wantComps, err := oidx.EncodeAddress(target, family)
	if err != nil {
		return nil, err
	}
	want, err := componentsToOctets(wantComps)
	if err != nil {
		return nil, err
	}

	rows := make([]string, 0, len(det.Walk))
	for _, v := range det.Walk {
		rows = append(rows, v.OID)
	}
	sort.Slice(rows, func(i, j int) bool {
		return oidx.Compare(rows[i], rows[j]) < 0
	})

	var identities []models.PeerIdentity
	for _, oid := range rows {
		suffix, ok := oidx.TrimPrefix(oid, det.Schema.StateOID)
		if !ok {
			continue
		}
		identity, err := det.Schema.Index.Decode(suffix)
		if err != nil {
			// A row this schema cannot decode is a schema mismatch for
			// that row, not for the device; skip it but say so.
			logger.Debug("undecodable index", zap.String("suffix", suffix), zap.Error(err))
			continue
		}
		if identity.Family != family || !bytes.Equal(identity.RemoteAddress, want) {
			continue
		}
		identities = append(identities, identity)
	}

	if len(identities) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPeerNotFound, target)
	}

	logger.Debug("peer located",
		zap.String("target", target),
		zap.Int("matches", len(identities)),
	)
	return identities, nil
}

func componentsToOctets(comps []int) ([]byte, error) {
	out := make([]byte, len(comps))
	for i, c := range comps {
		if c < 0 || c > 255 {
			return nil, fmt.Errorf("component %d out of octet range", c)
		}
		out[i] = byte(c)
	}
	return out, nil
}
