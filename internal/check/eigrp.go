package check

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/HerbHall/peerwatch/internal/mib"
	"github.com/HerbHall/peerwatch/internal/oidx"
	"github.com/HerbHall/peerwatch/internal/telemetry"
	"github.com/HerbHall/peerwatch/pkg/models"
)

// EigrpParams configures one EIGRP neighbor check. The check enumerates
// by VPN name when VPNName is set (deliberately matching multiple rows),
// otherwise by autonomous system. PeerAddress, when set, requires that
// one specific neighbor to be present.
type EigrpParams struct {
	ASN         int
	VPNName     string
	PeerAddress string
	Thresholds  models.ThresholdConfig
}

// eigrpNeighbor is one row of the peer table, identified by its
// vpnId.asn.handle index with the address taken from the address column.
type eigrpNeighbor struct {
	VpnID   int
	ASN     int
	Handle  int
	Address []byte
}

// RunEigrp checks EIGRP neighbor presence and counts against thresholds.
func RunEigrp(ctx context.Context, poller telemetry.Poller, p EigrpParams, logger *zap.Logger) ([]models.CheckResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	vpns, err := eigrpVpns(ctx, poller)
	if err != nil {
		return nil, err
	}

	wantVpns := make(map[int]string)
	if p.VPNName != "" {
		for id, name := range vpns {
			if name == p.VPNName {
				wantVpns[id] = name
			}
		}
		if len(wantVpns) == 0 {
			return nil, fmt.Errorf("%w: EIGRP VPN %q", ErrPeerNotFound, p.VPNName)
		}
	} else {
		wantVpns = vpns
	}

	neighbors, err := eigrpNeighbors(ctx, poller, logger)
	if err != nil {
		return nil, err
	}

	var wantAddr []byte
	if p.PeerAddress != "" {
		family, err := oidx.FamilyOf(p.PeerAddress)
		if err != nil {
			return nil, err
		}
		comps, err := oidx.EncodeAddress(p.PeerAddress, family)
		if err != nil {
			return nil, err
		}
		if wantAddr, err = componentsToOctets(comps); err != nil {
			return nil, err
		}
	}

	// Group surviving neighbors per (vpn, asn) and evaluate each group.
	type groupKey struct{ vpn, asn int }
	groups := make(map[groupKey][]eigrpNeighbor)
	for _, n := range neighbors {
		if _, ok := wantVpns[n.VpnID]; !ok {
			continue
		}
		if p.ASN != 0 && n.ASN != p.ASN {
			continue
		}
		if wantAddr != nil && !bytes.Equal(n.Address, wantAddr) {
			continue
		}
		k := groupKey{n.VpnID, n.ASN}
		groups[k] = append(groups[k], n)
	}

	if len(groups) == 0 {
		if p.PeerAddress != "" {
			return nil, fmt.Errorf("%w: EIGRP neighbor %s", ErrPeerNotFound, p.PeerAddress)
		}
		return nil, fmt.Errorf("%w: no EIGRP neighbors", ErrPeerNotFound)
	}

	keys := make([]groupKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].vpn != keys[j].vpn {
			return keys[i].vpn < keys[j].vpn
		}
		return keys[i].asn < keys[j].asn
	})

	results := make([]models.CheckResult, 0, len(keys))
	for _, k := range keys {
		count := uint64(len(groups[k]))
		status := fmt.Sprintf("AS%d vpn %q: %d neighbors", k.asn, vpns[k.vpn], count)
		severity, note := boundSeverity(count, p.Thresholds)
		if note != "" {
			status = fmt.Sprintf("%s (%s)", status, note)
		}
		results = append(results, models.CheckResult{Severity: severity, Message: status})
	}
	return results, nil
}

// eigrpVpns walks the VPN name column into an id-to-name map.
func eigrpVpns(ctx context.Context, poller telemetry.Poller) (map[int]string, error) {
	rows, err := poller.TableWalk(ctx, mib.OIDEigrpVpnName)
	if err != nil {
		return nil, fmt.Errorf("walk EIGRP vpn table: %w", err)
	}
	out := make(map[int]string, len(rows))
	for _, v := range rows {
		suffix, ok := oidx.TrimPrefix(v.OID, mib.OIDEigrpVpnName)
		if !ok {
			continue
		}
		id, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		out[id] = v.String()
	}
	return out, nil
}

// eigrpNeighbors walks the peer address column, decoding each row's
// vpnId.asn.handle index in numeric order.
func eigrpNeighbors(ctx context.Context, poller telemetry.Poller, logger *zap.Logger) ([]eigrpNeighbor, error) {
	rows, err := poller.TableWalk(ctx, mib.OIDEigrpPeerAddr)
	if err != nil {
		return nil, fmt.Errorf("walk EIGRP peer table: %w", err)
	}
	sort.Slice(rows, func(i, j int) bool {
		return oidx.Compare(rows[i].OID, rows[j].OID) < 0
	})

	out := make([]eigrpNeighbor, 0, len(rows))
	for _, v := range rows {
		suffix, ok := oidx.TrimPrefix(v.OID, mib.OIDEigrpPeerAddr)
		if !ok {
			continue
		}
		comps, err := oidx.Parse(suffix)
		if err != nil || len(comps) != 3 {
			logger.Debug("undecodable EIGRP index", zap.String("suffix", suffix))
			continue
		}
		out = append(out, eigrpNeighbor{
			VpnID:   comps[0],
			ASN:     comps[1],
			Handle:  comps[2],
			Address: v.Bytes(),
		})
	}
	return out, nil
}
