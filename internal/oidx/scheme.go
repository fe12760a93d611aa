package oidx

import (
	"errors"
	"fmt"

	"github.com/HerbHall/peerwatch/pkg/models"
)

// ErrMalformedIndex reports an index suffix that does not match its scheme:
// too few components for the encoded family, or a family value that is
// neither 1 (IPv4) nor 2 (IPv6).
var ErrMalformedIndex = errors.New("malformed table index")

// IndexScheme describes how a table's OID suffix encodes row identity, as
// an ordered sequence of component groups consumed left to right.
type IndexScheme struct {
	// RoutingInstance consumes one leading component.
	RoutingInstance bool
	// HasFamily consumes one address-family component before each address
	// group. When false the address is a bare 4-octet IPv4 group.
	HasFamily bool
	// LocalAddress consumes a family+address group for the local endpoint
	// before the remote one (the dual-group schemes).
	LocalAddress bool
	// LengthPrefixed consumes an octet-count component between the family
	// and the address octets.
	LengthPrefixed bool
}

// Decode consumes the index suffix per the scheme and returns the decoded
// identity. The suffix string is preserved verbatim as the correlation key.
func (s IndexScheme) Decode(suffix string) (models.PeerIdentity, error) {
	var id models.PeerIdentity
	comps, err := Parse(suffix)
	if err != nil {
		return id, fmt.Errorf("%w: %v", ErrMalformedIndex, err)
	}
	rest := comps

	if s.RoutingInstance {
		if len(rest) < 1 {
			return id, fmt.Errorf("%w: missing routing instance in %q", ErrMalformedIndex, suffix)
		}
		id.RoutingInstance = rest[0]
		rest = rest[1:]
	}

	if s.LocalAddress {
		var local []byte
		var err error
		local, _, rest, err = s.consumeAddress(rest, suffix)
		if err != nil {
			return id, err
		}
		id.LocalAddress = local
	}

	remote, family, rest, err := s.consumeAddress(rest, suffix)
	if err != nil {
		return id, err
	}
	id.RemoteAddress = remote
	id.Family = family
	_ = rest

	id.CorrelationKey = suffix
	return id, nil
}

// consumeAddress takes one family+address group off the front of comps.
func (s IndexScheme) consumeAddress(comps []int, suffix string) ([]byte, models.AddressFamily, []int, error) {
	family := models.FamilyIPv4
	if s.HasFamily {
		if len(comps) < 1 {
			return nil, 0, nil, fmt.Errorf("%w: missing address family in %q", ErrMalformedIndex, suffix)
		}
		switch comps[0] {
		case 1:
			family = models.FamilyIPv4
		case 2:
			family = models.FamilyIPv6
		default:
			return nil, 0, nil, fmt.Errorf("%w: address family %d in %q", ErrMalformedIndex, comps[0], suffix)
		}
		comps = comps[1:]
	}

	n := family.OctetCount()
	if s.LengthPrefixed {
		if len(comps) < 1 {
			return nil, 0, nil, fmt.Errorf("%w: missing length in %q", ErrMalformedIndex, suffix)
		}
		if comps[0] != n {
			return nil, 0, nil, fmt.Errorf("%w: length %d does not match family %s in %q",
				ErrMalformedIndex, comps[0], family, suffix)
		}
		comps = comps[1:]
	}

	if len(comps) < n {
		return nil, 0, nil, fmt.Errorf("%w: %d address components remain, family %s needs %d in %q",
			ErrMalformedIndex, len(comps), family, n, suffix)
	}
	octets, err := componentsToBytes(comps[:n])
	if err != nil {
		return nil, 0, nil, fmt.Errorf("%w: %v in %q", ErrMalformedIndex, err, suffix)
	}
	return octets, family, comps[n:], nil
}
