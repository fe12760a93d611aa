package models

import "fmt"

// AddressFamily is the IANA address family encoded in table indices.
type AddressFamily int

const (
	FamilyIPv4 AddressFamily = 1
	FamilyIPv6 AddressFamily = 2
)

// OctetCount returns the number of index components an address of this
// family occupies in an OID suffix.
func (f AddressFamily) OctetCount() int {
	if f == FamilyIPv6 {
		return 16
	}
	return 4
}

func (f AddressFamily) String() string {
	switch f {
	case FamilyIPv4:
		return "ipv4"
	case FamilyIPv6:
		return "ipv6"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// BGPState is the session FSM state from the peer state column (RFC 4271).
type BGPState int

const (
	StateIdle        BGPState = 1
	StateConnect     BGPState = 2
	StateActive      BGPState = 3
	StateOpenSent    BGPState = 4
	StateOpenConfirm BGPState = 5
	StateEstablished BGPState = 6
)

func (s BGPState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnect:
		return "connect"
	case StateActive:
		return "active"
	case StateOpenSent:
		return "opensent"
	case StateOpenConfirm:
		return "openconfirm"
	case StateEstablished:
		return "established"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ParseBGPState maps a state name or numeric string to a BGPState.
func ParseBGPState(s string) (BGPState, bool) {
	switch s {
	case "1", "idle":
		return StateIdle, true
	case "2", "connect":
		return StateConnect, true
	case "3", "active":
		return StateActive, true
	case "4", "opensent":
		return StateOpenSent, true
	case "5", "openconfirm":
		return StateOpenConfirm, true
	case "6", "established":
		return StateEstablished, true
	default:
		return 0, false
	}
}

// SessionType distinguishes internal from external BGP sessions.
type SessionType string

const (
	SessionIBGP SessionType = "iBGP"
	SessionEBGP SessionType = "eBGP"
)

// PeerIdentity is the decoded identity of one table row. CorrelationKey is
// the exact OID suffix that produced the identity; secondary tables are
// re-addressed with it verbatim, never with a re-derived suffix.
type PeerIdentity struct {
	RoutingInstance int
	Family          AddressFamily
	LocalAddress    []byte
	RemoteAddress   []byte
	CorrelationKey  string
}

// CounterKind names what a correlated counter value counts.
type CounterKind string

const (
	CounterPrefixes CounterKind = "prefixes"
	CounterClients  CounterKind = "clients"
)

// Counter is a correlated secondary-table value. SubFamily holds the
// trailing SAFI index component when the counter table encodes one; it is
// diagnostic only and never feeds severity logic.
type Counter struct {
	Kind      CounterKind
	Value     uint64
	SubFamily int
}

// SessionRecord is the normalized per-peer state assembled from the
// primary table scalars and the correlated counter. Records are built once
// and never mutated afterwards.
type SessionRecord struct {
	Identity     PeerIdentity
	State        BGPState
	AdminStatus  int
	AdminStopped bool
	LocalAS      uint32
	RemoteAS     uint32
	ErrorCode    int
	ErrorSubcode int
	ErrorText    string
	Counter      *Counter
	Type         SessionType
}

// DeriveSessionType computes the session type from the AS pair. It is
// never polled from the device.
func DeriveSessionType(localAS, remoteAS uint32) SessionType {
	if localAS == remoteAS {
		return SessionIBGP
	}
	return SessionEBGP
}
