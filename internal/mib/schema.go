package mib

import (
	"github.com/HerbHall/peerwatch/internal/oidx"
	"github.com/HerbHall/peerwatch/pkg/models"
)

// Schema describes one vendor's BGP telemetry surface: the state table the
// vendor answers on, the scalar columns hanging off it, the optional
// counter table, and how the table index encodes peer identity.
//
// Columns a vendor does not expose are empty strings; the assembler skips
// them and the record carries zero values. Capability flags record genuine
// MIB limitations, they are not behavioral switches.
type Schema struct {
	Vendor Vendor

	// StateOID is the primary state column. Detection walks it; the walk
	// result is reused by the locator.
	StateOID string

	// AdminStatusOID is the administrative status column, with
	// AdminStoppedValue the value meaning "administratively stopped".
	AdminStatusOID    string
	AdminStoppedValue int

	// LocalASOID is the per-row local AS column. LocalASScalarOID is used
	// instead by schemas that only expose a device-wide scalar.
	LocalASOID       string
	LocalASScalarOID string

	RemoteASOID string

	// LastErrorOID is a two-octet code+subcode column. Schemas that split
	// the pair across columns set the Code/Subcode pair instead.
	// LastErrorByPeerIndex marks schemas whose error table is keyed by the
	// PeerIndexOID value rather than the primary index.
	LastErrorOID         string
	LastErrorCodeOID     string
	LastErrorSubcodeOID  string
	LastErrorByPeerIndex bool

	// CounterOID roots the secondary counter table. Empty when the schema
	// exposes no counters. CounterHasSubIndex means counter rows carry
	// trailing AFI/SAFI components below the row key and are reached by
	// walking; when false the counter is a single leaf instance and only a
	// direct fetch can reach it. PeerIndexOID, when set, is the column
	// holding the alternate row index the secondary tables are keyed by
	// instead of the correlation key itself.
	CounterOID         string
	CounterKind        models.CounterKind
	CounterHasSubIndex bool
	PeerIndexOID       string

	Index oidx.IndexScheme

	SupportsIPv6     bool
	SupportsCounters bool
}

// Schemas is the static per-vendor catalog, keyed by vendor identifier.
var Schemas = map[Vendor]Schema{
	VendorCisco:   ciscoSchema,
	VendorJuniper: juniperSchema,
	VendorBrocade: brocadeSchema,
	VendorArista:  aristaSchema,
	VendorGeneric: genericSchema,
}

// CISCO-BGP4-MIB cbgpPeer2Table. Indexed by cbgpPeer2Type (1=ipv4,
// 2=ipv6) followed by the remote address octets.
var ciscoSchema = Schema{
	Vendor:             VendorCisco,
	StateOID:           "1.3.6.1.4.1.9.9.187.1.2.5.1.3",  // cbgpPeer2State
	AdminStatusOID:     "1.3.6.1.4.1.9.9.187.1.2.5.1.4",  // cbgpPeer2AdminStatus
	AdminStoppedValue:  1,                                // stop(1)/start(2)
	LocalASOID:         "1.3.6.1.4.1.9.9.187.1.2.5.1.8",  // cbgpPeer2LocalAs
	RemoteASOID:        "1.3.6.1.4.1.9.9.187.1.2.5.1.11", // cbgpPeer2RemoteAs
	LastErrorOID:       "1.3.6.1.4.1.9.9.187.1.2.5.1.17", // cbgpPeer2LastError
	CounterOID:         "1.3.6.1.4.1.9.9.187.1.2.8.1.1",  // cbgpPeer2AcceptedPrefixes
	CounterKind:        models.CounterPrefixes,
	CounterHasSubIndex: true,
	Index:              oidx.IndexScheme{HasFamily: true},
	SupportsIPv6:       true,
	SupportsCounters:   true,
}

// BGP4-V2-MIB-JUNIPER jnxBgpM2PeerTable. Indexed by routing instance, then
// local address-type + address, then remote address-type + address. Both
// the prefix counter table and the errors table are keyed by
// jnxBgpM2PeerIndex instead, so that column is resolved first before
// either is addressed.
var juniperSchema = Schema{
	Vendor:               VendorJuniper,
	StateOID:             "1.3.6.1.4.1.2636.5.1.1.2.1.1.1.2",  // jnxBgpM2PeerState
	AdminStatusOID:       "1.3.6.1.4.1.2636.5.1.1.2.1.1.1.3",  // jnxBgpM2PeerStatus
	AdminStoppedValue:    1,                                   // halted(1)/running(2)
	LocalASOID:           "1.3.6.1.4.1.2636.5.1.1.2.1.1.1.9",  // jnxBgpM2PeerLocalAs
	RemoteASOID:          "1.3.6.1.4.1.2636.5.1.1.2.1.1.1.13", // jnxBgpM2PeerRemoteAs
	LastErrorOID:         "1.3.6.1.4.1.2636.5.1.1.2.2.1.1.1",  // jnxBgpM2PeerLastErrorReceived
	LastErrorByPeerIndex: true,
	CounterOID:           "1.3.6.1.4.1.2636.5.1.1.2.6.2.1.8", // jnxBgpM2PrefixInPrefixesAccepted
	CounterKind:          models.CounterPrefixes,
	CounterHasSubIndex:   true,
	PeerIndexOID:         "1.3.6.1.4.1.2636.5.1.1.2.1.1.1.14", // jnxBgpM2PeerIndex
	Index: oidx.IndexScheme{
		RoutingInstance: true,
		HasFamily:       true,
		LocalAddress:    true,
	},
	SupportsIPv6:     true,
	SupportsCounters: true,
}

// FOUNDRY-SN-BGP4-MIB neighbor summary table, indexed by the remote
// address octets. The schema exposes neither an admin status nor a last
// error; the received-routes column doubles as the counter, a single leaf
// instance under the same index with no trailing AFI/SAFI components.
var brocadeSchema = Schema{
	Vendor:           VendorBrocade,
	StateOID:         "1.3.6.1.4.1.1991.1.2.11.17.1.1.3", // snBgp4NeighborSummaryState
	LocalASScalarOID: "1.3.6.1.4.1.1991.1.2.11.1.13.0",   // snBgp4GenLocalAs
	CounterOID:       "1.3.6.1.4.1.1991.1.2.11.17.1.1.5", // snBgp4NeighborSummaryRouteReceived
	CounterKind:      models.CounterPrefixes,
	Index:            oidx.IndexScheme{},
	SupportsIPv6:     false,
	SupportsCounters: true,
}

// ARISTA-BGP4V2-MIB peer table. Indexed by instance, address-type, address
// length, then the address octets.
var aristaSchema = Schema{
	Vendor:              VendorArista,
	StateOID:            "1.3.6.1.4.1.30065.4.1.1.2.1.13", // aristaBgp4V2PeerState
	AdminStatusOID:      "1.3.6.1.4.1.30065.4.1.1.2.1.12", // aristaBgp4V2PeerAdminStatus
	AdminStoppedValue:   1,                                // halted(1)/running(2)
	LocalASOID:          "1.3.6.1.4.1.30065.4.1.1.2.1.10", // aristaBgp4V2PeerLocalAs
	RemoteASOID:         "1.3.6.1.4.1.30065.4.1.1.2.1.11", // aristaBgp4V2PeerRemoteAs
	LastErrorCodeOID:    "1.3.6.1.4.1.30065.4.1.1.3.1.1",  // aristaBgp4V2PeerLastErrorCodeReceived
	LastErrorSubcodeOID: "1.3.6.1.4.1.30065.4.1.1.3.1.2",  // aristaBgp4V2PeerLastErrorSubCodeReceived
	CounterOID:          "1.3.6.1.4.1.30065.4.1.1.8.1.3",  // aristaBgp4V2PrefixInPrefixesAccepted
	CounterKind:         models.CounterPrefixes,
	CounterHasSubIndex:  true,
	Index: oidx.IndexScheme{
		RoutingInstance: true,
		HasFamily:       true,
		LengthPrefixed:  true,
	},
	SupportsIPv6:     true,
	SupportsCounters: true,
}

// BGP4-MIB (RFC 4273). IPv4-only four-octet index, no counter table; the
// local AS is a device-wide scalar. These are limits of the MIB itself.
var genericSchema = Schema{
	Vendor:            VendorGeneric,
	StateOID:          "1.3.6.1.2.1.15.3.1.2",  // bgpPeerState
	AdminStatusOID:    "1.3.6.1.2.1.15.3.1.3",  // bgpPeerAdminStatus
	AdminStoppedValue: 1,                       // stop(1)/start(2)
	LocalASScalarOID:  "1.3.6.1.2.1.15.2.0",    // bgpLocalAs
	RemoteASOID:       "1.3.6.1.2.1.15.3.1.9",  // bgpPeerRemoteAs
	LastErrorOID:      "1.3.6.1.2.1.15.3.1.14", // bgpPeerLastError
	Index:             oidx.IndexScheme{},
	SupportsIPv6:      false,
	SupportsCounters:  false,
}
