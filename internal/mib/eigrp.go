package mib

// CISCO-EIGRP-MIB (1.3.6.1.4.1.9.9.449). The VPN table maps VPN ids to
// names; the peer table is indexed by vpnId.asn.handle.
const (
	OIDEigrpVpnName      = "1.3.6.1.4.1.9.9.449.1.1.1.1.2" // cEigrpVpnName
	OIDEigrpPeerAddrType = "1.3.6.1.4.1.9.9.449.1.4.1.1.3" // cEigrpPeerAddrType
	OIDEigrpPeerAddr     = "1.3.6.1.4.1.9.9.449.1.4.1.1.4" // cEigrpPeerAddr
	OIDEigrpPeerIfIndex  = "1.3.6.1.4.1.9.9.449.1.4.1.1.5" // cEigrpPeerIfIndex
	OIDEigrpPeerUpTime   = "1.3.6.1.4.1.9.9.449.1.4.1.1.6" // cEigrpUpTime
)
