package mib

// AIRESPACE-WLAN-MIB bsnDot11EssTable (1.3.6.1.4.1.14179.2.1.1.1), indexed
// by a single ESS row id. Client counts come from the mobile-station
// column of the same table.
const (
	OIDWlanEssSsid        = "1.3.6.1.4.1.14179.2.1.1.1.2"  // bsnDot11EssSsid
	OIDWlanEssAdminStatus = "1.3.6.1.4.1.14179.2.1.1.1.6"  // bsnDot11EssAdminStatus
	OIDWlanEssStations    = "1.3.6.1.4.1.14179.2.1.1.1.38" // bsnDot11EssNumberOfMobileStations
)

// bsnDot11EssAdminStatus values.
const (
	WlanAdminDisable = 0
	WlanAdminEnable  = 1
)
