// Package mib holds the static vendor schema catalogs: which OID trees a
// given vendor answers on, how its table indices encode identity, and what
// the schema is capable of expressing.
package mib

import (
	"fmt"
	"strings"
)

// Vendor identifies one telemetry schema.
type Vendor string

const (
	VendorCisco   Vendor = "cisco"
	VendorJuniper Vendor = "juniper"
	VendorBrocade Vendor = "brocade"
	VendorArista  Vendor = "arista"
	VendorGeneric Vendor = "generic"
)

// DetectionOrder is the fixed priority in which candidate schemas are
// probed during auto-detection.
var DetectionOrder = []Vendor{
	VendorCisco,
	VendorJuniper,
	VendorBrocade,
	VendorArista,
	VendorGeneric,
}

// ParseVendor maps a user-supplied hint to a Vendor.
func ParseVendor(s string) (Vendor, error) {
	switch Vendor(strings.ToLower(s)) {
	case VendorCisco:
		return VendorCisco, nil
	case VendorJuniper:
		return VendorJuniper, nil
	case VendorBrocade:
		return VendorBrocade, nil
	case VendorArista:
		return VendorArista, nil
	case VendorGeneric:
		return VendorGeneric, nil
	default:
		return "", fmt.Errorf("unknown vendor %q (want cisco, juniper, brocade, arista or generic)", s)
	}
}
