package telemetry

import (
	"fmt"
	"strings"

	"github.com/gosnmp/gosnmp"
)

// Value is one polled variable binding. NoSuchInstance marks the agent's
// explicit "this instance does not exist" answer, which callers must
// distinguish from a zero value.
type Value struct {
	OID            string
	NoSuchInstance bool
	Raw            any
}

// Int extracts an integer value, tolerating the width variations SNMP
// agents actually return.
func (v Value) Int() int {
	switch n := v.Raw.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint:
		return int(n) //nolint:gosec // G115: SNMP integer columns fit in int
	case uint32:
		return int(n)
	case uint64:
		return int(n) //nolint:gosec // G115: SNMP integer columns fit in int
	default:
		return 0
	}
}

// Uint64 extracts an unsigned counter value.
func (v Value) Uint64() uint64 {
	switch n := v.Raw.(type) {
	case uint64:
		return n
	case uint32:
		return uint64(n)
	case uint:
		return uint64(n)
	case int:
		if n >= 0 {
			return uint64(n)
		}
		return 0
	case int64:
		if n >= 0 {
			return uint64(n)
		}
		return 0
	default:
		return 0
	}
}

// String extracts a display string from octet-string or string values.
func (v Value) String() string {
	switch s := v.Raw.(type) {
	case []byte:
		return string(s)
	case string:
		return s
	default:
		if s == nil {
			return ""
		}
		return fmt.Sprintf("%v", s)
	}
}

// Bytes extracts raw octets; nil when the value is not an octet string.
func (v Value) Bytes() []byte {
	if b, ok := v.Raw.([]byte); ok {
		return b
	}
	return nil
}

// fromPDU converts a gosnmp variable binding; OID names are normalized to
// no leading dot so they compare cleanly against catalog OIDs.
func fromPDU(pdu gosnmp.SnmpPDU) Value {
	return Value{
		OID:            strings.TrimPrefix(pdu.Name, "."),
		NoSuchInstance: pdu.Type == gosnmp.NoSuchInstance || pdu.Type == gosnmp.NoSuchObject,
		Raw:            pdu.Value,
	}
}
