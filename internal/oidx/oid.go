// Package oidx implements OID component parsing and the index codecs used
// to decode table-row suffixes into peer identities.
package oidx

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse splits a dotted OID into its integer components. A leading dot is
// accepted and ignored.
func Parse(oid string) ([]int, error) {
	s := strings.TrimPrefix(oid, ".")
	if s == "" {
		return nil, fmt.Errorf("empty OID")
	}
	parts := strings.Split(s, ".")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad OID component %q in %q", p, oid)
		}
		out[i] = n
	}
	return out, nil
}

// Format joins integer components into a dotted OID without a leading dot.
func Format(components []int) string {
	parts := make([]string, len(components))
	for i, c := range components {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ".")
}

// TrimPrefix strips a known table OID prefix from a full instance OID and
// returns the remaining index suffix verbatim. Both sides may carry or omit
// a leading dot. The second return is false when oid is not under prefix.
func TrimPrefix(oid, prefix string) (string, bool) {
	o := strings.TrimPrefix(oid, ".")
	p := strings.TrimPrefix(prefix, ".")
	if !strings.HasPrefix(o, p+".") {
		return "", false
	}
	return o[len(p)+1:], true
}

// Compare orders two OIDs numerically component by component, the way the
// management tree itself is ordered. String comparison would put "10"
// before "2"; this does not.
func Compare(a, b string) int {
	ac, errA := Parse(a)
	bc, errB := Parse(b)
	if errA != nil || errB != nil {
		// Fall back to string order for unparseable input.
		return strings.Compare(a, b)
	}
	for i := 0; i < len(ac) && i < len(bc); i++ {
		if ac[i] != bc[i] {
			if ac[i] < bc[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(ac) < len(bc):
		return -1
	case len(ac) > len(bc):
		return 1
	default:
		return 0
	}
}
