package oidx

import (
	"errors"
	"fmt"
	"net"

	"github.com/HerbHall/peerwatch/pkg/models"
)

// ErrInvalidAddress reports input that cannot be parsed as an address of
// the claimed family.
var ErrInvalidAddress = errors.New("invalid address")

// EncodeAddress converts an address literal to its index-suffix octets:
// 4 decimal components for IPv4, 16 for IPv6 (each expanded 2-hex-digit
// group decoded to one octet).
func EncodeAddress(addr string, family models.AddressFamily) ([]int, error) {
	ip := net.ParseIP(addr)
	if ip == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}
	switch family {
	case models.FamilyIPv4:
		v4 := ip.To4()
		if v4 == nil {
			return nil, fmt.Errorf("%w: %q is not IPv4", ErrInvalidAddress, addr)
		}
		return bytesToComponents(v4), nil
	case models.FamilyIPv6:
		if ip.To4() != nil {
			return nil, fmt.Errorf("%w: %q is not IPv6", ErrInvalidAddress, addr)
		}
		return bytesToComponents(ip.To16()), nil
	default:
		return nil, fmt.Errorf("%w: unknown family %d", ErrInvalidAddress, family)
	}
}

// FamilyOf classifies an address literal as IPv4 or IPv6.
func FamilyOf(addr string) (models.AddressFamily, error) {
	ip := net.ParseIP(addr)
	if ip == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}
	if ip.To4() != nil {
		return models.FamilyIPv4, nil
	}
	return models.FamilyIPv6, nil
}

// AddressOf renders index octets back into a net.IP.
func AddressOf(octets []byte) net.IP {
	return net.IP(octets)
}

func bytesToComponents(b []byte) []int {
	out := make([]int, len(b))
	for i, v := range b {
		out[i] = int(v)
	}
	return out
}

func componentsToBytes(c []int) ([]byte, error) {
	out := make([]byte, len(c))
	for i, v := range c {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("component %d out of octet range", v)
		}
		out[i] = byte(v)
	}
	return out, nil
}
