package oidx

import (
	"errors"
	"reflect"
	"testing"

	"github.com/HerbHall/peerwatch/pkg/models"
)

func TestEncodeAddressIPv4(t *testing.T) {
	got, err := EncodeAddress("192.168.1.10", models.FamilyIPv4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{192, 168, 1, 10}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EncodeAddress = %v, want %v", got, want)
	}
}

func TestEncodeAddressIPv6(t *testing.T) {
	// The expanded literal fd09:b422:3185::abbd hex-decodes group by
	// group into exactly these 16 decimal octets.
	got, err := EncodeAddress("fd09:b422:3185::abbd", models.FamilyIPv6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{253, 9, 180, 34, 49, 133, 0, 0, 0, 0, 0, 0, 0, 0, 171, 189}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EncodeAddress = %v, want %v", got, want)
	}
}

func TestEncodeAddressFamilyMismatch(t *testing.T) {
	if _, err := EncodeAddress("192.168.1.10", models.FamilyIPv6); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("v4 as v6: err = %v, want ErrInvalidAddress", err)
	}
	if _, err := EncodeAddress("fd09::1", models.FamilyIPv4); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("v6 as v4: err = %v, want ErrInvalidAddress", err)
	}
	if _, err := EncodeAddress("not-an-address", models.FamilyIPv4); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("garbage: err = %v, want ErrInvalidAddress", err)
	}
}

func TestFamilyOf(t *testing.T) {
	if f, err := FamilyOf("10.0.0.1"); err != nil || f != models.FamilyIPv4 {
		t.Errorf("FamilyOf(v4) = %v, %v", f, err)
	}
	if f, err := FamilyOf("fd09::1"); err != nil || f != models.FamilyIPv6 {
		t.Errorf("FamilyOf(v6) = %v, %v", f, err)
	}
	if _, err := FamilyOf("nope"); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("FamilyOf(garbage): err = %v, want ErrInvalidAddress", err)
	}
}

// Round trip: decoding a suffix built from an encoded address recovers the
// address octets and family exactly.
func TestRoundTrip(t *testing.T) {
	scheme := IndexScheme{HasFamily: true}
	addrs := []struct {
		literal string
		family  models.AddressFamily
	}{
		{"10.0.0.1", models.FamilyIPv4},
		{"255.255.255.255", models.FamilyIPv4},
		{"fd09:b422:3185::abbd", models.FamilyIPv6},
		{"2001:db8::1", models.FamilyIPv6},
		{"::1", models.FamilyIPv6},
	}
	for _, a := range addrs {
		t.Run(a.literal, func(t *testing.T) {
			comps, err := EncodeAddress(a.literal, a.family)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			suffix := Format(append([]int{int(a.family)}, comps...))
			id, err := scheme.Decode(suffix)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if id.Family != a.family {
				t.Errorf("family = %v, want %v", id.Family, a.family)
			}
			if AddressOf(id.RemoteAddress).String() != a.literal {
				t.Errorf("address = %s, want %s", AddressOf(id.RemoteAddress), a.literal)
			}
			if id.CorrelationKey != suffix {
				t.Errorf("correlation key %q not identical to suffix %q", id.CorrelationKey, suffix)
			}
		})
	}
}
