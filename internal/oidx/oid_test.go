package oidx

import (
	"testing"
)

func TestParseFormat(t *testing.T) {
	comps, err := Parse(".1.3.6.1.2.1.15.3.1.2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Format(comps); got != "1.3.6.1.2.1.15.3.1.2" {
		t.Errorf("Format = %q", got)
	}

	for _, bad := range []string{"", ".", "1..2", "1.a.2", "1.-1.2"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", bad)
		}
	}
}

func TestTrimPrefix(t *testing.T) {
	tests := []struct {
		oid, prefix string
		want        string
		ok          bool
	}{
		{".1.3.6.1.2.1.15.3.1.2.10.0.0.1", "1.3.6.1.2.1.15.3.1.2", "10.0.0.1", true},
		{"1.3.6.1.2.1.15.3.1.2.10.0.0.1", ".1.3.6.1.2.1.15.3.1.2", "10.0.0.1", true},
		{"1.3.6.1.2.1.15.3.1.3.10.0.0.1", "1.3.6.1.2.1.15.3.1.2", "", false},
		{"1.3.6.1.2.1.15.3.1.2", "1.3.6.1.2.1.15.3.1.2", "", false},
	}
	for _, tt := range tests {
		got, ok := TrimPrefix(tt.oid, tt.prefix)
		if got != tt.want || ok != tt.ok {
			t.Errorf("TrimPrefix(%q, %q) = (%q, %v), want (%q, %v)",
				tt.oid, tt.prefix, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCompareNumericAware(t *testing.T) {
	// String comparison would order "10" before "2"; numeric must not.
	if Compare("1.3.6.2", "1.3.6.10") >= 0 {
		t.Error("2 should sort before 10")
	}
	if Compare("1.3.6.10", "1.3.6.2") <= 0 {
		t.Error("10 should sort after 2")
	}
	if Compare("1.3.6", "1.3.6.1") >= 0 {
		t.Error("shorter prefix should sort first")
	}
	if Compare("1.3.6.1", "1.3.6.1") != 0 {
		t.Error("equal OIDs should compare equal")
	}
	if Compare(".1.3.6.1", "1.3.6.1") != 0 {
		t.Error("leading dot should not affect comparison")
	}
}
