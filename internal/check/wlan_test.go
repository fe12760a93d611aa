package check

import (
	"context"
	"errors"
	"testing"

	"github.com/HerbHall/peerwatch/internal/mib"
	"github.com/HerbHall/peerwatch/pkg/models"
)

// wlcDevice fakes a controller with an enabled guest SSID, a disabled
// maintenance SSID, and a corporate SSID carrying clients.
func wlcDevice() *fakePoller {
	f := newFakePoller()
	f.addRow(mib.OIDWlanEssSsid, "1", []byte("corp"))
	f.addRow(mib.OIDWlanEssSsid, "2", []byte("guest"))
	f.addRow(mib.OIDWlanEssSsid, "3", []byte("maint"))

	f.addScalar(mib.OIDWlanEssAdminStatus+".1", mib.WlanAdminEnable)
	f.addScalar(mib.OIDWlanEssStations+".1", uint64(240))
	f.addScalar(mib.OIDWlanEssAdminStatus+".2", mib.WlanAdminEnable)
	f.addScalar(mib.OIDWlanEssStations+".2", uint64(3))
	f.addScalar(mib.OIDWlanEssAdminStatus+".3", mib.WlanAdminDisable)
	return f
}

func TestWlanSingleSSID(t *testing.T) {
	results, err := RunWlan(context.Background(), wlcDevice(), WlanParams{SSID: "corp"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Severity != models.SeverityOK {
		t.Errorf("severity = %v: %s", results[0].Severity, results[0].Message)
	}
}

func TestWlanEnumerateAll(t *testing.T) {
	results, err := RunWlan(context.Background(), wlcDevice(), WlanParams{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	overall := Aggregate(results)
	// The disabled maintenance SSID pulls the aggregate to WARNING.
	if overall.Severity != models.SeverityWarning {
		t.Errorf("severity = %v: %s", overall.Severity, overall.Message)
	}
}

func TestWlanMissingSSID(t *testing.T) {
	_, err := RunWlan(context.Background(), wlcDevice(), WlanParams{SSID: "nonexistent"}, nil)
	if !errors.Is(err, ErrPeerNotFound) {
		t.Fatalf("err = %v, want ErrPeerNotFound", err)
	}
}

func TestWlanClientHighBound(t *testing.T) {
	results, err := RunWlan(context.Background(), wlcDevice(), WlanParams{
		SSID: "corp",
		Thresholds: models.ThresholdConfig{
			Mode:     models.ModeHighBound,
			Warning:  uintPtr(200),
			Critical: uintPtr(300),
		},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Severity != models.SeverityWarning {
		t.Errorf("severity = %v: %s", results[0].Severity, results[0].Message)
	}
}

func TestWlanDisabledSSIDIsWarning(t *testing.T) {
	results, err := RunWlan(context.Background(), wlcDevice(), WlanParams{SSID: "maint"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Severity != models.SeverityWarning {
		t.Errorf("severity = %v: %s", results[0].Severity, results[0].Message)
	}
}
