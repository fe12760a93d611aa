package check

import (
	"context"
	"errors"
	"testing"

	"github.com/HerbHall/peerwatch/internal/mib"
	"github.com/HerbHall/peerwatch/pkg/models"
)

func TestCorrelateSingleRow(t *testing.T) {
	schema := mib.Schemas[mib.VendorCisco]
	identity := models.PeerIdentity{CorrelationKey: "1.10.0.0.1"}

	f := newFakePoller()
	// Counter row carries the afi.safi trailing index.
	f.addRow(schema.CounterOID+".1.10.0.0.1", "1.1", uint64(1250))

	counter, err := Correlate(context.Background(), f, schema, identity, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter == nil {
		t.Fatal("counter absent, want one row")
	}
	if counter.Value != 1250 {
		t.Errorf("value = %d, want 1250", counter.Value)
	}
	if counter.Kind != models.CounterPrefixes {
		t.Errorf("kind = %s", counter.Kind)
	}
	if counter.SubFamily != 1 {
		t.Errorf("subFamily = %d, want 1", counter.SubFamily)
	}
}

func TestCorrelateZeroRowsIsAbsent(t *testing.T) {
	schema := mib.Schemas[mib.VendorCisco]
	identity := models.PeerIdentity{CorrelationKey: "1.10.0.0.1"}

	counter, err := Correlate(context.Background(), newFakePoller(), schema, identity, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter != nil {
		t.Fatalf("counter = %+v, want absent", counter)
	}
}

func TestCorrelateAmbiguous(t *testing.T) {
	// Two AFI/SAFI rows under one peer: the engine must refuse to pick.
	schema := mib.Schemas[mib.VendorCisco]
	identity := models.PeerIdentity{CorrelationKey: "1.10.0.0.1"}

	f := newFakePoller()
	f.addRow(schema.CounterOID+".1.10.0.0.1", "1.1", uint64(1250))
	f.addRow(schema.CounterOID+".1.10.0.0.1", "1.2", uint64(8))

	_, err := Correlate(context.Background(), f, schema, identity, nil)
	if !errors.Is(err, ErrAmbiguousCounterTable) {
		t.Fatalf("err = %v, want ErrAmbiguousCounterTable", err)
	}
}

func TestCorrelateDecoupledIndex(t *testing.T) {
	// Juniper keys its counter table by the peer-index column, not by the
	// state-table correlation key.
	schema := mib.Schemas[mib.VendorJuniper]
	key := "0.1.192.0.2.1.1.10.0.0.1"
	identity := models.PeerIdentity{CorrelationKey: key}

	f := newFakePoller()
	f.addScalar(schema.PeerIndexOID+"."+key, 7)
	f.addRow(schema.CounterOID+".7", "1.1", uint64(420))

	counter, err := Correlate(context.Background(), f, schema, identity, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter == nil || counter.Value != 420 {
		t.Fatalf("counter = %+v, want 420", counter)
	}
}

func TestCorrelateDecoupledIndexMissing(t *testing.T) {
	schema := mib.Schemas[mib.VendorJuniper]
	identity := models.PeerIdentity{CorrelationKey: "0.1.192.0.2.1.1.10.0.0.1"}

	counter, err := Correlate(context.Background(), newFakePoller(), schema, identity, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter != nil {
		t.Fatalf("counter = %+v, want absent", counter)
	}
}

func TestCorrelateLeafCounter(t *testing.T) {
	// The brocade counter is a leaf instance under the row's own index;
	// only a direct fetch can reach it, a walk under a leaf finds nothing.
	schema := mib.Schemas[mib.VendorBrocade]
	identity := models.PeerIdentity{CorrelationKey: "10.0.0.1"}

	f := newFakePoller()
	f.addScalar(schema.CounterOID+".10.0.0.1", uint64(1250))

	counter, err := Correlate(context.Background(), f, schema, identity, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter == nil || counter.Value != 1250 {
		t.Fatalf("counter = %+v, want 1250", counter)
	}
	if len(f.walkCalls) != 0 {
		t.Errorf("walked %d roots for a leaf counter, want none", len(f.walkCalls))
	}
}

func TestCorrelateLeafCounterAbsent(t *testing.T) {
	schema := mib.Schemas[mib.VendorBrocade]
	identity := models.PeerIdentity{CorrelationKey: "10.0.0.1"}

	counter, err := Correlate(context.Background(), newFakePoller(), schema, identity, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter != nil {
		t.Fatalf("counter = %+v, want absent", counter)
	}
}

func TestCorrelateSchemaWithoutCounters(t *testing.T) {
	schema := mib.Schemas[mib.VendorGeneric]
	identity := models.PeerIdentity{CorrelationKey: "10.0.0.1"}

	f := newFakePoller()
	counter, err := Correlate(context.Background(), f, schema, identity, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter != nil {
		t.Fatalf("counter = %+v, want absent", counter)
	}
	if len(f.walkCalls) != 0 {
		t.Errorf("walked %d roots, want none", len(f.walkCalls))
	}
}
