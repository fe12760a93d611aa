package check

import (
	"context"
	"strings"

	"github.com/HerbHall/peerwatch/internal/telemetry"
)

// fakePoller serves canned walk and get responses, recording the walk
// order so detection-priority tests can assert on it. TableWalk mirrors
// agent semantics: only bindings strictly under the root are returned, so
// a leaf instance is reachable through Get alone.
type fakePoller struct {
	rows      []telemetry.Value
	gets      map[string]telemetry.Value
	walkCalls []string
}

func newFakePoller() *fakePoller {
	return &fakePoller{
		gets: make(map[string]telemetry.Value),
	}
}

func (f *fakePoller) addRow(root, suffix string, raw any) {
	f.rows = append(f.rows, telemetry.Value{
		OID: root + "." + suffix,
		Raw: raw,
	})
}

func (f *fakePoller) addScalar(oid string, raw any) {
	f.gets[strings.TrimPrefix(oid, ".")] = telemetry.Value{OID: oid, Raw: raw}
}

func (f *fakePoller) TableWalk(_ context.Context, root string) ([]telemetry.Value, error) {
	f.walkCalls = append(f.walkCalls, root)
	var out []telemetry.Value
	for _, v := range f.rows {
		if strings.HasPrefix(v.OID, root+".") {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakePoller) Get(_ context.Context, oids []string) (map[string]telemetry.Value, error) {
	out := make(map[string]telemetry.Value, len(oids))
	for _, oid := range oids {
		key := strings.TrimPrefix(oid, ".")
		if v, ok := f.gets[key]; ok {
			out[key] = v
			continue
		}
		out[key] = telemetry.Value{OID: key, NoSuchInstance: true}
	}
	return out, nil
}

func uintPtr(v uint64) *uint64 { return &v }
