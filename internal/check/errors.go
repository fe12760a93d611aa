package check

import "errors"

// The engine's failure taxonomy. Decode and lookup failures indicate a
// schema mismatch, never a transient condition, so nothing here is retried.
var (
	// ErrVendorNotSupported means an explicitly hinted schema returned an
	// empty state table. A hint never falls back to auto-detection.
	ErrVendorNotSupported = errors.New("hinted vendor schema returned no data")

	// ErrVendorUndetected means every candidate schema was probed and none
	// answered.
	ErrVendorUndetected = errors.New("no vendor schema answered")

	// ErrPeerNotFound means no row in the state table decoded to the
	// target address.
	ErrPeerNotFound = errors.New("peer not found in state table")

	// ErrPeerStateUnavailable means the index existed but the scalar fetch
	// for the state attribute came back empty: the peer is configured but
	// unreachable from the telemetry source's perspective. Distinct from
	// ErrPeerNotFound and reported differently.
	ErrPeerStateUnavailable = errors.New("peer state not available")

	// ErrAmbiguousCounterTable means the counter subtree held more than
	// one row for one identity. The engine refuses to guess which row is
	// authoritative.
	ErrAmbiguousCounterTable = errors.New("ambiguous counter table")

	// ErrConflictingThresholdMode rejects low-bound and high-bound
	// configured together. Validated before any network I/O.
	ErrConflictingThresholdMode = errors.New("low-bound and high-bound modes are mutually exclusive")

	// ErrCapability rejects a request the selected schema genuinely cannot
	// express (IPv6 target or counter thresholds on a schema without them).
	ErrCapability = errors.New("schema does not support requested capability")
)
