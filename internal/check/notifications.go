package check

import "fmt"

// IANA BGP NOTIFICATION message code/subcode names (RFC 4271, RFC 4486).
// Vendor-neutral: every schema's last-error pair renders through this one
// table. Unknown pairs leave the text empty rather than failing.
var notificationText = map[[2]int]string{
	{1, 1}: "Message Header Error: Connection Not Synchronized",
	{1, 2}: "Message Header Error: Bad Message Length",
	{1, 3}: "Message Header Error: Bad Message Type",

	{2, 1}: "OPEN Message Error: Unsupported Version Number",
	{2, 2}: "OPEN Message Error: Bad Peer AS",
	{2, 3}: "OPEN Message Error: Bad BGP Identifier",
	{2, 4}: "OPEN Message Error: Unsupported Optional Parameter",
	{2, 5}: "OPEN Message Error: Authentication Failure",
	{2, 6}: "OPEN Message Error: Unacceptable Hold Time",
	{2, 7}: "OPEN Message Error: Unsupported Capability",

	{3, 1}:  "UPDATE Message Error: Malformed Attribute List",
	{3, 2}:  "UPDATE Message Error: Unrecognized Well-known Attribute",
	{3, 3}:  "UPDATE Message Error: Missing Well-known Attribute",
	{3, 4}:  "UPDATE Message Error: Attribute Flags Error",
	{3, 5}:  "UPDATE Message Error: Attribute Length Error",
	{3, 6}:  "UPDATE Message Error: Invalid ORIGIN Attribute",
	{3, 7}:  "UPDATE Message Error: AS Routing Loop",
	{3, 8}:  "UPDATE Message Error: Invalid NEXT_HOP Attribute",
	{3, 9}:  "UPDATE Message Error: Optional Attribute Error",
	{3, 10}: "UPDATE Message Error: Invalid Network Field",
	{3, 11}: "UPDATE Message Error: Malformed AS_PATH",

	{4, 0}: "Hold Timer Expired",

	{5, 0}: "Finite State Machine Error",

	{6, 0}: "Cease",
	{6, 1}: "Cease: Maximum Number of Prefixes Reached",
	{6, 2}: "Cease: Administrative Shutdown",
	{6, 3}: "Cease: Peer De-configured",
	{6, 4}: "Cease: Administrative Reset",
	{6, 5}: "Cease: Connection Rejected",
	{6, 6}: "Cease: Other Configuration Change",
	{6, 7}: "Cease: Connection Collision Resolution",
	{6, 8}: "Cease: Out of Resources",
}

// NotificationText resolves a code/subcode pair to its IANA name. The
// empty string means the pair is unknown; it is never an error.
func NotificationText(code, subcode int) string {
	if text, ok := notificationText[[2]int{code, subcode}]; ok {
		return text
	}
	// Codes 4 and 5 define no subcodes at all, so any subcode there still
	// names the base condition. Unknown subcodes of other codes stay empty.
	if code == 4 || code == 5 {
		return notificationText[[2]int{code, 0}]
	}
	return ""
}

// notificationHex renders the pair the way it appears in diagnostic
// output: two hex bytes separated by a space.
func notificationHex(code, subcode int) string {
	return fmt.Sprintf("%02X %02X", code, subcode)
}
