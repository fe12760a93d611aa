// Package telemetry wraps the SNMP transport behind the two-operation
// contract the check engine polls through: an ordered table walk and a
// scalar get with a distinguishable "no such instance" marker.
package telemetry

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/gosnmp/gosnmp"
	"go.uber.org/zap"
)

// Poller is the telemetry source contract. Both operations block until
// response or timeout; transport failures are fatal to the run.
type Poller interface {
	// TableWalk returns every binding under root, in agent order,
	// possibly empty.
	TableWalk(ctx context.Context, root string) ([]Value, error)
	// Get fetches the listed instance OIDs. Every requested OID appears
	// in the result; absent instances carry the NoSuchInstance marker.
	Get(ctx context.Context, oids []string) (map[string]Value, error)
}

// Credential holds the fields needed for SNMP authentication.
type Credential struct {
	Version string // "2c" or "3"

	// SNMPv2c.
	Community string

	// SNMPv3.
	Username          string
	AuthProtocol      string // "MD5", "SHA", "SHA-256", etc.
	AuthPassphrase    string
	PrivacyProtocol   string // "DES", "AES", "AES-256", etc.
	PrivacyPassphrase string
	SecurityLevel     string // "noAuthNoPriv", "authNoPriv", "authPriv"
	ContextName       string
}

// Session is a live SNMP session against one target. It issues one request
// at a time; no polling happens concurrently within a run.
type Session struct {
	g      *gosnmp.GoSNMP
	logger *zap.Logger
}

var _ Poller = (*Session)(nil)

// Dial configures and connects a session. target may carry an explicit
// port; 161 is the default. The single transport-level retry is the only
// retry anywhere in a run.
func Dial(target string, cred *Credential, timeout time.Duration, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	host, portStr, err := net.SplitHostPort(target)
	if err != nil {
		host = target
		portStr = "161"
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", portStr, err)
	}

	g := &gosnmp.GoSNMP{
		Target:  host,
		Port:    uint16(port),
		Timeout: timeout,
		Retries: 1,
	}

	switch cred.Version {
	case "2c", "":
		g.Version = gosnmp.Version2c
		g.Community = cred.Community

	case "3":
		g.Version = gosnmp.Version3
		g.SecurityModel = gosnmp.UserSecurityModel

		switch cred.SecurityLevel {
		case "noAuthNoPriv":
			g.MsgFlags = gosnmp.NoAuthNoPriv
		case "authNoPriv":
			g.MsgFlags = gosnmp.AuthNoPriv
		case "authPriv":
			g.MsgFlags = gosnmp.AuthPriv
		default:
			g.MsgFlags = gosnmp.AuthPriv
		}

		g.SecurityParameters = &gosnmp.UsmSecurityParameters{
			UserName:                 cred.Username,
			AuthenticationProtocol:   mapAuthProtocol(cred.AuthProtocol),
			AuthenticationPassphrase: cred.AuthPassphrase,
			PrivacyProtocol:          mapPrivProtocol(cred.PrivacyProtocol),
			PrivacyPassphrase:        cred.PrivacyPassphrase,
		}
		if cred.ContextName != "" {
			g.ContextName = cred.ContextName
		}

	default:
		return nil, fmt.Errorf("unsupported SNMP version %q", cred.Version)
	}

	if err := g.Connect(); err != nil {
		return nil, fmt.Errorf("connect to %s: %w", target, err)
	}

	return &Session{g: g, logger: logger}, nil
}

// Close releases the session's socket.
func (s *Session) Close() {
	if s.g.Conn != nil {
		_ = s.g.Conn.Close()
	}
}

// TableWalk walks the subtree under root with GETBULK.
func (s *Session) TableWalk(ctx context.Context, root string) ([]Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.g.Context = ctx

	pdus, err := s.g.BulkWalkAll(root)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	out := make([]Value, 0, len(pdus))
	for _, pdu := range pdus {
		if pdu.Type == gosnmp.NoSuchInstance || pdu.Type == gosnmp.NoSuchObject ||
			pdu.Type == gosnmp.EndOfMibView {
			continue
		}
		out = append(out, fromPDU(pdu))
	}

	s.logger.Debug("table walk",
		zap.String("root", root),
		zap.Int("rows", len(out)),
	)
	return out, nil
}

// Get fetches the listed OIDs in a single request.
func (s *Session) Get(ctx context.Context, oids []string) (map[string]Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.g.Context = ctx

	result, err := s.g.Get(oids)
	if err != nil {
		return nil, fmt.Errorf("get %d oids: %w", len(oids), err)
	}

	out := make(map[string]Value, len(result.Variables))
	for _, pdu := range result.Variables {
		v := fromPDU(pdu)
		out[v.OID] = v
	}
	// The agent answers positionally; make sure every requested OID is
	// resolvable by its requested spelling too.
	for _, oid := range oids {
		key := strings.TrimPrefix(oid, ".")
		if _, ok := out[key]; !ok {
			out[key] = Value{OID: key, NoSuchInstance: true}
		}
	}

	s.logger.Debug("scalar get", zap.Int("oids", len(oids)))
	return out, nil
}

// mapAuthProtocol converts an auth protocol string to the gosnmp constant.
func mapAuthProtocol(s string) gosnmp.SnmpV3AuthProtocol {
	switch strings.ToUpper(s) {
	case "MD5":
		return gosnmp.MD5
	case "SHA":
		return gosnmp.SHA
	case "SHA-224", "SHA224":
		return gosnmp.SHA224
	case "SHA-256", "SHA256":
		return gosnmp.SHA256
	case "SHA-384", "SHA384":
		return gosnmp.SHA384
	case "SHA-512", "SHA512":
		return gosnmp.SHA512
	default:
		return gosnmp.SHA
	}
}

// mapPrivProtocol converts a privacy protocol string to the gosnmp constant.
func mapPrivProtocol(s string) gosnmp.SnmpV3PrivProtocol {
	switch strings.ToUpper(s) {
	case "DES":
		return gosnmp.DES
	case "AES", "AES-128", "AES128":
		return gosnmp.AES
	case "AES-192", "AES192":
		return gosnmp.AES192
	case "AES-256", "AES256":
		return gosnmp.AES256
	case "AES-192C", "AES192C":
		return gosnmp.AES192C
	case "AES-256C", "AES256C":
		return gosnmp.AES256C
	default:
		return gosnmp.AES
	}
}
