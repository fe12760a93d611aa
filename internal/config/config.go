// Package config loads the optional peerwatch config file and builds the
// SNMP credential and logger from it. Everything has a workable default:
// the checks run from flags alone.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/HerbHall/peerwatch/internal/telemetry"
)

// Defaults applied before any file or environment override.
const (
	DefaultTimeout   = 5 * time.Second
	DefaultCommunity = "public"
)

// Load builds the Viper instance backing one invocation. path, when
// non-empty, names an explicit config file and must exist; otherwise the
// usual locations are searched and a missing file is fine. Environment
// variables prefixed PEERWATCH_ override file values.
func Load(path string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("snmp.version", "2c")
	v.SetDefault("snmp.community", DefaultCommunity)
	v.SetDefault("snmp.timeout", DefaultTimeout)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix("PEERWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return v, nil
	}

	v.SetConfigName("peerwatch")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/peerwatch")
	v.AddConfigPath("/etc/peerwatch")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// Credential assembles the SNMP credential from config keys.
func Credential(v *viper.Viper) *telemetry.Credential {
	return &telemetry.Credential{
		Version:           v.GetString("snmp.version"),
		Community:         v.GetString("snmp.community"),
		Username:          v.GetString("snmp.username"),
		AuthProtocol:      v.GetString("snmp.auth_protocol"),
		AuthPassphrase:    v.GetString("snmp.auth_passphrase"),
		PrivacyProtocol:   v.GetString("snmp.privacy_protocol"),
		PrivacyPassphrase: v.GetString("snmp.privacy_passphrase"),
		SecurityLevel:     v.GetString("snmp.security_level"),
		ContextName:       v.GetString("snmp.context_name"),
	}
}
