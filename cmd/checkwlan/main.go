// checkwlan polls a wireless controller's SSID table over SNMP and
// reports one of the four standard monitoring severities.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/HerbHall/peerwatch/internal/check"
	"github.com/HerbHall/peerwatch/internal/cli"
	"github.com/HerbHall/peerwatch/internal/config"
	"github.com/HerbHall/peerwatch/internal/telemetry"
	"github.com/HerbHall/peerwatch/pkg/models"
)

const service = "WLAN"

func main() {
	target := flag.String("target", "", "Controller to poll (host or host:port)")
	ssid := flag.String("ssid", "", "SSID to check (empty enumerates every SSID)")
	lowBound := flag.Bool("low", false, "Alert when the client count falls to or below a threshold")
	highBound := flag.Bool("high", false, "Alert when the client count rises to or above a threshold")
	warning := flag.Int64("warning", -1, "Warning client-count threshold")
	critical := flag.Int64("critical", -1, "Critical client-count threshold")
	community := flag.String("community", "", "SNMPv2c community (overrides config file)")
	configPath := flag.String("config", "", "Config file path (searched in default locations if empty)")
	watchdog := flag.Duration("watchdog", 30*time.Second, "Overall run deadline; expiry reports UNKNOWN")
	ping := flag.Bool("ping", false, "ICMP pre-flight check before any SNMP traffic")
	debug := flag.Bool("debug", false, "Debug logging to stderr")
	flag.Parse()

	if *target == "" {
		cli.Unknown(service, "-target is required")
	}

	mode, err := check.ResolveMode(*lowBound, *highBound)
	if err != nil {
		cli.Fail(service, err)
	}
	thresholds := models.ThresholdConfig{Mode: mode}
	if *warning >= 0 {
		w := uint64(*warning)
		thresholds.Warning = &w
	}
	if *critical >= 0 {
		c := uint64(*critical)
		thresholds.Critical = &c
	}

	v, err := config.Load(*configPath)
	if err != nil {
		cli.Unknown(service, err.Error())
	}
	logger, err := config.NewLogger(v, *debug)
	if err != nil {
		cli.Unknown(service, err.Error())
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("run", uuid.NewString()), zap.String("target", *target))

	ctx, cancel := context.WithTimeout(context.Background(), *watchdog)
	defer cancel()

	if *ping {
		alive, _, err := telemetry.Reachable(ctx, *target, v.GetDuration("snmp.timeout"), logger)
		if err != nil {
			cli.Fail(service, err)
		}
		if !alive {
			cli.Unknown(service, fmt.Sprintf("%s did not answer ICMP", *target))
		}
	}

	cred := config.Credential(v)
	if *community != "" {
		cred.Community = *community
	}
	session, err := telemetry.Dial(*target, cred, v.GetDuration("snmp.timeout"), logger)
	if err != nil {
		cli.Fail(service, err)
	}
	defer session.Close()

	results, err := check.RunWlan(ctx, session, check.WlanParams{
		SSID:       *ssid,
		Thresholds: thresholds,
	}, logger)
	if err != nil {
		cli.Fail(service, err)
	}
	cli.Finish(service, check.Aggregate(results))
}
