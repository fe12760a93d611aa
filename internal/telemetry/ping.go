package telemetry

import (
	"context"
	"fmt"
	"net"
	"runtime"
	"time"

	probing "github.com/prometheus-community/pro-bing"
	"go.uber.org/zap"
)

// Reachable sends a short ICMP probe at the target before any SNMP traffic
// is spent on it. A dead device fails fast here instead of burning the
// transport timeout once per detection candidate.
func Reachable(ctx context.Context, target string, timeout time.Duration, logger *zap.Logger) (bool, time.Duration, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	host := target
	if h, _, splitErr := net.SplitHostPort(target); splitErr == nil {
		host = h
	}
	pinger, err := probing.NewPinger(host)
	if err != nil {
		return false, 0, fmt.Errorf("create pinger for %s: %w", target, err)
	}
	pinger.Count = 1
	pinger.Timeout = timeout
	pinger.SetPrivileged(runtime.GOOS == "windows")

	done := make(chan struct{})
	go func() {
		defer close(done)
		if runErr := pinger.Run(); runErr != nil {
			logger.Debug("ping failed", zap.String("target", target), zap.Error(runErr))
		}
	}()

	select {
	case <-done:
	case <-ctx.Done():
		pinger.Stop()
		return false, 0, ctx.Err()
	}

	stats := pinger.Statistics()
	if stats.PacketsRecv > 0 {
		logger.Debug("target reachable",
			zap.String("target", target),
			zap.Duration("rtt", stats.AvgRtt),
		)
		return true, stats.AvgRtt, nil
	}
	return false, 0, nil
}
