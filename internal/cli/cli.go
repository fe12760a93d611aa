// Package cli holds the small pieces shared by the check binaries: the
// scheduler-facing status line and exit-code mapping.
package cli

import (
	"fmt"
	"os"

	"github.com/HerbHall/peerwatch/internal/check"
	"github.com/HerbHall/peerwatch/pkg/models"
)

// Finish prints the one status line the scheduler consumes and exits with
// the severity's exit code. The status line is the only stdout output.
func Finish(service string, r models.CheckResult) {
	fmt.Printf("%s %s - %s\n", service, r.Severity, r.Message)
	os.Exit(r.Severity.ExitCode())
}

// Fail maps a run error onto the four-level convention and finishes.
func Fail(service string, err error) {
	Finish(service, check.ResultFromError(err))
}

// Unknown finishes with UNKNOWN and the given message. Used for
// configuration errors caught before any poll.
func Unknown(service, message string) {
	Finish(service, models.CheckResult{Severity: models.SeverityUnknown, Message: message})
}
