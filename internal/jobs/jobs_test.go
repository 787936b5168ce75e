package jobs_test

import (
	"testing"

	"github.com/hojoonlee/toondex/internal/jobs"
)

// StartJobs schedules against the wall clock, so these tests only cover
// the wiring paths that run synchronously at startup.

func TestStartJobs_DisabledInterval(t *testing.T) {
	ctx := newFakeContext()
	ctx.jobMgr = jobs.NewManager(ctx)
	ctx.cfg.ScanInterval = 0

	// Interval 0 must not schedule anything or panic.
	jobs.StartJobs(ctx)
}

func TestStartJobs_SchedulesSync(t *testing.T) {
	ctx := newFakeContext()
	ctx.jobMgr = jobs.NewManager(ctx)
	ctx.cfg.ScanInterval = 60

	// The first tick is an hour out, so the job cannot fire during the
	// test; this only verifies scheduling succeeds.
	jobs.StartJobs(ctx)
}
