package bench

import (
	"context"
	"time"
)

// RunConfig pairs a user count with an isolation level for one
// campaign step.
type RunConfig struct {
	Users int
	Level IsolationLevel
}

// StandardRuns is the fixed comparison matrix executed by the -all
// mode: a light run at the weakest level up to a heavy run at the
// strictest.
var StandardRuns = []RunConfig{
	{Users: 5, Level: ReadCommitted},
	{Users: 10, Level: RepeatableRead},
	{Users: 20, Level: Serializable},
	{Users: 30, Level: Serializable},
}

// RunCampaign sequences the standard configurations through the
// orchestrator against one event.  The pause between runs keeps
// attempts from different configurations from overlapping.  On error
// the summaries collected so far are returned alongside it.
func RunCampaign(ctx context.Context, o *Orchestrator, eventID uint64, conflictPercent int, pause time.Duration) ([]Summary, error) {
	summaries := make([]Summary, 0, len(StandardRuns))
	for i, rc := range StandardRuns {
		if i > 0 && pause > 0 {
			select {
			case <-time.After(pause):
			case <-ctx.Done():
				return summaries, ctx.Err()
			}
		}
		s, err := o.Run(ctx, rc.Users, rc.Level, eventID, conflictPercent)
		if err != nil {
			return summaries, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
