package bench

import "time"

// Outcome is the ephemeral record of one reservation attempt.  Exactly
// one Outcome is produced per launched attempt; it is appended to the
// run's result set once and never mutated afterwards.
type Outcome struct {
	UserID     int           // simulated user identity (duplicates expected)
	SeatNumber int           // targeted seat
	Success    bool          // true when the claim committed
	Err        error         // classified failure, nil on success
	Elapsed    time.Duration // wall clock from transaction begin to resolution
}

// Summary is the read-only aggregate over a completed run's outcomes.
// It is what the campaign table, the report store and the report
// server all consume.
type Summary struct {
	EventID     uint64         `json:"event_id"`
	EventName   string         `json:"event_name"`
	Users       int            `json:"users"`
	Isolation   IsolationLevel `json:"isolation"`
	ConflictPct int            `json:"conflict_percent"`
	Successes   int            `json:"successes"`
	Failures    int            `json:"failures"`
	MeanLatency time.Duration  `json:"mean_latency"`
	Elapsed     time.Duration  `json:"elapsed"`
	StartedAt   time.Time      `json:"started_at"`
}

// summarize folds a run's outcomes into a Summary.  Mean latency is
// the arithmetic mean of every recorded elapsed time, successes and
// failures included; zero when there are no outcomes.
func summarize(s Summary, outcomes []Outcome) Summary {
	var total time.Duration
	for _, out := range outcomes {
		if out.Success {
			s.Successes++
		}
		total += out.Elapsed
	}
	s.Failures = s.Users - s.Successes
	if len(outcomes) > 0 {
		s.MeanLatency = total / time.Duration(len(outcomes))
	}
	return s
}
