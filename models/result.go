package models

import (
	"fmt"
	"time"
)

// SyncOutcome is the tri-state result handed to the scheduler.
type SyncOutcome int

const (
	// OutcomeSuccess means the attempt completed and the watermark advanced.
	OutcomeSuccess SyncOutcome = iota
	// OutcomeRetryable covers network, server and malformed-response failures.
	OutcomeRetryable
	// OutcomeFatal means authentication is exhausted; retrying will not help
	// until the user signs in again.
	OutcomeFatal
)

func (o SyncOutcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeRetryable:
		return "retryable"
	case OutcomeFatal:
		return "fatal"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// SyncMode is the strategy picked while analyzing pending changes.
type SyncMode string

const (
	ModeStandard SyncMode = "standard"
	ModeTwoPhase SyncMode = "two_phase"
)

// SyncState is a state of the synchronisation state machine.
type SyncState string

const (
	StateIdle         SyncState = "IDLE"
	StateAnalyzing    SyncState = "ANALYZING"
	StateStandardSync SyncState = "STANDARD_SYNC"
	StateTwoPhaseSync SyncState = "TWO_PHASE_SYNC"
	StateMerging      SyncState = "MERGING"
	StateDone         SyncState = "DONE"
	StateFailed       SyncState = "FAILED"
)

// MergeStats counts what a merge did to local storage.
type MergeStats struct {
	Inserted int
	Updated  int
	Skipped  int
}

// Add accumulates other into s.
func (s *MergeStats) Add(other MergeStats) {
	s.Inserted += other.Inserted
	s.Updated += other.Updated
	s.Skipped += other.Skipped
}

// SyncResult describes one synchronisation attempt.
type SyncResult struct {
	Outcome SyncOutcome
	Mode    SyncMode
	// Phases is the number of RPC phases that were started.
	Phases int
	// State is the terminal state, StateDone or StateFailed.
	State SyncState
	// Trace lists every state the attempt went through, in order.
	Trace []SyncState
	// Sent counts entities and tombstones included in outgoing requests.
	Sent int
	// Deferred counts items held back because their list has no server id.
	Deferred        int
	Merge           MergeStats
	ServerTimestamp time.Time
	Err             error
}

// Succeeded reports whether the attempt finished with OutcomeSuccess.
func (r SyncResult) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}
