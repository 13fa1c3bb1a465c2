package advisor

import (
	"context"
	"sync"
)

// Phase is the lifecycle position of an advice request.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// State is a point-in-time view of a Tracker. Advice is set only in
// PhaseSuccess and Message only in PhaseError.
type State struct {
	Phase   Phase
	Advice  string
	Message string
	Seq     uint64
}

// Tracker serialises advice requests for one consumer. Only the most recent
// request may complete; starting a new one cancels the previous context.
type Tracker struct {
	mu     sync.Mutex
	seq    uint64
	state  State
	cancel context.CancelFunc
}

// Begin moves to PhaseLoading and returns the context and sequence number
// the caller must pass to Complete.
func (t *Tracker) Begin(parent context.Context) (context.Context, uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	t.cancel = cancel
	t.seq++
	t.state = State{Phase: PhaseLoading, Seq: t.seq}
	return ctx, t.seq
}

// Complete records the outcome of request seq. Stale or already completed
// requests are ignored and report false.
func (t *Tracker) Complete(seq uint64, advice string, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if seq != t.seq || t.state.Phase != PhaseLoading {
		return false
	}
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	if err != nil {
		t.state = State{Phase: PhaseError, Message: UserMessage(err), Seq: seq}
		return true
	}
	t.state = State{Phase: PhaseSuccess, Advice: advice, Seq: seq}
	return true
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Reset cancels any in-flight request and returns to PhaseIdle.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.seq++
	t.state = State{Phase: PhaseIdle, Seq: t.seq}
}

// Run performs one request synchronously through the tracker.
func (t *Tracker) Run(ctx context.Context, svc AdviceService, req Request) State {
	ctx, seq := t.Begin(ctx)
	advice, err := svc.Advise(ctx, req)
	t.Complete(seq, advice, err)
	return t.Snapshot()
}
