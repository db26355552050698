// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives the staged asset generation process: a submitted
// industrial challenge moves through queued, processing, and validating
// stages, the model response is repaired and merged into a complete asset,
// and every step is reported on an append-only log stream.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/baasify/internal/asset"
	"github.com/pdiddy/baasify/internal/jsonutil"
	"github.com/pdiddy/baasify/pkg/types"
)

// State identifies a stage of the generation pipeline.
type State string

const (
	StateIdle       State = "idle"
	StateQueued     State = "queued"
	StateProcessing State = "processing"
	StateValidating State = "validating"
	StateComplete   State = "complete"
)

// Severity classifies a log entry.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// LogEntry is one event on the pipeline's progress stream. Entries are
// appended in emission order with monotonic timestamps and cleared when a
// new run starts.
type LogEntry struct {
	Time     time.Time `json:"time" yaml:"time"`
	Stage    State     `json:"stage" yaml:"stage"`
	Message  string    `json:"message" yaml:"message"`
	Severity Severity  `json:"severity" yaml:"severity"`
}

var (
	// ErrEmptyProblem is returned when submit is called without a problem
	// statement. The pipeline state and log are left untouched.
	ErrEmptyProblem = errors.New("pipeline: empty problem statement")

	// ErrBusy is returned when submit is called while a run is active.
	// The pipeline state and log are left untouched.
	ErrBusy = errors.New("pipeline: a run is already active")
)

// Backend abstracts the generative model API so tests can supply a mock.
type Backend interface {
	Generate(ctx context.Context, prompt string, jsonOutput bool) (string, error)
}

// Pipeline is the asset generation state machine. One run is active at a
// time; submitting during an active run is rejected, not queued. All
// methods are safe for concurrent use.
type Pipeline struct {
	backend Backend
	cfg     types.PipelineConfig

	mu        sync.Mutex
	state     State
	entries   []LogEntry
	result    *types.Asset
	runID     string
	cancel    context.CancelFunc
	done      chan struct{}
	observers []func(LogEntry)
}

// New returns an idle pipeline backed by the given model client.
func New(backend Backend, cfg types.PipelineConfig) *Pipeline {
	return &Pipeline{backend: backend, cfg: cfg, state: StateIdle}
}

// Subscribe registers fn to receive each log entry as it is emitted.
// Callbacks run on the emitting goroutine and must not call back into
// the pipeline.
func (p *Pipeline) Subscribe(fn func(LogEntry)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, fn)
}

// State returns the current pipeline state.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Log returns a copy of the current run's log stream.
func (p *Pipeline) Log() []LogEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]LogEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Result returns the generated asset once the pipeline is complete.
func (p *Pipeline) Result() (types.Asset, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.result == nil {
		return types.Asset{}, false
	}
	return *p.result, true
}

// closedChan is returned by Done when no run is in flight.
var closedChan = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// Done returns a channel closed when the current run reaches a terminal
// state (complete, error, or reset). With no run in flight the returned
// channel is already closed.
func (p *Pipeline) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done != nil {
		return p.done
	}
	return closedChan
}

// Submit starts a generation run for the given sector and problem
// statement. It returns ErrEmptyProblem for a blank problem and ErrBusy
// when a run is active; in both cases nothing changes. The run executes
// asynchronously; observe it via Subscribe, Log, Done, and Result.
func (p *Pipeline) Submit(ctx context.Context, sector, problem string) error {
	if strings.TrimSpace(problem) == "" {
		return ErrEmptyProblem
	}

	p.mu.Lock()
	if p.state != StateIdle {
		p.mu.Unlock()
		return ErrBusy
	}

	runID := uuid.NewString()
	runCtx, cancel := context.WithCancel(ctx)

	p.runID = runID
	p.cancel = cancel
	p.done = make(chan struct{})
	p.state = StateQueued
	p.entries = nil
	p.result = nil

	p.emitLocked(StateQueued, "challenge received", SeverityInfo)
	p.emitLocked(StateQueued, "authenticating with the TIR engine", SeverityInfo)
	p.emitLocked(StateQueued, fmt.Sprintf("run %s enqueued", runID[:8]), SeverityInfo)
	p.mu.Unlock()

	go p.run(runCtx, cancel, runID, sector, problem)
	return nil
}

// Reset returns the pipeline to idle, discarding the stored asset and the
// log history. An in-flight run is cancelled; its late-arriving response
// is detected by run token and ignored.
func (p *Pipeline) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	if p.done != nil {
		close(p.done)
		p.done = nil
	}
	p.runID = ""
	p.state = StateIdle
	p.result = nil
	p.entries = nil
}

// run executes one generation run. Every state mutation re-checks the run
// token so a reset-then-resubmit sequence can never be clobbered by a
// stale run.
func (p *Pipeline) run(ctx context.Context, cancel context.CancelFunc, runID, sector, problem string) {
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			p.fail(runID, fmt.Errorf("internal error: %v", r))
		}
	}()

	// Queueing latency before a worker picks the run up.
	if !sleepCtx(ctx, p.cfg.QueueDelay) {
		p.fail(runID, ctx.Err())
		return
	}

	if !p.transition(runID, StateProcessing) {
		return
	}
	for _, msg := range []string{
		"indexer scanning bio-literature for analogs",
		"patent agent running freedom-to-operate analysis",
		"transposer matching industrial suppliers",
	} {
		p.emit(runID, StateProcessing, msg, SeverityInfo)
		if !sleepCtx(ctx, p.cfg.StageDelay) {
			p.fail(runID, ctx.Err())
			return
		}
	}

	if !p.transition(runID, StateValidating) {
		return
	}
	p.emit(runID, StateValidating, "synthesizing asset and computing final TIR score", SeverityInfo)

	prompt, err := renderAssetPrompt(sector, problem)
	if err != nil {
		p.fail(runID, fmt.Errorf("rendering prompt: %w", err))
		return
	}

	raw, err := p.backend.Generate(ctx, prompt, true)
	if err != nil {
		p.fail(runID, fmt.Errorf("model call failed: %w", err))
		return
	}

	// The repaired region can still be unparseable; that is recoverable.
	// An empty payload produces a defaulted, near-empty asset rather than
	// aborting the run.
	var payload types.Asset
	if err := jsonutil.Decode(raw, &payload); err != nil {
		p.emit(runID, StateValidating, "response repair failed, continuing with empty payload", SeverityWarning)
		payload = types.Asset{}
	}

	now := time.Now()
	a := asset.Complete(payload, asset.Context{
		Sector:  sector,
		Problem: problem,
		ID:      asset.NewID(now),
		Now:     now,
	})
	p.complete(runID, a)
}

// transition moves the pipeline to next if the run is still current.
func (p *Pipeline) transition(runID string, next State) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.runID != runID {
		return false
	}
	p.state = next
	return true
}

// complete stores the asset and finishes the run.
func (p *Pipeline) complete(runID string, a types.Asset) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.runID != runID {
		return
	}
	p.result = &a
	p.state = StateComplete
	p.emitLocked(StateComplete, fmt.Sprintf("asset %s validated", a.ID), SeveritySuccess)
	close(p.done)
	p.done = nil
	p.cancel = nil
}

// fail aborts the run: an error entry is appended, the state returns to
// idle, and no partial asset is retained. The log survives until the next
// submit so the caller can inspect the failure.
func (p *Pipeline) fail(runID string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.runID != runID {
		return
	}
	stage := p.state
	p.state = StateIdle
	p.result = nil
	p.runID = ""
	p.emitLocked(stage, fmt.Sprintf("run aborted: %v", err), SeverityError)
	close(p.done)
	p.done = nil
	p.cancel = nil
}

// emit appends a log entry if the run is still current.
func (p *Pipeline) emit(runID string, stage State, msg string, sev Severity) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.runID != runID {
		return
	}
	p.emitLocked(stage, msg, sev)
}

// emitLocked appends a log entry and notifies observers. Callers hold p.mu.
func (p *Pipeline) emitLocked(stage State, msg string, sev Severity) {
	entry := LogEntry{Time: time.Now(), Stage: stage, Message: msg, Severity: sev}
	p.entries = append(p.entries, entry)
	for _, fn := range p.observers {
		fn(entry)
	}
}

// sleepCtx waits for d, returning false if ctx ends first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
