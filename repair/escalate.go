package repair

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clinsim/itemqa/item"
	"github.com/clinsim/itemqa/normalize"
	"github.com/clinsim/itemqa/quality"
)

// ErrNotEligible is returned when escalation is requested for an item
// whose report is not a fail verdict.
var ErrNotEligible = errors.New("repair: item verdict is not fail")

// Outcome is the result of one escalation.
type Outcome struct {
	// Accepted is true when a candidate survived re-validation.
	Accepted bool `json:"accepted"`

	// Item is the accepted replacement. Nil when rejected.
	Item *item.Item `json:"item,omitempty"`

	// Report is the re-validation report of the accepted candidate.
	Report quality.ItemReport `json:"report"`

	// Attempts counts proposer calls made.
	Attempts int `json:"attempts"`

	// Reason describes why the escalation was rejected.
	Reason string `json:"reason,omitempty"`
}

// Escalator drives the escalation path for fail-verdict items: call the
// proposer, sanitize and normalize the candidate, re-validate it through
// the full item runner, and accept only when the verdict is no longer
// fail.
type Escalator struct {
	proposer Proposer
	runner   *quality.Runner
	retry    RetryConfig
	logger   *slog.Logger
}

// EscalatorOption configures an Escalator.
type EscalatorOption func(*Escalator)

// WithRetryConfig replaces the default retry configuration.
func WithRetryConfig(cfg RetryConfig) EscalatorOption {
	return func(e *Escalator) { e.retry = cfg }
}

// WithLogger sets the escalation logger.
func WithLogger(logger *slog.Logger) EscalatorOption {
	return func(e *Escalator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEscalator creates an escalator over the given proposer and runner.
func NewEscalator(p Proposer, runner *quality.Runner, opts ...EscalatorOption) *Escalator {
	e := &Escalator{
		proposer: p,
		runner:   runner,
		retry:    DefaultRetryConfig(),
		logger:   slog.Default(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Escalate requests a replacement for a failing item. Each proposer call
// is timeout-bound and cancellable through ctx; transient failures retry
// with backoff. A candidate is accepted only when normalization does not
// quarantine it and re-validation yields a non-fail verdict.
func (e *Escalator) Escalate(ctx context.Context, it *item.Item, report quality.ItemReport) (*Outcome, error) {
	if report.Verdict != quality.VerdictFail {
		return nil, ErrNotEligible
	}

	outcome := &Outcome{}
	var lastReason string

	for attempt := 1; attempt <= e.retry.MaxAttempts; attempt++ {
		outcome.Attempts = attempt

		candidate, err := e.propose(ctx, it, report)
		switch {
		case err == nil:
			accepted, rep, reason := e.evaluate(candidate)
			if accepted != nil {
				outcome.Accepted = true
				outcome.Item = accepted
				outcome.Report = rep
				e.logger.Info("repair candidate accepted",
					"item_id", it.ID, "attempt", attempt, "verdict", rep.Verdict)
				return outcome, nil
			}
			lastReason = reason
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastReason = err.Error()
		default:
			lastReason = err.Error()
		}

		if attempt < e.retry.MaxAttempts {
			backoff := e.retry.backoff(attempt)
			e.logger.Debug("repair attempt failed, retrying",
				"item_id", it.ID,
				"attempt", attempt,
				"max_attempts", e.retry.MaxAttempts,
				"backoff", backoff,
				"reason", lastReason)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	outcome.Reason = lastReason
	e.logger.Warn("repair escalation exhausted",
		"item_id", it.ID, "attempts", outcome.Attempts, "reason", lastReason)
	return outcome, nil
}

// propose runs one timeout-bound proposer call.
func (e *Escalator) propose(ctx context.Context, it *item.Item, report quality.ItemReport) (string, error) {
	callCtx := ctx
	if e.retry.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.retry.Timeout)
		defer cancel()
	}
	return e.proposer.Propose(callCtx, it, report)
}

// evaluate sanitizes, normalizes, and re-validates one candidate. Returns
// the accepted item or a rejection reason.
func (e *Escalator) evaluate(candidate string) (*item.Item, quality.ItemReport, string) {
	payload := ExtractCandidate(candidate)
	if payload == "" {
		return nil, quality.ItemReport{}, "no JSON object in proposer output"
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, quality.ItemReport{}, fmt.Sprintf("candidate is not valid JSON: %v", err)
	}

	result := normalize.Normalize(raw)
	if result.State == normalize.StateQuarantined {
		return nil, quality.ItemReport{}, "candidate quarantined: " + joinReasons(result.Reasons)
	}

	rep := e.runner.Run(result.Item)
	if rep.Verdict == quality.VerdictFail {
		return nil, quality.ItemReport{}, "candidate still fails validation"
	}
	return result.Item, rep, ""
}

func joinReasons(reasons []string) string {
	out := ""
	for i, r := range reasons {
		if i > 0 {
			out += ", "
		}
		out += r
	}
	return out
}
