// Package itemqa wires the item quality engine together: deterministic
// normalization, eight-dimension validation with a weighted score and a
// pass/warn/fail verdict, bank-wide reporting, and the explicitly invoked
// escalation path to an external repair proposer.
package itemqa

import (
	"context"
	"log/slog"

	"github.com/clinsim/itemqa/config"
	"github.com/clinsim/itemqa/item"
	"github.com/clinsim/itemqa/normalize"
	"github.com/clinsim/itemqa/quality"
	"github.com/clinsim/itemqa/repair"
)

// Engine is the wired entry point for consumers. All validation paths are
// deterministic; only Process and Escalate can reach the external
// proposer, and only when one is configured.
type Engine struct {
	cfg       *config.Config
	runner    *quality.Runner
	bank      *quality.BankRunner
	escalator *repair.Escalator
	logger    *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an engine from configuration. A nil config uses defaults.
// The repair escalator is wired only when cfg.Repair.Proposer names a
// registered proposer.
func New(cfg *config.Config, opts ...EngineOption) *Engine {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	e := &Engine{cfg: cfg, logger: slog.Default()}
	for _, o := range opts {
		o(e)
	}

	e.runner = quality.NewRunner(quality.WithSettings(quality.Settings{
		StrictContent:      cfg.Quality.StrictContent,
		MinStemLength:      cfg.Quality.MinStemLength,
		MinRationaleLength: cfg.Quality.MinRationaleLength,
		NarrativeWordMin:   cfg.Quality.NarrativeWordMin,
		NarrativeWordMax:   cfg.Quality.NarrativeWordMax,
		BoilerplateExtra:   cfg.Quality.BoilerplateExtra,
	}))
	e.bank = quality.NewBankRunner(e.runner,
		quality.WithWorkers(cfg.Bank.Workers),
		quality.WithLogger(e.logger))

	if p := repair.GetProposer(cfg.Repair.Proposer); p != nil {
		e.escalator = repair.NewEscalator(p, e.runner,
			repair.WithRetryConfig(repair.RetryConfig{
				MaxAttempts:       cfg.Repair.MaxAttempts,
				BackoffBase:       cfg.Repair.BackoffBase,
				BackoffMultiplier: cfg.Repair.BackoffMultiplier,
				MaxBackoff:        cfg.Repair.MaxBackoff,
				Timeout:           cfg.Repair.Timeout,
			}),
			repair.WithLogger(e.logger))
	}

	return e
}

// ValidateItem runs the full diagnosis over one item.
func (e *Engine) ValidateItem(it *item.Item) quality.ItemReport {
	return e.runner.Run(it)
}

// ValidateRaw runs the full diagnosis over one untyped record.
func (e *Engine) ValidateRaw(v any) quality.ItemReport {
	return e.runner.RunRaw(v)
}

// ValidateBank validates a whole collection without invoking repair.
func (e *Engine) ValidateBank(ctx context.Context, records []any) (*quality.BankReport, error) {
	return e.bank.Run(ctx, records)
}

// Normalize runs the deterministic repair pass over one raw record.
func (e *Engine) Normalize(raw map[string]any) normalize.Result {
	return normalize.Normalize(raw)
}

// Escalate invokes the external proposer for a fail-verdict item. Returns
// repair.ErrNotEligible when the verdict is not fail, and an error when no
// proposer is configured.
func (e *Engine) Escalate(ctx context.Context, it *item.Item, report quality.ItemReport) (*repair.Outcome, error) {
	if e.escalator == nil {
		return nil, ErrNoProposer
	}
	return e.escalator.Escalate(ctx, it, report)
}

// ProcessResult is the outcome of the full pipeline over one raw record.
type ProcessResult struct {
	Normalization normalize.Result   `json:"normalization"`
	Report        quality.ItemReport `json:"report"`
	Escalation    *repair.Outcome    `json:"escalation,omitempty"`
}

// Process runs the full data flow for one raw record: normalize, diagnose,
// and, when the verdict is fail and a proposer is configured, escalate and
// re-validate. Quarantined records skip diagnosis and escalation.
func (e *Engine) Process(ctx context.Context, raw map[string]any) (*ProcessResult, error) {
	res := &ProcessResult{Normalization: normalize.Normalize(raw)}
	if res.Normalization.State == normalize.StateQuarantined {
		return res, nil
	}

	res.Report = e.runner.Run(res.Normalization.Item)
	if res.Report.Verdict != quality.VerdictFail || e.escalator == nil {
		return res, nil
	}

	outcome, err := e.escalator.Escalate(ctx, res.Normalization.Item, res.Report)
	if err != nil {
		return nil, err
	}
	res.Escalation = outcome
	if outcome.Accepted {
		res.Report = outcome.Report
	}
	return res, nil
}
