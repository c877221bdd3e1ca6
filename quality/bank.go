package quality

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DimensionTally counts items by their worst severity within one dimension.
type DimensionTally struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
}

// BankReport aggregates a full collection run. Counts and the overall
// score are order-independent; Reports preserves input order.
type BankReport struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	Total  int `json:"total"`
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`

	// OverallScore is the mean of the item scores.
	OverallScore float64 `json:"overall_score"`

	TypeDistribution map[string]int               `json:"type_distribution"`
	Dimensions       map[Dimension]DimensionTally `json:"dimensions"`

	Reports []ItemReport `json:"reports"`
}

// BankRunner maps the item runner over a collection. Per-item validation
// is pure, so items run concurrently on a bounded worker pool; the reduce
// step is order-independent.
type BankRunner struct {
	runner  *Runner
	workers int
	logger  *slog.Logger
}

// BankOption configures a BankRunner.
type BankOption func(*BankRunner)

// WithWorkers bounds the validation worker pool.
func WithWorkers(n int) BankOption {
	return func(b *BankRunner) {
		if n > 0 {
			b.workers = n
		}
	}
}

// WithLogger sets the progress logger.
func WithLogger(logger *slog.Logger) BankOption {
	return func(b *BankRunner) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBankRunner creates a bank runner over the given item runner.
func NewBankRunner(runner *Runner, opts ...BankOption) *BankRunner {
	b := &BankRunner{
		runner:  runner,
		workers: runtime.NumCPU(),
		logger:  slog.Default(),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Run validates every record and reduces to a BankReport. The only error
// is context cancellation; malformed records become failure reports.
func (b *BankRunner) Run(ctx context.Context, records []any) (*BankReport, error) {
	start := time.Now()
	reports := make([]ItemReport, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, rec := range records {
		i, rec := i, rec // per-iteration copies; the go directive predates Go 1.22 loop scoping
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = b.runner.RunRaw(rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := reduce(reports)
	b.logger.Info("bank validation finished",
		"run_id", report.RunID,
		"total", report.Total,
		"passed", report.Passed,
		"warned", report.Warned,
		"failed", report.Failed,
		"elapsed", time.Since(start))
	return report, nil
}

func reduce(reports []ItemReport) *BankReport {
	bank := &BankReport{
		RunID:            uuid.NewString(),
		GeneratedAt:      time.Now().UTC(),
		Total:            len(reports),
		TypeDistribution: make(map[string]int),
		Dimensions:       make(map[Dimension]DimensionTally),
		Reports:          reports,
	}

	var sum float64
	for _, r := range reports {
		sum += r.Score
		switch r.Verdict {
		case VerdictPass:
			bank.Passed++
		case VerdictWarn:
			bank.Warned++
		case VerdictFail:
			bank.Failed++
		}
		if r.ItemType != "" {
			bank.TypeDistribution[r.ItemType]++
		}

		for _, dim := range Dimensions() {
			tally := bank.Dimensions[dim]
			switch worstSeverity(r.Diagnostics, dim) {
			case SeverityCritical:
				tally.Failed++
			case SeverityWarning:
				tally.Warned++
			default:
				tally.Passed++
			}
			bank.Dimensions[dim] = tally
		}
	}
	if bank.Total > 0 {
		bank.OverallScore = sum / float64(bank.Total)
	}
	return bank
}

// worstSeverity returns the most severe diagnostic in one dimension, or
// empty when the dimension is clean (infos count as clean for tallies).
func worstSeverity(diags []Diagnostic, dim Dimension) Severity {
	var worst Severity
	for _, d := range diags {
		if d.Dimension != dim {
			continue
		}
		switch d.Severity {
		case SeverityCritical:
			return SeverityCritical
		case SeverityWarning:
			worst = SeverityWarning
		}
	}
	return worst
}
