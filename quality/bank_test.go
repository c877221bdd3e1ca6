package quality

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinsim/itemqa/item"
)

// bankFixture builds 100 records: 70 clean, 20 with a scoring warning,
// 10 with a broken correctness key.
func bankFixture() []any {
	records := make([]any, 0, 100)
	for i := 0; i < 70; i++ {
		it := validMultipleChoice()
		it.ID = fmt.Sprintf("pass-%02d", i)
		records = append(records, it)
	}
	for i := 0; i < 20; i++ {
		it := validMultipleChoice()
		it.ID = fmt.Sprintf("warn-%02d", i)
		it.Type = item.TypeSelectAll
		it.CorrectOptionID = ""
		it.CorrectOptionIDs = []string{"a", "b", "c"}
		it.Scoring = &item.Scoring{Method: item.Polytomous, MaxPoints: 1}
		records = append(records, it)
	}
	for i := 0; i < 10; i++ {
		it := validMultipleChoice()
		it.ID = fmt.Sprintf("fail-%02d", i)
		it.CorrectOptionID = "missing"
		records = append(records, it)
	}
	return records
}

func TestBankRunCounts(t *testing.T) {
	bank := NewBankRunner(NewRunner(), WithWorkers(4))

	report, err := bank.Run(context.Background(), bankFixture())
	require.NoError(t, err)

	assert.Equal(t, 100, report.Total)
	assert.Equal(t, 70, report.Passed)
	assert.Equal(t, 20, report.Warned)
	assert.Equal(t, 10, report.Failed)

	var sum float64
	for _, r := range report.Reports {
		sum += r.Score
	}
	assert.InDelta(t, sum/100, report.OverallScore, 1e-9)

	assert.Equal(t, 80, report.TypeDistribution[item.TypeMultipleChoice])
	assert.Equal(t, 20, report.TypeDistribution[item.TypeSelectAll])

	scoring := report.Dimensions[DimScoring]
	assert.Equal(t, 10, scoring.Failed)
	assert.Equal(t, 20, scoring.Warned)
	assert.Equal(t, 70, scoring.Passed)
}

func TestBankRunOrderIndependent(t *testing.T) {
	bank := NewBankRunner(NewRunner(), WithWorkers(8))

	records := bankFixture()
	straight, err := bank.Run(context.Background(), records)
	require.NoError(t, err)

	shuffled := make([]any, len(records))
	copy(shuffled, records)
	rand.New(rand.NewSource(1)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	reordered, err := bank.Run(context.Background(), shuffled)
	require.NoError(t, err)

	assert.Equal(t, straight.Passed, reordered.Passed)
	assert.Equal(t, straight.Warned, reordered.Warned)
	assert.Equal(t, straight.Failed, reordered.Failed)
	assert.InDelta(t, straight.OverallScore, reordered.OverallScore, 1e-9)
	assert.Equal(t, straight.TypeDistribution, reordered.TypeDistribution)
	assert.Equal(t, straight.Dimensions, reordered.Dimensions)
}

func TestBankRunPreservesInputOrder(t *testing.T) {
	bank := NewBankRunner(NewRunner(), WithWorkers(8))

	records := bankFixture()
	report, err := bank.Run(context.Background(), records)
	require.NoError(t, err)

	require.Len(t, report.Reports, len(records))
	for i, rec := range records {
		assert.Equal(t, rec.(*item.Item).ID, report.Reports[i].ItemID)
	}
}

func TestBankRunEmpty(t *testing.T) {
	bank := NewBankRunner(NewRunner())

	report, err := bank.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Total)
	assert.Equal(t, float64(0), report.OverallScore)
}

func TestBankRunCancelled(t *testing.T) {
	bank := NewBankRunner(NewRunner(), WithWorkers(2))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bank.Run(ctx, bankFixture())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBankRunToleratesBadRecords(t *testing.T) {
	bank := NewBankRunner(NewRunner())

	records := []any{validMultipleChoice(), nil, 42, map[string]any{"id": "m1"}}
	report, err := bank.Run(context.Background(), records)
	require.NoError(t, err)

	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 3, report.Failed)
}
