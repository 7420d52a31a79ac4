package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k5aq/adifcount/pkg/core"
)

// MockSource implements core.Source in memory.
// It deliberately does NOT implement core.Watchable.
type MockSource struct {
	records []core.Record
	err     error
	reads   int
}

func (m *MockSource) Records(ctx context.Context) ([]core.Record, error) {
	m.reads++
	return m.records, m.err
}

func (m *MockSource) Location() string { return "mock.adi" }

func sampleRecords() []core.Record {
	return []core.Record{
		{"CALL": "W1ABC", "QSO_DATE": "20240115"},
		{"CALL": "w1xyz", "QSO_DATE": "20240115"},
		{"CALL": "W1abc", "QSO_DATE": "20240115"},
		{"CALL": "K5AQ", "QSO_DATE": "20240114"},
		{"CALL": "N0CALL"},
		{"QSO_DATE": "20240115"},
		{"CALL": "", "QSO_DATE": "20240115"},
	}
}

func TestService_UniqueCalls(t *testing.T) {
	src := &MockSource{records: sampleRecords()}
	service := core.NewService(src, nil)

	calls, err := service.UniqueCalls(context.Background(), "20240115")
	require.NoError(t, err)

	assert.Equal(t, []string{"W1ABC", "W1XYZ"}, calls.Sorted())
	assert.Equal(t, 1, src.reads)
}

func TestService_Idempotent(t *testing.T) {
	service := core.NewService(&MockSource{records: sampleRecords()}, nil)
	ctx := context.Background()

	first, err := service.UniqueCalls(ctx, "20240115")
	require.NoError(t, err)
	second, err := service.UniqueCalls(ctx, "20240115")
	require.NoError(t, err)

	assert.Equal(t, first, second)

	state, ok := service.State().(core.ServiceState)
	require.True(t, ok)
	assert.Equal(t, 2, state.Runs)
	assert.Equal(t, "mock.adi", state.Location)
}

func TestService_Summarize(t *testing.T) {
	service := core.NewService(&MockSource{records: sampleRecords()}, nil)

	summary, err := service.Summarize(context.Background(), "20240114")
	require.NoError(t, err)

	assert.Equal(t, "mock.adi", summary.Path)
	assert.Equal(t, "20240114", summary.Date)
	assert.Equal(t, []string{"K5AQ"}, summary.Calls.Sorted())
}

func TestService_Errors(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		src := &MockSource{records: sampleRecords()}
		service := core.NewService(src, nil)

		for _, date := range []string{"", "2024011", "2024-01-15", "20241301", "abcdefgh"} {
			_, err := service.UniqueCalls(context.Background(), date)
			assert.ErrorIs(t, err, core.ErrInvalidDate, "date %q", date)
		}
		assert.Zero(t, src.reads, "source must not be read for a bad date")
	})

	t.Run("source error propagates", func(t *testing.T) {
		service := core.NewService(&MockSource{err: core.ErrFileNotFound}, nil)
		_, err := service.UniqueCalls(context.Background(), "20240115")
		assert.True(t, errors.Is(err, core.ErrFileNotFound))
	})

	t.Run("watch unsupported", func(t *testing.T) {
		service := core.NewService(&MockSource{}, nil)
		_, err := service.Watch(context.Background())
		assert.ErrorIs(t, err, core.ErrNotWatchable)
	})
}
