package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k5aq/adifcount/pkg/core"
)

func TestResolveDate(t *testing.T) {
	// 23:30 UTC on Jan 15 is already Jan 16 in Tokyo.
	now := time.Date(2024, 1, 15, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name string
		arg  string
		loc  *time.Location
		want string
		err  error
	}{
		{name: "default is today in UTC", arg: "", loc: nil, want: "20240115"},
		{name: "default honours fixed zone", arg: "", loc: tokyo, want: "20240116"},
		{name: "explicit date", arg: "20231231", want: "20231231"},
		{name: "leap day", arg: "20240229", want: "20240229"},
		{name: "not a leap year", arg: "20230229", err: core.ErrInvalidDate},
		{name: "dashed form rejected", arg: "2024-01-15", err: core.ErrInvalidDate},
		{name: "too short", arg: "2024011", err: core.ErrInvalidDate},
		{name: "letters", arg: "2024O115", err: core.ErrInvalidDate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveDate(tc.arg, now, tc.loc)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToday(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC) }

	assert.Equal(t, "20240301", Today(WithClock(clock)))

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "20240229", Today(WithClock(clock), WithLocation(ny)))
}
