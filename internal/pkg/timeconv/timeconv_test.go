package timeconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUTCMillis(t *testing.T) {
	converter := NewDefaultConverter()

	t.Run("Known Instant", func(t *testing.T) {
		// 2024-01-15 09:00 IST == 2024-01-15 03:30 UTC
		millis, err := converter.ToUTCMillis("2024-01-15", "09:00")
		require.NoError(t, err)
		assert.Equal(t, int64(1705289400000), millis)
	})

	t.Run("Midnight", func(t *testing.T) {
		millis, err := converter.ToUTCMillis("2024-01-15", "00:00")
		require.NoError(t, err)
		// midnight IST is the previous day 18:30 UTC
		assert.Equal(t, int64(1705257000000), millis)
	})

	t.Run("Offset Injection", func(t *testing.T) {
		utcConverter := NewConverter(0)
		millis, err := utcConverter.ToUTCMillis("2024-01-15", "09:00")
		require.NoError(t, err)

		istMillis, err := converter.ToUTCMillis("2024-01-15", "09:00")
		require.NoError(t, err)
		assert.Equal(t, int64(5*3600+30*60)*1000, millis-istMillis, "IST instant is 5.5h earlier in UTC")
	})

	t.Run("Malformed Inputs", func(t *testing.T) {
		cases := []struct {
			name  string
			date  string
			clock string
		}{
			{"Month Thirteen", "2024-13-01", "09:00"},
			{"Month Zero", "2024-00-01", "09:00"},
			{"Day Zero", "2024-01-00", "09:00"},
			{"Day Thirty Two", "2024-01-32", "09:00"},
			{"Hour Twenty Four", "2024-01-15", "24:00"},
			{"Minute Sixty", "2024-01-15", "09:60"},
			{"Non Numeric Date", "2024-ab-15", "09:00"},
			{"Non Numeric Time", "2024-01-15", "xx:00"},
			{"Missing Date Part", "2024-01", "09:00"},
			{"Missing Time Part", "2024-01-15", "0900"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := converter.ToUTCMillis(tc.date, tc.clock)
				assert.Error(t, err)
			})
		}
	})

	t.Run("Loose Day Validation", func(t *testing.T) {
		// Feb 31 passes the range check and normalizes forward.
		_, err := converter.ToUTCMillis("2024-02-31", "09:00")
		assert.NoError(t, err)
	})
}

func TestToDisplayString(t *testing.T) {
	converter := NewDefaultConverter()

	t.Run("Round Trip", func(t *testing.T) {
		pairs := []struct {
			date  string
			clock string
		}{
			{"2024-01-15", "09:00"},
			{"2024-01-15", "00:00"},
			{"2024-01-15", "23:59"},
			{"2024-06-30", "13:30"},
		}
		for _, pair := range pairs {
			millis, err := converter.ToUTCMillis(pair.date, pair.clock)
			require.NoError(t, err)

			display, err := converter.ToDisplayString(millis)
			require.NoError(t, err)
			assert.Equal(t, pair.clock, display)

			date, err := converter.ToDisplayDate(millis)
			require.NoError(t, err)
			assert.Equal(t, pair.date, date)
		}
	})

	t.Run("Rejects Non Positive", func(t *testing.T) {
		_, err := converter.ToDisplayString(0)
		assert.Error(t, err)

		_, err = converter.ToDisplayString(-1705289400000)
		assert.Error(t, err)
	})
}

func TestCivilWeekday(t *testing.T) {
	converter := NewDefaultConverter()

	// 2024-01-13 is a Saturday, 2024-01-14 a Sunday, 2024-01-15 a Monday.
	saturday, err := converter.CivilWeekday("2024-01-13")
	require.NoError(t, err)
	assert.Equal(t, 6, saturday)

	sunday, err := converter.CivilWeekday("2024-01-14")
	require.NoError(t, err)
	assert.Equal(t, 0, sunday)

	monday, err := converter.CivilWeekday("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, 1, monday)

	_, err = converter.CivilWeekday("15-01-2024x")
	assert.Error(t, err)
}
