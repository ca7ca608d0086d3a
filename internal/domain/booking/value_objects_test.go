//go:build unit

package booking_test

import (
	"testing"
	"time"

	"driftwell/internal/domain/booking"
	"driftwell/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t *testing.T, start time.Time, durationMin int) booking.TimeWindow {
	t.Helper()
	w, err := booking.NewTimeWindow(start, durationMin)
	require.NoError(t, err)
	return w
}

func TestTimeWindow(t *testing.T) {
	base := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	t.Run("rejects non-positive duration", func(t *testing.T) {
		_, err := booking.NewTimeWindow(base, 0)
		require.ErrorIs(t, err, booking.ErrInvalidDuration)

		_, err = booking.NewTimeWindow(base, -30)
		require.ErrorIs(t, err, booking.ErrInvalidDuration)
	})

	t.Run("end is start plus duration", func(t *testing.T) {
		w := mustWindow(t, base, 90)
		assert.Equal(t, base.Add(90*time.Minute), w.End())
		assert.Equal(t, 90, w.DurationMinutes())
	})

	t.Run("overlap cases", func(t *testing.T) {
		a := mustWindow(t, base, 60)

		cases := []struct {
			name     string
			other    booking.TimeWindow
			overlaps bool
		}{
			{"identical window", mustWindow(t, base, 60), true},
			{"contained window", mustWindow(t, base.Add(15*time.Minute), 30), true},
			{"partial overlap at end", mustWindow(t, base.Add(30*time.Minute), 60), true},
			{"partial overlap at start", mustWindow(t, base.Add(-30*time.Minute), 60), true},
			{"touching at end does not overlap", mustWindow(t, base.Add(60*time.Minute), 60), false},
			{"touching at start does not overlap", mustWindow(t, base.Add(-60*time.Minute), 60), false},
			{"disjoint after", mustWindow(t, base.Add(2*time.Hour), 60), false},
			{"disjoint before", mustWindow(t, base.Add(-2*time.Hour), 60), false},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				assert.Equal(t, c.overlaps, a.Overlaps(c.other))
				// The overlap relation is symmetric.
				assert.Equal(t, c.overlaps, c.other.Overlaps(a))
			})
		}
	})

	t.Run("past start is rejected", func(t *testing.T) {
		w := mustWindow(t, base, 60)
		require.ErrorIs(t, w.ValidateNotPast(base.Add(time.Minute)), booking.ErrStartInPast)
		require.NoError(t, w.ValidateNotPast(base))
		require.NoError(t, w.ValidateNotPast(base.Add(-time.Minute)))
	})
}

func TestAddress(t *testing.T) {
	t.Run("valid address with postal code only", func(t *testing.T) {
		addr, err := builder.NewBookingBuilder().BuildAddress()
		require.NoError(t, err)
		assert.Equal(t, "78701", addr.PostalCode())
		assert.Nil(t, addr.Coordinate())
	})

	t.Run("street and city are required", func(t *testing.T) {
		_, err := booking.NewAddress("", "Austin", "TX", "78701", nil, nil)
		require.ErrorIs(t, err, booking.ErrMissingAddress)

		_, err = booking.NewAddress("500 Congress Ave", "   ", "TX", "78701", nil, nil)
		require.ErrorIs(t, err, booking.ErrMissingAddress)
	})

	t.Run("postal code required without coordinates", func(t *testing.T) {
		_, err := booking.NewAddress("500 Congress Ave", "Austin", "TX", "", nil, nil)
		require.ErrorIs(t, err, booking.ErrMissingPostalCode)

		// A coordinate stands in for the postal code.
		coord := &booking.Coordinate{Lat: 30.2672, Lng: -97.7431}
		_, err = booking.NewAddress("500 Congress Ave", "Austin", "TX", "", coord, nil)
		require.NoError(t, err)
	})

	t.Run("coordinate bounds", func(t *testing.T) {
		cases := []struct {
			name string
			lat  float64
			lng  float64
		}{
			{"latitude above range", 91, 0},
			{"latitude below range", -91, 0},
			{"longitude above range", 0, 181},
			{"longitude below range", 0, -181},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				coord := &booking.Coordinate{Lat: c.lat, Lng: c.lng}
				_, err := booking.NewAddress("500 Congress Ave", "Austin", "TX", "78701", coord, nil)
				require.ErrorIs(t, err, booking.ErrInvalidCoordinates)
			})
		}
	})

	t.Run("string joins the populated parts", func(t *testing.T) {
		addr, err := booking.NewAddress("500 Congress Ave", "Austin", "", "78701", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "500 Congress Ave, Austin, 78701", addr.String())
	})
}

func TestAddOns(t *testing.T) {
	t.Run("negative quantities rejected", func(t *testing.T) {
		_, err := booking.NewAddOns(-1, 0, 0)
		require.ErrorIs(t, err, booking.ErrNegativeAddOn)

		_, err = booking.NewAddOns(0, -1, 0)
		require.ErrorIs(t, err, booking.ErrNegativeAddOn)

		_, err = booking.NewAddOns(0, 0, -1)
		require.ErrorIs(t, err, booking.ErrNegativeAddOn)
	})

	t.Run("zero values are valid", func(t *testing.T) {
		addOns, err := booking.NewAddOns(0, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, addOns.ExtraVisits())
	})
}

func TestInstructions(t *testing.T) {
	assert.True(t, booking.NewInstructions("   ").IsEmpty())
	assert.Equal(t, "gate code 4821", booking.NewInstructions("  gate code 4821  ").String())
}
