//go:build e2e

package booking_test

import (
	"net/http"
	"testing"
	"time"

	"driftwell/internal/handler/dto/response"
	"driftwell/tests/common/authtest"
	"driftwell/tests/common/builder"
	"driftwell/tests/common/dbtest"
	"driftwell/tests/common/httptest"
	"driftwell/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	availabilityURL = "/api/availability"
	estimateURL     = "/api/fees/estimate"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) token(t *testing.T, userID uuid.UUID) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, userID)
}

// futureStart returns a window start comfortably outside every policy
// gate, aligned to the hour so assertions stay readable.
func futureStart() time.Time {
	return time.Now().UTC().Add(96 * time.Hour).Truncate(time.Hour)
}

// =============================================================================
// TestCreateBooking - booking creation API tests
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: user can create a booking", func() {
		t := s.T()
		userID := uuid.New()

		reqBody := builder.NewBookingBuilder().
			WithStartAt(futureStart()).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, s.token(t, userID))
		require.Equal(t, http.StatusCreated, w.Code, "Should create booking successfully: %s", w.Body.String())

		var created response.BookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.Equal(t, userID, created.UserID)
		require.Equal(t, "scheduled", created.Status)
		// 78701 resolves to the downtown zone (3 miles) via the
		// fallback estimator, which is inside the free radius.
		require.Equal(t, int64(7999), created.FeeTotalCents)
		require.Equal(t, int64(0), created.FeeDistanceCents)
	})

	s.Run("Error case: overlapping window of another user is rejected", func() {
		t := s.T()
		start := futureStart()

		otherUser := uuid.New()
		dbtest.CreateTestBooking(t, s.DB, otherUser, start, 60, "scheduled")

		reqBody := builder.NewBookingBuilder().
			WithStartAt(start.Add(30 * time.Minute)).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, s.token(t, uuid.New()))
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already booked")
	})

	s.Run("Normal case: own overlapping window does not block", func() {
		t := s.T()
		start := futureStart()
		userID := uuid.New()

		dbtest.CreateTestBooking(t, s.DB, userID, start, 60, "scheduled")

		reqBody := builder.NewBookingBuilder().
			WithStartAt(start.Add(30 * time.Minute)).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, s.token(t, userID))
		require.Equal(t, http.StatusCreated, w.Code, "Own bookings must not conflict: %s", w.Body.String())
	})

	s.Run("Normal case: cancelled booking does not block the window", func() {
		t := s.T()
		start := futureStart()

		dbtest.CreateTestBooking(t, s.DB, uuid.New(), start, 60, "cancelled")

		reqBody := builder.NewBookingBuilder().
			WithStartAt(start).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, s.token(t, uuid.New()))
		require.Equal(t, http.StatusCreated, w.Code)
	})

	s.Run("Normal case: back-to-back windows do not conflict", func() {
		t := s.T()
		start := futureStart()

		dbtest.CreateTestBooking(t, s.DB, uuid.New(), start, 60, "scheduled")

		reqBody := builder.NewBookingBuilder().
			WithStartAt(start.Add(60 * time.Minute)).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, s.token(t, uuid.New()))
		require.Equal(t, http.StatusCreated, w.Code)
	})

	s.Run("Error case: booking in the past is rejected", func() {
		t := s.T()

		reqBody := builder.NewBookingBuilder().
			WithStartAt(time.Now().UTC().Add(-2 * time.Hour)).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, s.token(t, uuid.New()))
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "validation failed")
	})

	s.Run("Error case: unauthenticated request is rejected", func() {
		t := s.T()

		reqBody := builder.NewBookingBuilder().
			WithStartAt(futureStart()).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: expired token is rejected", func() {
		t := s.T()
		token := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, uuid.New())

		reqBody := builder.NewBookingBuilder().
			WithStartAt(futureStart()).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestGetBookings - read API tests
// =============================================================================

func (s *BookingSuite) TestGetBookings() {
	s.Run("Normal case: owner can fetch a booking by ID", func() {
		t := s.T()
		userID := uuid.New()

		reqBody := builder.NewBookingBuilder().
			WithStartAt(futureStart()).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, s.token(t, userID))
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, s.token(t, userID))

		var fetched response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		require.Equal(t, created.ID, fetched.ID)
		require.Equal(t, created.FeeTotalCents, fetched.FeeTotalCents)
	})

	s.Run("Error case: another user's booking reads as not found", func() {
		t := s.T()
		owner := uuid.New()
		bookingID := dbtest.CreateTestBooking(t, s.DB, owner, futureStart(), 60, "scheduled")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+bookingID.String(), nil, s.token(t, uuid.New()))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "not found")
	})

	s.Run("Normal case: list returns only the caller's bookings", func() {
		t := s.T()
		userID := uuid.New()
		start := futureStart()

		dbtest.CreateTestBooking(t, s.DB, userID, start, 60, "scheduled")
		dbtest.CreateTestBooking(t, s.DB, userID, start.Add(3*time.Hour), 60, "scheduled")
		dbtest.CreateTestBooking(t, s.DB, uuid.New(), start.Add(6*time.Hour), 60, "scheduled")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, s.token(t, userID))

		var items []response.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &items)
		require.Len(t, items, 2)
	})
}

// =============================================================================
// TestCancelBooking - cancellation policy tests
// =============================================================================

func (s *BookingSuite) TestCancelBooking() {
	s.Run("Normal case: booking outside the cancel window is cancelled", func() {
		t := s.T()
		userID := uuid.New()
		bookingID := dbtest.CreateTestBooking(t, s.DB, userID, futureStart(), 60, "scheduled")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+bookingID.String()+"/cancel", nil, s.token(t, userID))
		require.Equal(t, http.StatusNoContent, w.Code, "Cancel should succeed: %s", w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+bookingID.String(), nil, s.token(t, userID))
		var fetched response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		require.Equal(t, "cancelled", fetched.Status)
	})

	s.Run("Error case: booking inside the cancel window is refused", func() {
		t := s.T()
		userID := uuid.New()
		// Less than 24 hours out
		bookingID := dbtest.CreateTestBooking(t, s.DB, userID, time.Now().UTC().Add(2*time.Hour), 60, "scheduled")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+bookingID.String()+"/cancel", nil, s.token(t, userID))
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Cancellation window")
	})

	s.Run("Error case: completed booking can no longer be cancelled", func() {
		t := s.T()
		userID := uuid.New()
		bookingID := dbtest.CreateTestBooking(t, s.DB, userID, futureStart(), 60, "completed")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+bookingID.String()+"/cancel", nil, s.token(t, userID))
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "no longer be cancelled")
	})
}

// =============================================================================
// TestRescheduleBooking - reschedule policy and conflict tests
// =============================================================================

func (s *BookingSuite) TestRescheduleBooking() {
	s.Run("Normal case: booking moves to a free window", func() {
		t := s.T()
		userID := uuid.New()
		bookingID := dbtest.CreateTestBooking(t, s.DB, userID, futureStart(), 60, "scheduled")
		newStart := futureStart().Add(24 * time.Hour)

		reqBody := map[string]any{"new_start_at": newStart.Format(time.RFC3339)}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+bookingID.String()+"/reschedule", reqBody, s.token(t, userID))

		var moved response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &moved)
		require.True(t, newStart.Equal(moved.StartAt), "Start should move to the new window")
	})

	s.Run("Error case: target window held by another user", func() {
		t := s.T()
		userID := uuid.New()
		bookingID := dbtest.CreateTestBooking(t, s.DB, userID, futureStart(), 60, "scheduled")

		newStart := futureStart().Add(24 * time.Hour)
		dbtest.CreateTestBooking(t, s.DB, uuid.New(), newStart, 60, "scheduled")

		reqBody := map[string]any{"new_start_at": newStart.Format(time.RFC3339)}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+bookingID.String()+"/reschedule", reqBody, s.token(t, userID))
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already booked")
	})

	s.Run("Error case: booking inside the reschedule window is refused", func() {
		t := s.T()
		userID := uuid.New()
		// Less than 48 hours out
		bookingID := dbtest.CreateTestBooking(t, s.DB, userID, time.Now().UTC().Add(24*time.Hour), 60, "scheduled")

		reqBody := map[string]any{"new_start_at": futureStart().Format(time.RFC3339)}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+bookingID.String()+"/reschedule", reqBody, s.token(t, userID))
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Reschedule window")
	})
}

// =============================================================================
// TestAvailability - slot capacity API tests
// =============================================================================

func (s *BookingSuite) TestAvailability() {
	s.Run("Normal case: slots reflect current occupancy", func() {
		t := s.T()
		day := futureStart().Truncate(24 * time.Hour)
		slotStart := day.Add(9 * time.Hour)

		dbtest.CreateTestSlot(t, s.DB, slotStart, slotStart.Add(3*time.Hour), 2)
		dbtest.CreateTestBooking(t, s.DB, uuid.New(), slotStart, 60, "scheduled")

		url := availabilityURL + "?date=" + day.Format("2006-01-02")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")

		var slots []response.SlotResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &slots)
		require.Len(t, slots, 1)
		require.Equal(t, int32(2), slots[0].MaxBookings)
		require.Equal(t, int32(1), slots[0].CurrentBookings)
	})

	s.Run("Normal case: fully booked slot disappears", func() {
		t := s.T()
		day := futureStart().Truncate(24 * time.Hour)
		slotStart := day.Add(9 * time.Hour)

		dbtest.CreateTestSlot(t, s.DB, slotStart, slotStart.Add(2*time.Hour), 1)
		dbtest.CreateTestBooking(t, s.DB, uuid.New(), slotStart, 60, "scheduled")

		url := availabilityURL + "?date=" + day.Format("2006-01-02")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")

		var slots []response.SlotResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &slots)
		require.Empty(t, slots)
	})

	s.Run("Normal case: cancelled bookings free up capacity", func() {
		t := s.T()
		day := futureStart().Truncate(24 * time.Hour)
		slotStart := day.Add(9 * time.Hour)

		dbtest.CreateTestSlot(t, s.DB, slotStart, slotStart.Add(2*time.Hour), 1)
		dbtest.CreateTestBooking(t, s.DB, uuid.New(), slotStart, 60, "cancelled")

		url := availabilityURL + "?date=" + day.Format("2006-01-02")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")

		var slots []response.SlotResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &slots)
		require.Len(t, slots, 1)
		require.Equal(t, int32(0), slots[0].CurrentBookings)
	})

	s.Run("Error case: missing date parameter", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "date query parameter")
	})
}

// =============================================================================
// TestEstimateFee - fee estimation API tests
// =============================================================================

func (s *BookingSuite) TestEstimateFee() {
	s.Run("Normal case: downtown address inside the free radius", func() {
		t := s.T()
		reqBody := map[string]any{
			"address": map[string]any{
				"street":      "500 Congress Ave",
				"city":        "Austin",
				"region":      "TX",
				"postal_code": "78701",
			},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, estimateURL, reqBody, "")

		var estimate response.FeeEstimateResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &estimate)
		require.Equal(t, int64(7999), estimate.TotalFeeCents)
		require.Equal(t, int64(0), estimate.DistanceFeeCents)
		// No live routing provider in the test environment
		require.True(t, estimate.Degraded)
	})

	s.Run("Normal case: metro address is charged for the overage", func() {
		t := s.T()
		reqBody := map[string]any{
			"address": map[string]any{
				"street":      "11801 Domain Blvd",
				"city":        "Austin",
				"region":      "TX",
				"postal_code": "78758",
			},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, estimateURL, reqBody, "")

		var estimate response.FeeEstimateResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &estimate)
		// Metro zone: 12 miles, 2 beyond the free radius
		require.Equal(t, int64(8999), estimate.TotalFeeCents)
		require.Equal(t, int64(1000), estimate.DistanceFeeCents)
		require.True(t, estimate.Degraded)
	})

	s.Run("Error case: address without postal code or coordinates", func() {
		t := s.T()
		reqBody := map[string]any{
			"address": map[string]any{
				"street": "500 Congress Ave",
				"city":   "Austin",
			},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, estimateURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "postal code")
	})
}
