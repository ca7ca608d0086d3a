//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"driftwell/internal/domain/booking"
	"driftwell/internal/domain/pricing"
	"driftwell/internal/infra/routing"
	"driftwell/internal/pkg/clock"
	"driftwell/internal/usecase/commands"
	commandsmock "driftwell/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EstimateTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoutes *commandsmock.MockRouteProvider
	clock      *clock.MockClock
	fees       commands.FeeCommands
}

func (s *EstimateTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoutes = commandsmock.NewMockRouteProvider(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	s.fees = commands.NewFeeCommands(
		s.mockRoutes,
		routing.NewDefaultZoneTable(),
		pricing.NewDefaultCalculator(),
		s.clock,
	)
}

func (s *EstimateTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEstimateSuite(t *testing.T) {
	suite.Run(t, new(EstimateTestSuite))
}

func (s *EstimateTestSuite) address(postalCode string) booking.Address {
	addr, err := booking.NewAddress("500 Congress Ave", "Austin", "TX", postalCode, nil, nil)
	s.Require().NoError(err)
	return addr
}

func (s *EstimateTestSuite) TestLiveEstimate() {
	addr := s.address("78701")
	s.mockRoutes.EXPECT().
		Route(gomock.Any(), addr, s.clock.Now()).
		Return(routing.RouteLeg{DistanceMiles: 15, TravelMinutes: 39}, nil)

	estimate, err := s.fees.EstimateSetupFee(context.Background(), addr)
	s.Require().NoError(err)

	s.Equal(int64(10499), estimate.TotalFeeCents)
	s.Equal(int64(2500), estimate.DistanceFeeCents)
	s.Equal(15.0, estimate.DistanceMiles)
	s.Equal(39, estimate.TravelMinutes)
	s.False(estimate.Degraded)
}

func (s *EstimateTestSuite) TestZoneFallbackOnProviderError() {
	addr := s.address("78750")
	s.mockRoutes.EXPECT().
		Route(gomock.Any(), addr, gomock.Any()).
		Return(routing.RouteLeg{}, errors.New("provider timeout"))

	estimate, err := s.fees.EstimateSetupFee(context.Background(), addr)
	s.Require().NoError(err)

	// Metro zone: 12 miles at 2 minutes per mile.
	s.Equal(12.0, estimate.DistanceMiles)
	s.Equal(24, estimate.TravelMinutes)
	s.Equal(int64(8999), estimate.TotalFeeCents)
	s.True(estimate.Degraded)
}

func (s *EstimateTestSuite) TestZoneFallbackUsesDefaultForUnknownPostal() {
	addr := s.address("10001")
	s.mockRoutes.EXPECT().
		Route(gomock.Any(), addr, gomock.Any()).
		Return(routing.RouteLeg{}, routing.ErrProviderUnavailable)

	estimate, err := s.fees.EstimateSetupFee(context.Background(), addr)
	s.Require().NoError(err)

	s.Equal(20.0, estimate.DistanceMiles)
	s.Equal(int64(12999), estimate.TotalFeeCents)
	s.True(estimate.Degraded)
}

func (s *EstimateTestSuite) TestZeroAddressRejected() {
	_, err := s.fees.EstimateSetupFee(context.Background(), booking.Address{})
	s.Require().ErrorIs(err, commands.ErrInvalidAddress)
}
