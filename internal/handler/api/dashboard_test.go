//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"gymbook/internal/domain/booking"
	"gymbook/internal/handler/api"
	resdto "gymbook/internal/handler/dto/response"
	"gymbook/internal/usecase/queries"
	"gymbook/tests/common/builder"
	"gymbook/tests/common/httptest"
	queriesmock "gymbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockEquipment *queriesmock.MockEquipmentQueries
	mockBookings  *queriesmock.MockBookingQueries
	handler       *api.DashboardHandler
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockEquipment = queriesmock.NewMockEquipmentQueries(s.mockCtrl)
	s.mockBookings = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewDashboardHandler(s.mockEquipment, s.mockBookings)

	s.router.GET("/dashboard", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("uid", "user-123")
		}
		s.handler.Dashboard(c)
	})
}

func (s *DashboardHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

func (s *DashboardHandlerTestSuite) TestDashboard() {
	s.Run("success: both sections fetched for the caller", func() {
		s.mockEquipment.EXPECT().Categories(gomock.Any()).
			Return(queries.CategoriesResult{Categories: queries.FallbackCategories()})
		s.mockBookings.EXPECT().ActiveByUser(gomock.Any(), "user-123").
			Return(queries.BookingsResult{Bookings: []*booking.Booking{
				builder.NewBookingBuilder().BuildReconstructed(),
			}})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil, "token")

		var response resdto.DashboardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Categories.Categories, 4)
		s.Len(response.Bookings.Bookings, 1)
	})

	s.Run("one degraded section does not taint the other", func() {
		s.mockEquipment.EXPECT().Categories(gomock.Any()).
			Return(queries.CategoriesResult{Categories: queries.FallbackCategories(), Degraded: true})
		s.mockBookings.EXPECT().ActiveByUser(gomock.Any(), "user-123").
			Return(queries.BookingsResult{Bookings: []*booking.Booking{}})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil, "token")

		var response resdto.DashboardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Categories.Degraded)
		s.False(response.Bookings.Degraded)
	})
}
