//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"venue-booking/internal/domain/blackout"
	"venue-booking/internal/handler/api"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"
	"venue-booking/tests/common/builder"
	"venue-booking/tests/common/httptest"
	"venue-booking/tests/common/testutil"
	commandsmock "venue-booking/tests/mock/commands"
	queriesmock "venue-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BlackoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBlackoutCommands
	mockQueries  *queriesmock.MockBlackoutQueries
	venueID      uuid.UUID
}

func (s *BlackoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBlackoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBlackoutQueries(s.mockCtrl)
	h := api.NewBlackoutHandler(s.mockCommands, s.mockQueries)
	s.venueID = uuid.New()

	s.router.GET("/venues/:venueId/blackouts", h.List)
	s.router.POST("/venues/:venueId/blackouts", h.Create)
	s.router.PATCH("/blackouts/:id", h.Update)
	s.router.DELETE("/blackouts/:id", h.Delete)
}

func (s *BlackoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBlackoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(BlackoutHandlerTestSuite))
}

func (s *BlackoutHandlerTestSuite) TestCreate() {
	url := "/venues/" + s.venueID.String() + "/blackouts"
	reqBody := map[string]any{
		"title":      "Christmas",
		"start_date": "2024-12-24T00:00:00Z",
		"end_date":   "2024-12-26T00:00:00Z",
		"recurrence": map[string]any{"frequency": "yearly", "interval": 1},
	}

	s.Run("正常系: 毎年のブラックアウトを作成して 201", func() {
		day, err := builder.NewBlackoutBuilder().WithVenue(s.venueID).Recurring(blackout.FrequencyYearly, 1).BuildDomain()
		s.Require().NoError(err)
		s.mockCommands.EXPECT().CreateBlackout(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.CreateBlackoutRequest) (*blackout.BlackoutDay, error) {
				s.Equal(s.venueID, req.VenueID)
				s.Equal("Christmas", req.Title)
				s.Require().NotNil(req.Recurrence)
				s.Equal("yearly", req.Recurrence.Frequency)
				s.Equal(1, req.Recurrence.Interval)
				return day, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.BlackoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(day.ID().String(), body.ID)
		s.Require().NotNil(body.Recurrence)
		s.Equal("yearly", body.Recurrence.Frequency)
	})

	s.Run("異常系: リクエスト検証エラーは 400", func() {
		cases := []struct {
			name      string
			mutate    func(m map[string]any)
			expectMsg string
		}{
			{name: "title 欠落", mutate: testutil.Field("title", nil), expectMsg: "title is required"},
			{name: "start_date 欠落", mutate: testutil.Field("start_date", nil), expectMsg: "start_date is required"},
			{name: "未知の頻度", mutate: testutil.Field("recurrence", map[string]any{"frequency": "daily", "interval": 1}),
				expectMsg: "recurrence.frequency must be one of weekly, monthly, yearly"},
			{name: "interval 0", mutate: testutil.Field("recurrence", map[string]any{"frequency": "weekly", "interval": 0}),
				expectMsg: "recurrence.interval is required"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectMsg)
				s.Equal("validation", body.Error.Kind)
			})
		}
	})

	s.Run("異常系: 開始日が終了日より後なら 400", func() {
		s.mockCommands.EXPECT().CreateBlackout(gomock.Any(), gomock.Any()).Return(nil, blackout.ErrInvalidWindow)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "start date")
	})
}

func (s *BlackoutHandlerTestSuite) TestList() {
	s.Run("正常系: 会場のブラックアウト一覧", func() {
		day, err := builder.NewBlackoutBuilder().WithVenue(s.venueID).BuildDomain()
		s.Require().NoError(err)
		s.mockQueries.EXPECT().ListBlackouts(gomock.Any(), s.venueID).
			Return([]*queries.BlackoutView{queries.NewBlackoutView(day)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/"+s.venueID.String()+"/blackouts", nil, "")

		var body []resdto.BlackoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("Christmas", body[0].Title)
		s.Nil(body[0].Recurrence)
	})
}

func (s *BlackoutHandlerTestSuite) TestUpdate() {
	s.Run("正常系: 非アクティブ化と繰り返し解除を渡す", func() {
		day, err := builder.NewBlackoutBuilder().WithVenue(s.venueID).AsInactive().BuildDomain()
		s.Require().NoError(err)
		s.mockCommands.EXPECT().UpdateBlackout(gomock.Any(), day.ID(), gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, req commands.UpdateBlackoutRequest) (*blackout.BlackoutDay, error) {
				s.Require().NotNil(req.IsActive)
				s.False(*req.IsActive)
				s.True(req.ClearRecurrence)
				s.Nil(req.Title)
				return day, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/blackouts/"+day.ID().String(),
			map[string]any{"is_active": false, "clear_recurrence": true}, "")

		var body resdto.BlackoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.IsActive)
	})

	s.Run("異常系: 存在しないブラックアウトは 404", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().UpdateBlackout(gomock.Any(), id, gomock.Any()).Return(nil, blackout.ErrBlackoutNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/blackouts/"+id.String(),
			map[string]any{"title": "New Year"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "blackout not found")
	})
}

func (s *BlackoutHandlerTestSuite) TestDelete() {
	s.Run("正常系: 204", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().DeleteBlackout(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/blackouts/"+id.String(), nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("異常系: 404", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().DeleteBlackout(gomock.Any(), id).Return(blackout.ErrBlackoutNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/blackouts/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}
