//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"order-followup/internal/handler/api"
	resdto "order-followup/internal/handler/dto/response"
	"order-followup/internal/pkg/errs"
	"order-followup/internal/usecase/commands"
	"order-followup/internal/usecase/queries"
	"order-followup/tests/common/builder"
	"order-followup/tests/common/httptest"
	commandsmock "order-followup/tests/mock/commands"
	queriesmock "order-followup/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WorkItemHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockFollowUpCommands
	mockQueries  *queriesmock.MockWorkItemQueries
	handler      *api.WorkItemHandler
}

func (s *WorkItemHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockFollowUpCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockWorkItemQueries(s.mockCtrl)
	s.handler = api.NewWorkItemHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/work-items/due", s.handler.ListDue)
	s.router.POST("/work-items/:id/mark-followed-up", s.handler.MarkFollowedUp)
	s.router.POST("/work-items/:id/snooze", s.handler.Snooze)
	s.router.POST("/work-items/:id/recompute-follow-up", s.handler.Recompute)
}

func (s *WorkItemHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWorkItemHandlerSuite(t *testing.T) {
	suite.Run(t, new(WorkItemHandlerTestSuite))
}

// ================================================================================
// TestMarkFollowedUp
// ================================================================================

func (s *WorkItemHandlerTestSuite) TestMarkFollowedUp() {
	b := builder.NewWorkItemBuilder()
	url := "/work-items/" + b.ID.String() + "/mark-followed-up"

	s.Run("success: returns rescheduled follow-up", func() {
		contact := time.Date(2025, 3, 7, 9, 0, 0, 0, time.UTC)
		b.LastContactAt = &contact
		s.mockCommands.EXPECT().MarkFollowedUp(gomock.Any(), b.ID).
			Return(b.BuildFollowUpResult("production_order/in_production"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var body resdto.FollowUpResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.ID.String(), body.WorkItemID)
		s.Require().NotNil(body.NextFollowUpAt)
		s.True(b.NextFollowUpAt.Equal(*body.NextFollowUpAt))
		s.Equal("production_order/in_production", body.RuleKey)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "unknown work item", commandsError: errs.Mark(errors.New("work item not found"), errs.ErrNotFound), expectedStatus: http.StatusNotFound},
			{name: "ambiguous rules", commandsError: errs.Mark(errors.New("tie"), errs.ErrAmbiguousPriority), expectedStatus: http.StatusConflict},
			{name: "inconsistent rule", commandsError: errs.Mark(errors.New("bad rule"), errs.ErrInconsistentRule), expectedStatus: http.StatusConflict},
			{name: "database failure", commandsError: errs.Mark(errors.New("db down"), errs.ErrTransient), expectedStatus: http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().MarkFollowedUp(gomock.Any(), b.ID).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "Mark followed up failed")
			})
		}
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/work-items/nope/mark-followed-up", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid work item id")
	})
}

// ================================================================================
// TestSnooze
// ================================================================================

func (s *WorkItemHandlerTestSuite) TestSnooze() {
	b := builder.NewWorkItemBuilder()
	url := "/work-items/" + b.ID.String() + "/snooze"

	s.Run("success", func() {
		until := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().Snooze(gomock.Any(), b.ID, 3).
			Return(&commands.SnoozeResult{WorkItemID: b.ID, SnoozedUntil: until, Days: 3}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"days": 3})

		var body resdto.SnoozeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.Days)
		s.True(until.Equal(body.SnoozedUntil))
	})

	s.Run("success: long snoozes are accepted", func() {
		until := time.Date(2026, 4, 11, 9, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().Snooze(gomock.Any(), b.ID, 400).
			Return(&commands.SnoozeResult{WorkItemID: b.ID, SnoozedUntil: until, Days: 400}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"days": 400})

		var body resdto.SnoozeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(400, body.Days)
	})

	s.Run("error: 400 Bad Request on invalid days", func() {
		for _, days := range []any{0, -2, "three"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"days": days})
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: unknown work item", func() {
		s.mockCommands.EXPECT().Snooze(gomock.Any(), b.ID, 2).
			Return(nil, errs.Mark(errors.New("work item not found"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"days": 2})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Snooze failed")
	})
}

// ================================================================================
// TestRecompute
// ================================================================================

func (s *WorkItemHandlerTestSuite) TestRecompute() {
	b := builder.NewWorkItemBuilder()

	s.Run("success: paused rule clears the date", func() {
		b.NextFollowUpAt = nil
		result := b.BuildFollowUpResult("assisted_project/on_hold")
		result.Paused = true
		s.mockCommands.EXPECT().Recompute(gomock.Any(), b.ID).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/work-items/"+b.ID.String()+"/recompute-follow-up", nil)

		var body resdto.FollowUpResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Paused)
		s.Nil(body.NextFollowUpAt)
	})
}

// ================================================================================
// TestListDue
// ================================================================================

func (s *WorkItemHandlerTestSuite) TestListDue() {
	s.Run("success: passes cursor and returns next page token", func() {
		item := builder.NewWorkItemBuilder().BuildDueView()
		s.mockQueries.EXPECT().ListDue(gomock.Any(), &queries.Cursor{After: "abc"}, 10).
			Return([]*queries.DueWorkItemView{item}, &queries.Cursor{After: "def"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/work-items/due?limit=10&after=abc", nil)

		var body resdto.DueWorkItemListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(item.ID, body.Items[0].ID)
		s.Equal("def", body.NextCursor)
	})

	s.Run("success: last page has no cursor", func() {
		s.mockQueries.EXPECT().ListDue(gomock.Any(), (*queries.Cursor)(nil), 0).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/work-items/due", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"items":[]}`, rec.Body.String())
	})

	s.Run("error: invalid limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/work-items/due?limit=ten", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("error: bad cursor", func() {
		s.mockQueries.EXPECT().ListDue(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Mark(queries.ErrInvalidCursor, errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/work-items/due?after=zzz", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Failed to list due work items")
	})
}
