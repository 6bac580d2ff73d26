//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"order-followup/internal/handler/api"
	resdto "order-followup/internal/handler/dto/response"
	"order-followup/internal/pkg/errs"
	"order-followup/internal/usecase/commands"
	"order-followup/internal/usecase/queries"
	"order-followup/tests/common/builder"
	"order-followup/tests/common/httptest"
	"order-followup/tests/common/testutil"
	commandsmock "order-followup/tests/mock/commands"
	queriesmock "order-followup/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BatchEmailHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBatchEmailCommands
	mockQueries  *queriesmock.MockBatchEmailQueries
	handler      *api.BatchEmailHandler
}

func (s *BatchEmailHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBatchEmailCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBatchEmailQueries(s.mockCtrl)
	s.handler = api.NewBatchEmailHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/batch-emails/queue", s.handler.Queue)
	s.router.POST("/batch-emails/cancel", s.handler.Cancel)
	s.router.GET("/batch-emails/status/:batchId", s.handler.Status)
	s.router.GET("/batch-emails/preview", s.handler.Preview)
}

func (s *BatchEmailHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBatchEmailHandlerSuite(t *testing.T) {
	suite.Run(t, new(BatchEmailHandlerTestSuite))
}

type testCaseQueue struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestQueue
// ================================================================================

func (s *BatchEmailHandlerTestSuite) TestQueue() {
	url := "/batch-emails/queue"
	b := builder.NewBatchEmailBuilder()
	reqBody := b.BuildQueueRequestDTO()

	s.Run("success: returns queue id", func() {
		s.mockCommands.EXPECT().Enqueue(gomock.Any(), b.BuildEnqueueInput()).
			Return(b.BuildEnqueueResult(false), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.QueueBatchEmailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal(b.QueueID.String(), body.QueueID)
		s.Equal("queued", body.Status)
		s.False(body.Duplicate)
	})

	s.Run("success: duplicate enqueue reports existing task", func() {
		s.mockCommands.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
			Return(b.BuildEnqueueResult(true), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.QueueBatchEmailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Duplicate)
		s.Equal(b.QueueID.String(), body.QueueID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseQueue{
			{name: "missing batchId", mutate: testutil.Field("batchId", nil), expectCode: http.StatusBadRequest},
			{name: "missing workItemId", mutate: testutil.Field("workItemId", nil), expectCode: http.StatusBadRequest},
			{name: "missing emailType", mutate: testutil.Field("emailType", nil), expectCode: http.StatusBadRequest},
			{name: "invalid recipientEmail", mutate: testutil.Field("recipientEmail", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "recipientName too long", mutate: testutil.Field("recipientName", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
			{name: "malformed scheduledSendAt", mutate: testutil.Field("scheduledSendAt", "tomorrow"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "unknown email type", commandsError: errs.Mark(errors.New("invalid email type"), errs.ErrValidation), expectedStatus: http.StatusBadRequest},
			{name: "database failure", commandsError: errs.Mark(errors.New("db down"), errs.ErrTransient), expectedStatus: http.StatusInternalServerError},
			{name: "unclassified", commandsError: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "Queue batch email failed")
			})
		}
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BatchEmailHandlerTestSuite) TestCancel() {
	url := "/batch-emails/cancel"
	queueID := uuid.New()
	reason := "customer asked"

	s.Run("success", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), commands.CancelInput{QueueID: queueID, Reason: &reason}).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"queueId": queueID, "reason": reason})

		var body resdto.SuccessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
	})

	s.Run("error: missing queueId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": reason})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "unknown task", commandsError: errs.Mark(errors.New("batch email not found"), errs.ErrNotFound), expectedStatus: http.StatusNotFound},
			{name: "already claimed", commandsError: errs.Mark(errors.New("not queued"), errs.ErrAlreadyResolved), expectedStatus: http.StatusConflict},
			{name: "already cancelled", commandsError: errs.Mark(errors.New("status cancelled"), errs.ErrAlreadyResolved), expectedStatus: http.StatusConflict},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any()).Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"queueId": queueID})
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "Cancel batch email failed")
			})
		}
	})
}

// ================================================================================
// TestStatus
// ================================================================================

func (s *BatchEmailHandlerTestSuite) TestStatus() {
	b := builder.NewBatchEmailBuilder()

	s.Run("success: lists tasks for the batch", func() {
		s.mockQueries.EXPECT().Status(gomock.Any(), b.BatchID).
			Return(&queries.BatchStatusView{BatchID: b.BatchID, Emails: []*queries.BatchEmailView{b.BuildView()}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/batch-emails/status/"+b.BatchID.String(), nil)

		var body resdto.BatchStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.BatchID.String(), body.BatchID)
		s.Require().Len(body.Emails, 1)
		s.Equal(b.QueueID.String(), body.Emails[0].QueueID)
		s.Equal("shipped", body.Emails[0].EmailType)
	})

	s.Run("success: unknown batch returns empty list", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().Status(gomock.Any(), id).
			Return(&queries.BatchStatusView{BatchID: id, Emails: []*queries.BatchEmailView{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/batch-emails/status/"+id.String(), nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"batchId":"`+id.String()+`","emails":[]}`, rec.Body.String())
	})

	s.Run("error: invalid batch id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/batch-emails/status/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid batch id")
	})
}

// ================================================================================
// TestPreview
// ================================================================================

func (s *BatchEmailHandlerTestSuite) TestPreview() {
	s.Run("success: renders html with subject header", func() {
		s.mockQueries.EXPECT().Preview(gomock.Any(), "shipped", "Ada").
			Return(&queries.PreviewView{EmailType: "shipped", Subject: "Your order has shipped", HTML: "<p>Hi Ada</p>"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/batch-emails/preview?type=shipped&firstName=Ada", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Type"), "text/html")
		httptest.AssertHeaders(s.T(), rec, map[string]string{"X-Email-Subject": "Your order has shipped"})
		s.Equal("<p>Hi Ada</p>", rec.Body.String())
	})

	s.Run("error: unknown type", func() {
		s.mockQueries.EXPECT().Preview(gomock.Any(), "newsletter", gomock.Any()).
			Return(nil, errs.Mark(errors.New("invalid email type"), errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/batch-emails/preview?type=newsletter", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Preview failed")
	})
}
