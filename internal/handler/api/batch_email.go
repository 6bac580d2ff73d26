package api

import (
	"net/http"

	reqdto "order-followup/internal/handler/dto/request"
	resdto "order-followup/internal/handler/dto/response"
	"order-followup/internal/handler/httperr"
	"order-followup/internal/usecase/commands"
	"order-followup/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const emailSubjectHeader = "X-Email-Subject"

type BatchEmailHandler struct {
	cmds commands.BatchEmailCommands
	q    queries.BatchEmailQueries
}

func NewBatchEmailHandler(cmds commands.BatchEmailCommands, q queries.BatchEmailQueries) *BatchEmailHandler {
	return &BatchEmailHandler{cmds: cmds, q: q}
}

// @Summary Queue batch email
// @Description Schedule a notification for an order batch. Re-queueing an unresolved task returns the existing one.
// @Tags batch-emails
// @Accept json
// @Produce json
// @Param request body reqdto.QueueBatchEmailRequest true "Queue request"
// @Success 200 {object} resdto.QueueBatchEmailResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/batch-emails/queue [post]
func (h *BatchEmailHandler) Queue(c *gin.Context) {
	var req reqdto.QueueBatchEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Enqueue(c.Request.Context(), in)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Queue batch email failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromEnqueueResult(result))
}

// @Summary Cancel batch email
// @Description Cancel a task that has not been claimed yet
// @Tags batch-emails
// @Accept json
// @Produce json
// @Param request body reqdto.CancelBatchEmailRequest true "Cancel request"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response "Malformed body or queueId"
// @Failure 404 {object} httperr.Response "Unknown queueId"
// @Failure 409 {object} httperr.Response "Task is no longer queued: already claimed by a worker or resolved"
// @Router /api/batch-emails/cancel [post]
func (h *BatchEmailHandler) Cancel(c *gin.Context) {
	var req reqdto.CancelBatchEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), in); err != nil {
		httperr.AbortWithUsecaseError(c, err, "Cancel batch email failed")
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}

// @Summary Batch email status
// @Description List every task queued for a batch
// @Tags batch-emails
// @Produce json
// @Param batchId path string true "Batch ID"
// @Success 200 {object} resdto.BatchStatusResponse
// @Failure 400 {object} httperr.Response
// @Router /api/batch-emails/status/{batchId} [get]
func (h *BatchEmailHandler) Status(c *gin.Context) {
	batchID, err := uuid.Parse(c.Param("batchId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid batch id", nil)
		return
	}
	view, err := h.q.Status(c.Request.Context(), batchID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to load batch status")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBatchStatusView(view))
}

// @Summary Preview email
// @Description Render an email template with sample data
// @Tags batch-emails
// @Produce html
// @Param type query string true "Email type"
// @Param firstName query string false "Recipient first name"
// @Success 200 {string} string
// @Failure 400 {object} httperr.Response
// @Router /api/batch-emails/preview [get]
func (h *BatchEmailHandler) Preview(c *gin.Context) {
	view, err := h.q.Preview(c.Request.Context(), c.Query("type"), c.DefaultQuery("firstName", "there"))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Preview failed")
		return
	}
	c.Header(emailSubjectHeader, view.Subject)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(view.HTML))
}
