package api

import (
	"net/http"
	"strconv"

	reqdto "order-followup/internal/handler/dto/request"
	resdto "order-followup/internal/handler/dto/response"
	"order-followup/internal/handler/httperr"
	"order-followup/internal/usecase/commands"
	"order-followup/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkItemHandler struct {
	cmds commands.FollowUpCommands
	q    queries.WorkItemQueries
}

func NewWorkItemHandler(cmds commands.FollowUpCommands, q queries.WorkItemQueries) *WorkItemHandler {
	return &WorkItemHandler{cmds: cmds, q: q}
}

// @Summary Mark followed up
// @Description Record a contact now and reschedule the next follow-up from the cadence rules
// @Tags work-items
// @Produce json
// @Param id path string true "Work item ID"
// @Success 200 {object} resdto.FollowUpResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/work-items/{id}/mark-followed-up [post]
func (h *WorkItemHandler) MarkFollowedUp(c *gin.Context) {
	id, ok := parseWorkItemID(c)
	if !ok {
		return
	}
	result, err := h.cmds.MarkFollowedUp(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Mark followed up failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromFollowUpResult(result))
}

// @Summary Snooze follow-up
// @Description Push the next follow-up out by calendar days
// @Tags work-items
// @Accept json
// @Produce json
// @Param id path string true "Work item ID"
// @Param request body reqdto.SnoozeRequest true "Snooze request"
// @Success 200 {object} resdto.SnoozeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/work-items/{id}/snooze [post]
func (h *WorkItemHandler) Snooze(c *gin.Context) {
	id, ok := parseWorkItemID(c)
	if !ok {
		return
	}
	var req reqdto.SnoozeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	result, err := h.cmds.Snooze(c.Request.Context(), id, req.Days)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Snooze failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnoozeResult(result))
}

// @Summary Recompute follow-up
// @Description Reschedule from the cadence rules without recording a contact
// @Tags work-items
// @Produce json
// @Param id path string true "Work item ID"
// @Success 200 {object} resdto.FollowUpResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/work-items/{id}/recompute-follow-up [post]
func (h *WorkItemHandler) Recompute(c *gin.Context) {
	id, ok := parseWorkItemID(c)
	if !ok {
		return
	}
	result, err := h.cmds.Recompute(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Recompute follow-up failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromFollowUpResult(result))
}

// @Summary List due work items
// @Description Work items whose follow-up date has passed, oldest first
// @Tags work-items
// @Produce json
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.DueWorkItemListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/work-items/due [get]
func (h *WorkItemHandler) ListDue(c *gin.Context) {
	limit := 0
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.q.ListDue(c.Request.Context(), cursor, limit)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to list due work items")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDueWorkItems(items, next))
}

func parseWorkItemID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid work item id", nil)
		return uuid.Nil, false
	}
	return id, true
}
