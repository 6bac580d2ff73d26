package request

type SnoozeRequest struct {
	Days int `json:"days" binding:"required,min=1"`
}
