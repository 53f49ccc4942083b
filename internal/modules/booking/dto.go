package booking

type AdvanceRequest struct {
	BookingID string            `json:"booking_id,omitempty"`
	Fields    map[string]string `json:"fields" binding:"required"`
}

type ActionRequest struct {
	Action string `json:"action" binding:"required,oneof=confirm cancel"`
}
