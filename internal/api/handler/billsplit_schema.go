package handler

type createBillSplitRequest struct {
	Title         string    `json:"title"         validate:"required"`
	TotalAmount   float64   `json:"totalAmount"   validate:"required,gt=0"`
	Participants  []int     `json:"participants"  validate:"required,min=2"`
	SplitType     string    `json:"splitType"     validate:"required,oneof=equal custom"`
	CustomAmounts []float64 `json:"customAmounts"`
}

type settledResponse struct {
	Message string `json:"message"`
}
