package request

// CompleteStepRequest marks the named checklist step completed. The step must
// currently be in_progress; steps cannot be completed out of order.
type CompleteStepRequest struct {
	StepID string `json:"step_id" binding:"required"`
}
