package response

import (
	"time"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
	"github.com/Rehan72/sol-sub000/internal/usecase"
)

type CustomerResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Phone              string    `json:"phone"`
	Email              string    `json:"email,omitempty"`
	Address            string    `json:"address,omitempty"`
	Region             string    `json:"region,omitempty"`
	SurveyStatus       string    `json:"survey_status"`
	InstallationStatus string    `json:"installation_status"`
	AssignedSurveyorID string    `json:"assigned_surveyor_id,omitempty"`
	AssignedTeamID     string    `json:"assigned_team_id,omitempty"`
	LatestQuotationID  string    `json:"latest_quotation_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Phone:              c.Phone,
		Email:              c.Email,
		Address:            c.Address,
		Region:             c.Region,
		SurveyStatus:       string(c.SurveyStatus),
		InstallationStatus: string(c.InstallationStatus),
		AssignedSurveyorID: c.AssignedSurveyorID,
		AssignedTeamID:     c.AssignedTeamID,
		LatestQuotationID:  c.LatestQuotationID,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func FromCustomers(list []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromCustomer(c))
	}
	return out
}

// CustomerStatusResponse is the aggregated status view: one canonical label,
// the actions the caller may invoke now and the derived payment plan.
type CustomerStatusResponse struct {
	Customer   CustomerResponse    `json:"customer"`
	Status     string              `json:"status"`
	Actions    []string            `json:"actions"`
	Milestones []MilestoneResponse `json:"milestones,omitempty"`
}

func FromCustomerStatus(v usecase.CustomerStatusView) CustomerStatusResponse {
	actions := make([]string, 0, len(v.Actions))
	for _, a := range v.Actions {
		actions = append(actions, string(a))
	}
	return CustomerStatusResponse{
		Customer:   FromCustomer(v.Customer),
		Status:     string(v.Status),
		Actions:    actions,
		Milestones: FromMilestones(v.Milestones),
	}
}
