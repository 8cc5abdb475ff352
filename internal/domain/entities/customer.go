package entities

import "time"

// SurveyStatus tracks the site-survey sub-lifecycle of a customer.
//
// Domain notes:
//   - The survey is the first gate: no quotation can be drafted before the
//     surveyor marks the survey COMPLETED.
//   - APPROVED/REJECTED are the plant admin's review verdicts on a completed
//     survey report.

type SurveyStatus string

const (
	SurveyStatusPending   SurveyStatus = "PENDING"
	SurveyStatusAssigned  SurveyStatus = "ASSIGNED"
	SurveyStatusCompleted SurveyStatus = "COMPLETED"
	SurveyStatusApproved  SurveyStatus = "APPROVED"
	SurveyStatusRejected  SurveyStatus = "REJECTED"
)

// InstallationStatus tracks the physical-installation sub-lifecycle.
//
// Later physical phases supersede earlier administrative ones when the
// canonical status is resolved; see lifecycle.Resolve.

type InstallationStatus string

const (
	InstallationStatusOnboarded      InstallationStatus = "ONBOARDED"
	InstallationStatusQuotationReady InstallationStatus = "QUOTATION_READY"
	InstallationStatusReady          InstallationStatus = "INSTALLATION_READY"
	InstallationStatusScheduled      InstallationStatus = "INSTALLATION_SCHEDULED"
	InstallationStatusStarted        InstallationStatus = "INSTALLATION_STARTED"
	InstallationStatusCompleted      InstallationStatus = "INSTALLATION_COMPLETED"
	InstallationStatusQCPending      InstallationStatus = "QC_PENDING"
	InstallationStatusQCApproved     InstallationStatus = "QC_APPROVED"
	InstallationStatusQCRejected     InstallationStatus = "QC_REJECTED"
	InstallationStatusCommissioning  InstallationStatus = "COMMISSIONING"
	InstallationStatusLive           InstallationStatus = "COMPLETED"
)

// ActorRole identifies who is invoking an operation. Authorization decisions
// are made against these roles by the action gate and the approval chain.

type ActorRole string

const (
	RoleCustomer    ActorRole = "CUSTOMER"
	RoleSurveyor    ActorRole = "SURVEYOR"
	RoleInstaller   ActorRole = "INSTALLER"
	RolePlantAdmin  ActorRole = "PLANT_ADMIN"
	RoleRegionAdmin ActorRole = "REGION_ADMIN"
	RoleSuperAdmin  ActorRole = "SUPER_ADMIN"
)

// Customer is the solar-installation lead/customer record.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The customer row mirrors the latest quotation id/status so the canonical
// status can be resolved from a single read. Customers are never deleted;
// cancellation is a terminal status, not a removal.

type Customer struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Phone              string             `json:"phone"`
	Email              string             `json:"email"`
	Address            string             `json:"address"`
	Region             string             `json:"region"`
	SurveyStatus       SurveyStatus       `json:"survey_status"`
	InstallationStatus InstallationStatus `json:"installation_status"`
	AssignedSurveyorID string             `json:"assigned_surveyor_id,omitempty"`
	AssignedTeamID     string             `json:"assigned_team_id,omitempty"`

	// Latest quotation linkage; empty when no quotation exists yet.
	LatestQuotationID     string          `json:"latest_quotation_id,omitempty"`
	LatestQuotationStatus QuotationStatus `json:"latest_quotation_status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
