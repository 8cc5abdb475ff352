package lifecycle

import "github.com/Rehan72/sol-sub000/internal/domain/entities"

// Action names a user-visible operation gated by canonical status and role.
type Action string

const (
	ActionAssignSurvey           Action = "ASSIGN_SURVEY"
	ActionCompleteSurveyStep     Action = "COMPLETE_SURVEY_STEP"
	ActionApproveSurvey          Action = "APPROVE_SURVEY"
	ActionRejectSurvey           Action = "REJECT_SURVEY"
	ActionCreateQuotation        Action = "CREATE_QUOTATION"
	ActionSubmitQuotation        Action = "SUBMIT_QUOTATION"
	ActionApproveQuotation       Action = "APPROVE_QUOTATION"
	ActionRejectQuotation        Action = "REJECT_QUOTATION"
	ActionPayMilestone           Action = "PAY_MILESTONE"
	ActionAssignInstallTeam      Action = "ASSIGN_INSTALL_TEAM"
	ActionStartInstallation      Action = "START_INSTALLATION"
	ActionCompleteInstallStep    Action = "COMPLETE_INSTALL_STEP"
	ActionStartQC                Action = "START_QC"
	ActionApproveQC              Action = "APPROVE_QC"
	ActionRejectQC               Action = "REJECT_QC"
	ActionReworkQC               Action = "REWORK_QC"
	ActionStartCommissioning     Action = "START_COMMISSIONING"
	ActionCompleteCommissionStep Action = "COMPLETE_COMMISSIONING_STEP"
	ActionCompleteLiveStep       Action = "COMPLETE_LIVE_STEP"
)

// ActionRule is one row of the declarative gate table: the action, the
// canonical statuses that enable it, and the roles allowed to invoke it.
type ActionRule struct {
	Action   Action
	Statuses []CanonicalStatus
	Roles    []entities.ActorRole
}

// actionRules is the authoritative gate table. The UI may consult it for
// rendering, but the usecases consult it before mutating state; client-side
// gating alone is never trusted.
//
// The three APPROVE_QUOTATION rows mirror the approval-chain transition table
// one-to-one: each chain position names exactly the roles that may move it.
var actionRules = []ActionRule{
	{ActionAssignSurvey, []CanonicalStatus{StatusNewRequest},
		[]entities.ActorRole{entities.RolePlantAdmin, entities.RoleSuperAdmin}},
	{ActionCompleteSurveyStep, []CanonicalStatus{StatusSurveyAssigned},
		[]entities.ActorRole{entities.RoleSurveyor}},
	{ActionApproveSurvey, []CanonicalStatus{StatusSurveyCompleted},
		[]entities.ActorRole{entities.RolePlantAdmin, entities.RoleSuperAdmin}},
	{ActionRejectSurvey, []CanonicalStatus{StatusSurveyCompleted},
		[]entities.ActorRole{entities.RolePlantAdmin, entities.RoleSuperAdmin}},

	{ActionCreateQuotation, []CanonicalStatus{StatusSurveyCompleted, StatusSurveyApproved, StatusQuotationRejected},
		[]entities.ActorRole{entities.RolePlantAdmin, entities.RoleSuperAdmin}},
	{ActionSubmitQuotation, []CanonicalStatus{StatusQuotationDraft},
		[]entities.ActorRole{entities.RolePlantAdmin, entities.RoleSuperAdmin}},
	{ActionApproveQuotation, []CanonicalStatus{StatusQuotationSubmitted},
		[]entities.ActorRole{entities.RolePlantAdmin}},
	{ActionApproveQuotation, []CanonicalStatus{StatusApprovedPlant},
		[]entities.ActorRole{entities.RoleRegionAdmin, entities.RoleSuperAdmin}},
	{ActionApproveQuotation, []CanonicalStatus{StatusApprovedRegion},
		[]entities.ActorRole{entities.RoleSuperAdmin}},
	{ActionRejectQuotation, []CanonicalStatus{StatusQuotationDraft, StatusQuotationSubmitted, StatusApprovedPlant, StatusApprovedRegion},
		[]entities.ActorRole{entities.RolePlantAdmin, entities.RoleRegionAdmin, entities.RoleSuperAdmin}},

	{ActionPayMilestone, []CanonicalStatus{
		StatusSurveyCompleted, StatusSurveyApproved, StatusQuotationApproved,
		StatusPaymentReceived, StatusInstallationScheduled, StatusInstallationStarted,
		StatusInstallationCompleted, StatusQCPending, StatusQCApproved,
		StatusQCRejected, StatusCommissioning, StatusLive},
		[]entities.ActorRole{entities.RoleCustomer, entities.RolePlantAdmin}},

	{ActionAssignInstallTeam, []CanonicalStatus{StatusPaymentReceived},
		[]entities.ActorRole{entities.RolePlantAdmin, entities.RoleSuperAdmin}},
	{ActionStartInstallation, []CanonicalStatus{StatusInstallationScheduled},
		[]entities.ActorRole{entities.RoleInstaller, entities.RolePlantAdmin}},
	{ActionCompleteInstallStep, []CanonicalStatus{StatusInstallationStarted},
		[]entities.ActorRole{entities.RoleInstaller}},

	{ActionStartQC, []CanonicalStatus{StatusInstallationCompleted},
		[]entities.ActorRole{entities.RoleInstaller, entities.RolePlantAdmin}},
	{ActionApproveQC, []CanonicalStatus{StatusQCPending},
		[]entities.ActorRole{entities.RolePlantAdmin, entities.RoleRegionAdmin, entities.RoleSuperAdmin}},
	{ActionRejectQC, []CanonicalStatus{StatusQCPending},
		[]entities.ActorRole{entities.RolePlantAdmin, entities.RoleRegionAdmin, entities.RoleSuperAdmin}},
	{ActionReworkQC, []CanonicalStatus{StatusQCRejected},
		[]entities.ActorRole{entities.RoleInstaller, entities.RolePlantAdmin}},

	{ActionStartCommissioning, []CanonicalStatus{StatusQCApproved},
		[]entities.ActorRole{entities.RolePlantAdmin, entities.RoleSuperAdmin}},
	{ActionCompleteCommissionStep, []CanonicalStatus{StatusCommissioning},
		[]entities.ActorRole{entities.RoleInstaller}},
	{ActionCompleteLiveStep, []CanonicalStatus{StatusLive},
		[]entities.ActorRole{entities.RoleInstaller, entities.RolePlantAdmin}},
}

// PermittedActions returns the set of actions the actor may invoke at the
// given canonical status, in table order.
func PermittedActions(status CanonicalStatus, role entities.ActorRole) []Action {
	var actions []Action
	for _, rule := range actionRules {
		if !containsStatus(rule.Statuses, status) {
			continue
		}
		if !containsRole(rule.Roles, role) {
			continue
		}
		actions = append(actions, rule.Action)
	}
	return actions
}

// CanPerform reports whether the gate table allows the (status, role, action)
// triple. Usecases call this before mutating state.
func CanPerform(status CanonicalStatus, role entities.ActorRole, action Action) bool {
	for _, rule := range actionRules {
		if rule.Action != action {
			continue
		}
		if containsStatus(rule.Statuses, status) && containsRole(rule.Roles, role) {
			return true
		}
	}
	return false
}

func containsStatus(list []CanonicalStatus, s CanonicalStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsRole(list []entities.ActorRole, r entities.ActorRole) bool {
	for _, v := range list {
		if v == r {
			return true
		}
	}
	return false
}
