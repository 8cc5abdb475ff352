package lifecycle

import "github.com/Rehan72/sol-sub000/internal/domain/entities"

// CanonicalStatus is the single resolved lifecycle label shown to users,
// derived from the customer's independent sub-statuses.
type CanonicalStatus string

const (
	StatusNewRequest            CanonicalStatus = "New Request"
	StatusSurveyAssigned        CanonicalStatus = "Survey Assigned"
	StatusSurveyCompleted       CanonicalStatus = "Survey Completed"
	StatusSurveyApproved        CanonicalStatus = "Survey Approved"
	StatusSurveyRejected        CanonicalStatus = "Survey Rejected"
	StatusQuotationDraft        CanonicalStatus = "Quotation Draft"
	StatusQuotationSubmitted    CanonicalStatus = "Quotation Submitted"
	StatusApprovedPlant         CanonicalStatus = "Approved (Plant)"
	StatusApprovedRegion        CanonicalStatus = "Approved (Region)"
	StatusQuotationApproved     CanonicalStatus = "Quotation Approved"
	StatusQuotationRejected     CanonicalStatus = "Quotation Rejected"
	StatusPaymentReceived       CanonicalStatus = "Payment Received"
	StatusInstallationScheduled CanonicalStatus = "Installation Scheduled"
	StatusInstallationStarted   CanonicalStatus = "Installation Started"
	StatusInstallationCompleted CanonicalStatus = "Installation Completed"
	StatusQCPending             CanonicalStatus = "QC Pending"
	StatusQCApproved            CanonicalStatus = "QC Approved"
	StatusQCRejected            CanonicalStatus = "QC Rejected"
	StatusCommissioning         CanonicalStatus = "Commissioning"
	StatusLive                  CanonicalStatus = "Live"
)

// installationLabels covers the physical-phase statuses that take precedence
// over everything administrative. ONBOARDED and QUOTATION_READY are absent on
// purpose: they resolve through the quotation/survey buckets below.
var installationLabels = map[entities.InstallationStatus]CanonicalStatus{
	entities.InstallationStatusReady:         StatusPaymentReceived,
	entities.InstallationStatusScheduled:     StatusInstallationScheduled,
	entities.InstallationStatusStarted:       StatusInstallationStarted,
	entities.InstallationStatusCompleted:     StatusInstallationCompleted,
	entities.InstallationStatusQCPending:     StatusQCPending,
	entities.InstallationStatusQCApproved:    StatusQCApproved,
	entities.InstallationStatusQCRejected:    StatusQCRejected,
	entities.InstallationStatusCommissioning: StatusCommissioning,
	entities.InstallationStatusLive:          StatusLive,
}

var quotationLabels = map[entities.QuotationStatus]CanonicalStatus{
	entities.QuotationStatusDraft:          StatusQuotationDraft,
	entities.QuotationStatusSubmitted:      StatusQuotationSubmitted,
	entities.QuotationStatusPlantApproved:  StatusApprovedPlant,
	entities.QuotationStatusRegionApproved: StatusApprovedRegion,
	entities.QuotationStatusFinalApproved:  StatusQuotationApproved,
	entities.QuotationStatusRejected:       StatusQuotationRejected,
}

// Resolve collapses the customer's sub-statuses into one canonical status.
//
// Precedence is fixed, first match wins:
//  1. installation-phase statuses
//  2. quotation statuses
//  3. survey statuses
//  4. base onboarding status
//
// The function is pure and total: every reachable combination maps to a label,
// and anything unmatched falls through to the raw underlying status verbatim
// rather than being silently dropped. It holds no state of its own and can be
// re-derived at any time from the persisted sub-state.
func Resolve(c entities.Customer) CanonicalStatus {
	if label, ok := installationLabels[c.InstallationStatus]; ok {
		return label
	}

	if c.LatestQuotationStatus != "" {
		if label, ok := quotationLabels[c.LatestQuotationStatus]; ok {
			return label
		}
		return CanonicalStatus(c.LatestQuotationStatus)
	}

	if c.SurveyStatus == entities.SurveyStatusCompleted ||
		c.InstallationStatus == entities.InstallationStatusQuotationReady {
		return StatusSurveyCompleted
	}
	switch c.SurveyStatus {
	case entities.SurveyStatusApproved:
		return StatusSurveyApproved
	case entities.SurveyStatusRejected:
		return StatusSurveyRejected
	case entities.SurveyStatusAssigned:
		return StatusSurveyAssigned
	}

	if c.InstallationStatus == entities.InstallationStatusOnboarded || c.InstallationStatus == "" {
		return StatusNewRequest
	}

	// Escape hatch: surface the raw status instead of dropping it.
	return CanonicalStatus(c.InstallationStatus)
}
