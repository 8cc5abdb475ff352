package lifecycle

import (
	"strings"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
)

// approvalTransitions is the full legal (status, role) → next-status table of
// the quotation approval chain. Anything absent from the table is illegal.
//
// The SUPER_ADMIN entry under PLANT_APPROVED is deliberate: a super admin may
// finalize directly, skipping the region step.
var approvalTransitions = map[entities.QuotationStatus]map[entities.ActorRole]entities.QuotationStatus{
	entities.QuotationStatusSubmitted: {
		entities.RolePlantAdmin: entities.QuotationStatusPlantApproved,
	},
	entities.QuotationStatusPlantApproved: {
		entities.RoleRegionAdmin: entities.QuotationStatusRegionApproved,
		entities.RoleSuperAdmin:  entities.QuotationStatusFinalApproved,
	},
	entities.QuotationStatusRegionApproved: {
		entities.RoleSuperAdmin: entities.QuotationStatusFinalApproved,
	},
}

// Submit moves a quotation from DRAFT to SUBMITTED.
func Submit(current entities.QuotationStatus) (entities.QuotationStatus, error) {
	if current.IsTerminal() {
		return current, ErrAlreadyFinalized
	}
	if current != entities.QuotationStatusDraft {
		return current, ErrInvalidTransition
	}
	return entities.QuotationStatusSubmitted, nil
}

// Approve resolves the next approval-chain status for the given actor role.
// Terminal statuses fail with ErrAlreadyFinalized; every other combination not
// present in the transition table fails with ErrInvalidTransition.
func Approve(current entities.QuotationStatus, role entities.ActorRole) (entities.QuotationStatus, error) {
	if current.IsTerminal() {
		return current, ErrAlreadyFinalized
	}
	next, ok := approvalTransitions[current][role]
	if !ok {
		return current, ErrInvalidTransition
	}
	return next, nil
}

// Reject moves any non-terminal quotation to REJECTED. The reason is
// mandatory and stored on the quotation by the caller.
func Reject(current entities.QuotationStatus, reason string) (entities.QuotationStatus, error) {
	if strings.TrimSpace(reason) == "" {
		return current, ErrReasonRequired
	}
	if current.IsTerminal() {
		return current, ErrAlreadyFinalized
	}
	return entities.QuotationStatusRejected, nil
}
