package interfaces

import (
	"context"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
)

// CustomerStatusPatch is the only shape of update the lifecycle core may apply
// to the CRM-owned customer record: status fields and linkage mirrors, nothing
// else. Nil fields are left untouched.
type CustomerStatusPatch struct {
	SurveyStatus          *entities.SurveyStatus
	InstallationStatus    *entities.InstallationStatus
	AssignedSurveyorID    *string
	AssignedTeamID        *string
	LatestQuotationID     *string
	LatestQuotationStatus *entities.QuotationStatus
}

// ICustomerRepository abstracts the CRM store for Customer records.
//
// Not-found convention: a zero-value Customer with a nil error means the
// record does not exist; callers map that to their own not-found sentinel.

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context, region string) ([]entities.Customer, error)
	ApplyStatusPatch(ctx context.Context, id string, patch CustomerStatusPatch) (entities.Customer, error)
}
