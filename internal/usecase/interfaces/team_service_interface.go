package interfaces

import "context"

// ITeamAssignmentService is the external crew-rostering collaborator. It owns
// team data; this service only consumes the assigned team id for gating.
type ITeamAssignmentService interface {
	AssignTeam(ctx context.Context, customerID, region string) (teamID string, err error)
}
