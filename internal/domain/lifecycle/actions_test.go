package lifecycle

import (
	"testing"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
)

func TestPermittedActions(t *testing.T) {
	t.Run("new request for plant admin", func(t *testing.T) {
		actions := PermittedActions(StatusNewRequest, entities.RolePlantAdmin)
		if len(actions) != 1 || actions[0] != ActionAssignSurvey {
			t.Fatalf("unexpected actions: %v", actions)
		}
	})

	t.Run("new request for customer", func(t *testing.T) {
		if actions := PermittedActions(StatusNewRequest, entities.RoleCustomer); len(actions) != 0 {
			t.Fatalf("expected no actions, got %v", actions)
		}
	})

	t.Run("survey assigned for surveyor", func(t *testing.T) {
		actions := PermittedActions(StatusSurveyAssigned, entities.RoleSurveyor)
		if len(actions) != 1 || actions[0] != ActionCompleteSurveyStep {
			t.Fatalf("unexpected actions: %v", actions)
		}
	})

	t.Run("qc pending for region admin", func(t *testing.T) {
		actions := PermittedActions(StatusQCPending, entities.RoleRegionAdmin)
		if len(actions) != 2 {
			t.Fatalf("expected approve+reject QC, got %v", actions)
		}
	})
}

func TestCanPerform_ApprovalChainMirror(t *testing.T) {
	// The gate table must mirror the approval-chain transition table
	// one-to-one: a role may see the approve action exactly where the chain
	// accepts its approval.
	cases := []struct {
		status CanonicalStatus
		role   entities.ActorRole
		want   bool
	}{
		{StatusQuotationSubmitted, entities.RolePlantAdmin, true},
		{StatusQuotationSubmitted, entities.RoleRegionAdmin, false},
		{StatusQuotationSubmitted, entities.RoleSuperAdmin, false},
		{StatusApprovedPlant, entities.RoleRegionAdmin, true},
		{StatusApprovedPlant, entities.RoleSuperAdmin, true},
		{StatusApprovedPlant, entities.RolePlantAdmin, false},
		{StatusApprovedRegion, entities.RoleSuperAdmin, true},
		{StatusApprovedRegion, entities.RoleRegionAdmin, false},
		{StatusQuotationApproved, entities.RoleSuperAdmin, false},
	}

	for _, tc := range cases {
		got := CanPerform(tc.status, tc.role, ActionApproveQuotation)
		if got != tc.want {
			t.Fatalf("CanPerform(%q, %s) = %v, expected %v", tc.status, tc.role, got, tc.want)
		}

		// Cross-check against the chain itself where a quotation status maps.
		var chainStatus entities.QuotationStatus
		switch tc.status {
		case StatusQuotationSubmitted:
			chainStatus = entities.QuotationStatusSubmitted
		case StatusApprovedPlant:
			chainStatus = entities.QuotationStatusPlantApproved
		case StatusApprovedRegion:
			chainStatus = entities.QuotationStatusRegionApproved
		default:
			continue
		}
		_, err := Approve(chainStatus, tc.role)
		if (err == nil) != tc.want {
			t.Fatalf("gate table and approval chain disagree for (%q, %s)", tc.status, tc.role)
		}
	}
}

func TestCanPerform(t *testing.T) {
	t.Run("customer can pay when a milestone can be due", func(t *testing.T) {
		if !CanPerform(StatusSurveyCompleted, entities.RoleCustomer, ActionPayMilestone) {
			t.Fatalf("expected customer to be allowed to pay at Survey Completed")
		}
	})

	t.Run("installer cannot approve quotations", func(t *testing.T) {
		if CanPerform(StatusQuotationSubmitted, entities.RoleInstaller, ActionApproveQuotation) {
			t.Fatalf("installer must not approve quotations")
		}
	})

	t.Run("commissioning steps only while commissioning", func(t *testing.T) {
		if CanPerform(StatusLive, entities.RoleInstaller, ActionCompleteCommissionStep) {
			t.Fatalf("commissioning steps must not be available at Live")
		}
		if !CanPerform(StatusCommissioning, entities.RoleInstaller, ActionCompleteCommissionStep) {
			t.Fatalf("installer should complete commissioning steps")
		}
	})
}
