package lifecycle

import (
	"testing"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name     string
		customer entities.Customer
		want     CanonicalStatus
	}{
		{
			"fresh onboarding",
			entities.Customer{SurveyStatus: entities.SurveyStatusPending, InstallationStatus: entities.InstallationStatusOnboarded},
			StatusNewRequest,
		},
		{
			"survey assigned",
			entities.Customer{SurveyStatus: entities.SurveyStatusAssigned, InstallationStatus: entities.InstallationStatusOnboarded},
			StatusSurveyAssigned,
		},
		{
			"survey completed via survey status",
			entities.Customer{SurveyStatus: entities.SurveyStatusCompleted, InstallationStatus: entities.InstallationStatusOnboarded},
			StatusSurveyCompleted,
		},
		{
			"survey completed via quotation-ready installation status",
			entities.Customer{SurveyStatus: entities.SurveyStatusAssigned, InstallationStatus: entities.InstallationStatusQuotationReady},
			StatusSurveyCompleted,
		},
		{
			"survey rejected",
			entities.Customer{SurveyStatus: entities.SurveyStatusRejected, InstallationStatus: entities.InstallationStatusOnboarded},
			StatusSurveyRejected,
		},
		{
			"quotation takes precedence over survey",
			entities.Customer{
				SurveyStatus:          entities.SurveyStatusCompleted,
				InstallationStatus:    entities.InstallationStatusQuotationReady,
				LatestQuotationStatus: entities.QuotationStatusSubmitted,
			},
			StatusQuotationSubmitted,
		},
		{
			"plant approved",
			entities.Customer{
				SurveyStatus:          entities.SurveyStatusCompleted,
				InstallationStatus:    entities.InstallationStatusQuotationReady,
				LatestQuotationStatus: entities.QuotationStatusPlantApproved,
			},
			StatusApprovedPlant,
		},
		{
			"final approved",
			entities.Customer{
				InstallationStatus:    entities.InstallationStatusQuotationReady,
				LatestQuotationStatus: entities.QuotationStatusFinalApproved,
			},
			StatusQuotationApproved,
		},
		{
			"installation takes precedence over quotation",
			entities.Customer{
				SurveyStatus:          entities.SurveyStatusApproved,
				InstallationStatus:    entities.InstallationStatusStarted,
				LatestQuotationStatus: entities.QuotationStatusFinalApproved,
			},
			StatusInstallationStarted,
		},
		{
			"payment received",
			entities.Customer{
				InstallationStatus:    entities.InstallationStatusReady,
				LatestQuotationStatus: entities.QuotationStatusFinalApproved,
			},
			StatusPaymentReceived,
		},
		{
			"live",
			entities.Customer{
				InstallationStatus:    entities.InstallationStatusLive,
				LatestQuotationStatus: entities.QuotationStatusFinalApproved,
			},
			StatusLive,
		},
		{
			"qc rejected",
			entities.Customer{InstallationStatus: entities.InstallationStatusQCRejected},
			StatusQCRejected,
		},
		{
			"unknown quotation status surfaces verbatim",
			entities.Customer{
				InstallationStatus:    entities.InstallationStatusQuotationReady,
				LatestQuotationStatus: entities.QuotationStatus("LEGACY_HOLD"),
			},
			CanonicalStatus("LEGACY_HOLD"),
		},
		{
			"unknown installation status surfaces verbatim",
			entities.Customer{
				SurveyStatus:       entities.SurveyStatusPending,
				InstallationStatus: entities.InstallationStatus("MIGRATION_HOLD"),
			},
			CanonicalStatus("MIGRATION_HOLD"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.customer)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
			// Deterministic and idempotent on unchanged input.
			if again := Resolve(tc.customer); again != got {
				t.Fatalf("second resolve differs: %q vs %q", got, again)
			}
		})
	}
}
