package routes

import (
	"net/http"

	"github.com/Rehan72/sol-sub000/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers  = "/customers"
	PathQuotations = "/quotations"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addLifecycleRoutes(
	rg *gin.RouterGroup,
	customerHandler *handlers.CustomerHandler,
	quotationHandler *handlers.QuotationHandler,
	milestoneHandler *handlers.MilestoneHandler,
	workflowHandler *handlers.WorkflowHandler,
) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.Onboard)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:customer_id", customerHandler.GetCustomer)
		customers.GET("/:customer_id/status", customerHandler.GetStatus)

		customers.POST("/:customer_id/survey/assign", customerHandler.AssignSurvey)
		customers.PATCH("/:customer_id/survey/approve", customerHandler.ApproveSurvey)
		customers.PATCH("/:customer_id/survey/reject", customerHandler.RejectSurvey)

		customers.POST("/:customer_id/installation/schedule", customerHandler.ScheduleInstallation)
		customers.PATCH("/:customer_id/installation/start", customerHandler.StartInstallation)
		customers.PATCH("/:customer_id/qc/start", customerHandler.StartQC)
		customers.PATCH("/:customer_id/qc/approve", customerHandler.ApproveQC)
		customers.PATCH("/:customer_id/qc/reject", customerHandler.RejectQC)
		customers.PATCH("/:customer_id/qc/rework", customerHandler.ReworkQC)
		customers.PATCH("/:customer_id/commissioning/start", customerHandler.StartCommissioning)

		customers.GET("/:customer_id/quotation", quotationHandler.GetLatestForCustomer)
		customers.GET("/:customer_id/milestones", milestoneHandler.GetMilestones)
		customers.POST("/:customer_id/milestones/:milestone_id/pay", milestoneHandler.RecordPayment)
		customers.GET("/:customer_id/payments", milestoneHandler.ListPayments)

		customers.GET("/:customer_id/phases/:phase/steps", workflowHandler.ListSteps)
		customers.POST("/:customer_id/phases/:phase/steps/complete", workflowHandler.CompleteStep)
	}

	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.GET("/:quotation_id", quotationHandler.GetQuotation)
		quotations.PATCH("/:quotation_id/submit", quotationHandler.SubmitQuotation)
		quotations.PATCH("/:quotation_id/approve", quotationHandler.ApproveQuotation)
		quotations.PATCH("/:quotation_id/reject", quotationHandler.RejectQuotation)
	}
}
