package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "github.com/Rehan72/sol-sub000/internal/adapter/http/dto/request"
	response "github.com/Rehan72/sol-sub000/internal/adapter/http/dto/response"
	"github.com/Rehan72/sol-sub000/internal/adapter/http/middleware"
	"github.com/Rehan72/sol-sub000/internal/domain/entities"
	"github.com/Rehan72/sol-sub000/internal/domain/lifecycle"
	"github.com/Rehan72/sol-sub000/internal/usecase"
	"github.com/Rehan72/sol-sub000/pkg"

	"github.com/gin-gonic/gin"
)

// CustomerHandler exposes the customer lifecycle: onboarding, survey,
// installation scheduling, QC and commissioning.

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// Onboard registers a new installation lead.
func (h *CustomerHandler) Onboard(c *gin.Context) {
	var req request.OnboardCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[customer][handler] onboard invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Onboard(c.Request.Context(), req.Name, req.Phone, req.Email, req.Address, req.Region)
	if err != nil {
		log.Printf("[customer][handler] onboard failed err=%v", err)
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[customer][handler] onboard success customer_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromCustomer(created))
}

// GetCustomer returns a single customer record.
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customerID := c.Param("customer_id")

	found, err := h.usecase.GetByID(c.Request.Context(), customerID)
	if err != nil {
		log.Printf("[customer][handler] get failed customer_id=%s err=%v", customerID, err)
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(found))
}

// ListCustomers lists customers, optionally filtered by region.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	region := c.Query("region")

	list, err := h.usecase.List(c.Request.Context(), region)
	if err != nil {
		log.Printf("[customer][handler] list failed region=%s err=%v", region, err)
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomers(list))
}

// GetStatus returns the aggregated status view for a customer: canonical
// status, permitted actions for the caller's role and the payment plan.
func (h *CustomerHandler) GetStatus(c *gin.Context) {
	customerID := c.Param("customer_id")
	_, role := middleware.ActorFromContext(c)

	view, err := h.usecase.Status(c.Request.Context(), customerID, role)
	if err != nil {
		log.Printf("[customer][handler] status failed customer_id=%s err=%v", customerID, err)
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomerStatus(view))
}

// AssignSurvey assigns a surveyor to a new request.
func (h *CustomerHandler) AssignSurvey(c *gin.Context) {
	customerID := c.Param("customer_id")
	actorID, role := middleware.ActorFromContext(c)

	var req request.AssignSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[customer][handler] assign-survey invalid payload customer_id=%s err=%v", customerID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.AssignSurvey(c.Request.Context(), customerID, req.SurveyorID, actorID, role)
	if err != nil {
		log.Printf("[customer][handler] assign-survey failed customer_id=%s err=%v", customerID, err)
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[customer][handler] assign-survey success customer_id=%s surveyor_id=%s", customerID, req.SurveyorID)

	c.JSON(http.StatusOK, response.FromCustomer(updated))
}

// ApproveSurvey records the plant admin's approval of a completed survey.
func (h *CustomerHandler) ApproveSurvey(c *gin.Context) {
	h.simpleTransition(c, "approve-survey", h.usecase.ApproveSurvey)
}

// RejectSurvey records a survey rejection; the reason is mandatory.
func (h *CustomerHandler) RejectSurvey(c *gin.Context) {
	h.reasonedTransition(c, "reject-survey", h.usecase.RejectSurvey)
}

// ScheduleInstallation books an installation team for a funded customer.
func (h *CustomerHandler) ScheduleInstallation(c *gin.Context) {
	h.simpleTransition(c, "schedule-installation", h.usecase.ScheduleInstallation)
}

// StartInstallation moves a scheduled installation to started and seeds the
// installation checklist.
func (h *CustomerHandler) StartInstallation(c *gin.Context) {
	h.simpleTransition(c, "start-installation", h.usecase.StartInstallation)
}

// StartQC opens the quality-control review after installation completes.
func (h *CustomerHandler) StartQC(c *gin.Context) {
	h.simpleTransition(c, "start-qc", h.usecase.StartQC)
}

// ApproveQC records a passing QC verdict.
func (h *CustomerHandler) ApproveQC(c *gin.Context) {
	h.simpleTransition(c, "approve-qc", h.usecase.ApproveQC)
}

// RejectQC records a failing QC verdict; the reason is mandatory.
func (h *CustomerHandler) RejectQC(c *gin.Context) {
	h.reasonedTransition(c, "reject-qc", h.usecase.RejectQC)
}

// ReworkQC sends a rejected installation back to the installer.
func (h *CustomerHandler) ReworkQC(c *gin.Context) {
	h.simpleTransition(c, "rework-qc", h.usecase.ReworkQC)
}

// StartCommissioning begins grid connection once QC passed and the final
// milestone is paid.
func (h *CustomerHandler) StartCommissioning(c *gin.Context) {
	h.simpleTransition(c, "start-commissioning", h.usecase.StartCommissioning)
}

func (h *CustomerHandler) simpleTransition(c *gin.Context, op string, fn func(ctx context.Context, customerID, actorID string, role entities.ActorRole) (entities.Customer, error)) {
	customerID := c.Param("customer_id")
	actorID, role := middleware.ActorFromContext(c)

	updated, err := fn(c.Request.Context(), customerID, actorID, role)
	if err != nil {
		log.Printf("[customer][handler] %s failed customer_id=%s role=%s err=%v", op, customerID, role, err)
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[customer][handler] %s success customer_id=%s status=%s", op, customerID, updated.InstallationStatus)

	c.JSON(http.StatusOK, response.FromCustomer(updated))
}

func (h *CustomerHandler) reasonedTransition(c *gin.Context, op string, fn func(ctx context.Context, customerID, reason, actorID string, role entities.ActorRole) (entities.Customer, error)) {
	customerID := c.Param("customer_id")
	actorID, role := middleware.ActorFromContext(c)

	var req request.RejectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[customer][handler] %s invalid payload customer_id=%s err=%v", op, customerID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := fn(c.Request.Context(), customerID, req.ResolveReason(), actorID, role)
	if err != nil {
		log.Printf("[customer][handler] %s failed customer_id=%s role=%s err=%v", op, customerID, role, err)
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[customer][handler] %s success customer_id=%s status=%s", op, customerID, updated.InstallationStatus)

	c.JSON(http.StatusOK, response.FromCustomer(updated))
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidCustomerInput), errors.Is(err, usecase.ErrInvalidSurveyorID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, lifecycle.ErrReasonRequired):
		return pkg.NewDomainErrorSimple("REASON_REQUIRED", "A rejection reason is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrActionNotAllowed):
		return pkg.NewDomainErrorSimple("ACTION_NOT_ALLOWED", "Action not allowed for this role in the current status", http.StatusForbidden)
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Transition not allowed from the current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrFinalMilestonePending):
		return pkg.NewDomainErrorSimple("FINAL_MILESTONE_PENDING", "Final milestone must be paid before commissioning", http.StatusConflict)
	case errors.Is(err, usecase.ErrTeamServiceUnavailable):
		return pkg.NewDomainErrorSimple("TEAM_SERVICE_UNAVAILABLE", "Team assignment service unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
