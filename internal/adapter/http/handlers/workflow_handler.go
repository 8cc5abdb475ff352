package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "github.com/Rehan72/sol-sub000/internal/adapter/http/dto/request"
	response "github.com/Rehan72/sol-sub000/internal/adapter/http/dto/response"
	"github.com/Rehan72/sol-sub000/internal/adapter/http/middleware"
	"github.com/Rehan72/sol-sub000/internal/domain/entities"
	"github.com/Rehan72/sol-sub000/internal/domain/lifecycle"
	"github.com/Rehan72/sol-sub000/internal/usecase"
	"github.com/Rehan72/sol-sub000/pkg"

	"github.com/gin-gonic/gin"
)

// WorkflowHandler exposes the per-phase step checklists.

type WorkflowHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewWorkflowHandler(uc usecase.IWorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc}
}

// ListSteps returns the checklist for one phase.
func (h *WorkflowHandler) ListSteps(c *gin.Context) {
	customerID := c.Param("customer_id")

	phase, ok := parsePhase(c.Param("phase"))
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNKNOWN_PHASE", "Unknown phase", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	steps, err := h.usecase.ListSteps(c.Request.Context(), customerID, phase)
	if err != nil {
		log.Printf("[workflow][handler] list failed customer_id=%s phase=%s err=%v", customerID, phase, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkflowSteps(steps))
}

// CompleteStep completes the named step and promotes the next one. The last
// step of a phase also advances the customer's lifecycle.
func (h *WorkflowHandler) CompleteStep(c *gin.Context) {
	customerID := c.Param("customer_id")
	actorID, role := middleware.ActorFromContext(c)

	phase, ok := parsePhase(c.Param("phase"))
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNKNOWN_PHASE", "Unknown phase", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var req request.CompleteStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[workflow][handler] complete invalid payload customer_id=%s phase=%s err=%v", customerID, phase, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	steps, err := h.usecase.CompleteStep(c.Request.Context(), customerID, phase, req.StepID, actorID, role)
	if err != nil {
		log.Printf("[workflow][handler] complete failed customer_id=%s phase=%s step_id=%s err=%v", customerID, phase, req.StepID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[workflow][handler] complete success customer_id=%s phase=%s step_id=%s", customerID, phase, req.StepID)

	c.JSON(http.StatusOK, response.FromWorkflowSteps(steps))
}

func parsePhase(raw string) (entities.Phase, bool) {
	switch entities.Phase(strings.ToUpper(strings.TrimSpace(raw))) {
	case entities.PhaseSurvey:
		return entities.PhaseSurvey, true
	case entities.PhaseInstallation:
		return entities.PhaseInstallation, true
	case entities.PhaseCommissioning:
		return entities.PhaseCommissioning, true
	case entities.PhaseLive:
		return entities.PhaseLive, true
	}
	return "", false
}

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, lifecycle.ErrUnknownPhase):
		return pkg.NewDomainErrorSimple("UNKNOWN_PHASE", "Unknown phase", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, lifecycle.ErrUnknownStep):
		return pkg.NewDomainErrorSimple("UNKNOWN_STEP", "Unknown step for this phase", http.StatusNotFound)
	case errors.Is(err, usecase.ErrActionNotAllowed):
		return pkg.NewDomainErrorSimple("ACTION_NOT_ALLOWED", "Action not allowed for this role in the current status", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPhaseNotInitialized):
		return pkg.NewDomainErrorSimple("PHASE_NOT_INITIALIZED", "Phase checklist is not initialized", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrNotInProgress):
		return pkg.NewDomainErrorSimple("STEP_NOT_IN_PROGRESS", "Step is not in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrStepUpdateConflict):
		return pkg.NewDomainErrorSimple("STEP_UPDATE_CONFLICT", "Step was updated concurrently", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
