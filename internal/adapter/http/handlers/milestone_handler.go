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

// MilestoneHandler exposes the derived payment plan and the payment ledger.

type MilestoneHandler struct {
	usecase usecase.IMilestoneUseCase
}

func NewMilestoneHandler(uc usecase.IMilestoneUseCase) *MilestoneHandler {
	return &MilestoneHandler{usecase: uc}
}

// GetMilestones returns the four-milestone payment plan derived from the
// latest quotation, the customer's progress and the ledger.
func (h *MilestoneHandler) GetMilestones(c *gin.Context) {
	customerID := c.Param("customer_id")

	milestones, err := h.usecase.ComputeMilestones(c.Request.Context(), customerID)
	if err != nil {
		log.Printf("[milestone][handler] compute failed customer_id=%s err=%v", customerID, err)
		appErr := mapMilestoneError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMilestones(milestones))
}

// RecordPayment pays the milestone named in the path. The amount must match
// the derived milestone amount exactly; a retry surfaces as a duplicate.
func (h *MilestoneHandler) RecordPayment(c *gin.Context) {
	customerID := c.Param("customer_id")
	milestoneID := entities.MilestoneID(strings.ToUpper(strings.TrimSpace(c.Param("milestone_id"))))
	actorID, role := middleware.ActorFromContext(c)
	log.Printf("[milestone][handler] pay start customer_id=%s milestone_id=%s", customerID, milestoneID)

	var req request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[milestone][handler] pay invalid payload customer_id=%s milestone_id=%s err=%v", customerID, milestoneID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	paid, err := h.usecase.RecordPayment(c.Request.Context(), customerID, milestoneID, req.Amount, req.ResolvePayload(), actorID, role)
	if err != nil {
		log.Printf("[milestone][handler] pay failed customer_id=%s milestone_id=%s err=%v", customerID, milestoneID, err)
		appErr := mapMilestoneError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[milestone][handler] pay success customer_id=%s milestone_id=%s payment_id=%s amount=%d", customerID, milestoneID, paid.ID, paid.Amount)

	c.JSON(http.StatusCreated, response.FromPayment(paid))
}

// ListPayments returns the customer's ledger entries.
func (h *MilestoneHandler) ListPayments(c *gin.Context) {
	customerID := c.Param("customer_id")

	payments, err := h.usecase.ListPayments(c.Request.Context(), customerID)
	if err != nil {
		log.Printf("[milestone][handler] list-payments failed customer_id=%s err=%v", customerID, err)
		appErr := mapMilestoneError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func mapMilestoneError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidMilestoneID), errors.Is(err, usecase.ErrInvalidPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "No approved quotation for this customer", http.StatusNotFound)
	case errors.Is(err, usecase.ErrActionNotAllowed):
		return pkg.NewDomainErrorSimple("ACTION_NOT_ALLOWED", "Action not allowed for this role in the current status", http.StatusForbidden)
	case errors.Is(err, lifecycle.ErrDuplicatePayment):
		return pkg.NewDomainErrorSimple("DUPLICATE_PAYMENT", "Milestone is already paid", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrMilestoneNotDue):
		return pkg.NewDomainErrorSimple("MILESTONE_NOT_DUE", "Milestone is not due yet", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrAmountMismatch):
		return pkg.NewDomainErrorSimple("AMOUNT_MISMATCH", "Amount does not match the milestone amount", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentInFlight):
		return pkg.NewDomainErrorSimple("PAYMENT_IN_FLIGHT", "A payment for this milestone is already in flight", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
