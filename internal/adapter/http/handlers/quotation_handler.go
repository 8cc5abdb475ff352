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

// QuotationHandler exposes the quotation approval chain.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// CreateQuotation drafts a quotation for a surveyed customer.
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	actorID, role := middleware.ActorFromContext(c)

	var req request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[quotation][handler] create invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateDraft(c.Request.Context(), req.CustomerID, req.Total, actorID, role)
	if err != nil {
		log.Printf("[quotation][handler] create failed customer_id=%s err=%v", req.CustomerID, err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quotation][handler] create success quotation_id=%s customer_id=%s total=%d", created.ID, created.CustomerID, created.Total)

	c.JSON(http.StatusCreated, response.FromQuotation(created))
}

// GetQuotation returns a single quotation.
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	quotationID := c.Param("quotation_id")

	found, err := h.usecase.GetByID(c.Request.Context(), quotationID)
	if err != nil {
		log.Printf("[quotation][handler] get failed quotation_id=%s err=%v", quotationID, err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(found))
}

// GetLatestForCustomer returns the customer's current quotation.
func (h *QuotationHandler) GetLatestForCustomer(c *gin.Context) {
	customerID := c.Param("customer_id")

	found, err := h.usecase.GetLatestByCustomerID(c.Request.Context(), customerID)
	if err != nil {
		log.Printf("[quotation][handler] get-latest failed customer_id=%s err=%v", customerID, err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(found))
}

// SubmitQuotation moves a draft into the approval chain.
func (h *QuotationHandler) SubmitQuotation(c *gin.Context) {
	h.transition(c, "submit", h.usecase.Submit)
}

// ApproveQuotation advances the quotation one approval stage for the caller's
// role. A super admin approving from the plant stage finalizes directly.
func (h *QuotationHandler) ApproveQuotation(c *gin.Context) {
	h.transition(c, "approve", h.usecase.Approve)
}

// RejectQuotation rejects the quotation with a mandatory reason.
func (h *QuotationHandler) RejectQuotation(c *gin.Context) {
	quotationID := c.Param("quotation_id")
	actorID, role := middleware.ActorFromContext(c)

	var req request.RejectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[quotation][handler] reject invalid payload quotation_id=%s err=%v", quotationID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Reject(c.Request.Context(), quotationID, req.ResolveReason(), actorID, role)
	if err != nil {
		log.Printf("[quotation][handler] reject failed quotation_id=%s role=%s err=%v", quotationID, role, err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quotation][handler] reject success quotation_id=%s", quotationID)

	c.JSON(http.StatusOK, response.FromQuotation(updated))
}

func (h *QuotationHandler) transition(c *gin.Context, op string, fn func(ctx context.Context, quotationID, actorID string, role entities.ActorRole) (entities.Quotation, error)) {
	quotationID := c.Param("quotation_id")
	actorID, role := middleware.ActorFromContext(c)

	updated, err := fn(c.Request.Context(), quotationID, actorID, role)
	if err != nil {
		log.Printf("[quotation][handler] %s failed quotation_id=%s role=%s err=%v", op, quotationID, role, err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quotation][handler] %s success quotation_id=%s status=%s", op, quotationID, updated.Status)

	c.JSON(http.StatusOK, response.FromQuotation(updated))
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrInvalidQuotationTotal), errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, lifecycle.ErrReasonRequired):
		return pkg.NewDomainErrorSimple("REASON_REQUIRED", "A rejection reason is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrActionNotAllowed):
		return pkg.NewDomainErrorSimple("ACTION_NOT_ALLOWED", "Action not allowed for this role in the current status", http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuotationStillActive):
		return pkg.NewDomainErrorSimple("QUOTATION_STILL_ACTIVE", "Customer already has an active quotation", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrAlreadyFinalized):
		return pkg.NewDomainErrorSimple("ALREADY_FINALIZED", "Quotation is already finalized", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Transition not allowed from the current status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
