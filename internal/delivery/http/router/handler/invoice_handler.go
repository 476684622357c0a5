package handler

import (
	"log/slog"
	"net/http"
	"time"

	"ledger/internal/delivery/http/middleware"
	"ledger/internal/delivery/http/response"
	"ledger/internal/domain/entity"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type invoiceItemRequest struct {
	Description string  `json:"description" validate:"required"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unitPrice" validate:"gte=0"`
}

type createInvoiceRequest struct {
	PurchaserID uuid.UUID            `json:"purchaserId" validate:"required"`
	Items       []invoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	Currency    string               `json:"currency" validate:"required"`
	Tax         float64              `json:"tax" validate:"gte=0"`
	DueDate     time.Time            `json:"dueDate" validate:"required"`
	Notes       string               `json:"notes"`
}

type updateInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=paid overdue defaulted"`
}

// InvoiceHandler holds dependencies for invoice handlers.
type InvoiceHandler struct {
	uc     usecase.InvoiceUsecase
	logger *slog.Logger
}

// NewInvoiceHandler is the constructor for InvoiceHandler, injected by Fx.
func NewInvoiceHandler(uc usecase.InvoiceUsecase, logger *slog.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateInvoice handles the invoice creation request. The authenticated caller
// is always the issuing provider.
func (h *InvoiceHandler) CreateInvoice(c echo.Context) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	req := new(createInvoiceRequest)
	if err := c.Bind(req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invoice input")
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	items := make([]usecase.InvoiceItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.InvoiceItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	invoice, err := h.uc.CreateInvoice(c.Request().Context(), actor, &usecase.CreateInvoiceInput{
		PurchaserID: req.PurchaserID,
		Items:       items,
		Currency:    entity.Currency(req.Currency),
		Tax:         req.Tax,
		DueDate:     req.DueDate,
		Notes:       req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newInvoiceView(invoice), "Invoice created successfully")
}

// ListInvoices returns the invoices visible to the caller, scoped by role.
func (h *InvoiceHandler) ListInvoices(c echo.Context) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	invoices, err := h.uc.ListInvoices(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newInvoiceViews(invoices), "Invoices retrieved successfully")
}

// GetInvoice returns a single invoice with its line items and parties.
func (h *InvoiceHandler) GetInvoice(c echo.Context) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid invoice ID")
	}

	invoice, err := h.uc.GetInvoice(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newInvoiceView(invoice), "Invoice retrieved successfully")
}

// UpdateStatus moves an invoice out of the pending state.
func (h *InvoiceHandler) UpdateStatus(c echo.Context) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid invoice ID")
	}

	req := new(updateInvoiceStatusRequest)
	if err := c.Bind(req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	invoice, err := h.uc.UpdateStatus(c.Request().Context(), actor, id, entity.InvoiceStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newInvoiceView(invoice), "Invoice status updated successfully")
}

// ListInvoicePayments returns the payments recorded against an invoice.
func (h *InvoiceHandler) ListInvoicePayments(c echo.Context) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid invoice ID")
	}

	payments, err := h.uc.ListInvoicePayments(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPaymentViews(payments), "Payments retrieved successfully")
}

// InvoiceQR renders the invoice's payment reference as a PNG QR code.
func (h *InvoiceHandler) InvoiceQR(c echo.Context) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid invoice ID")
	}

	png, err := h.uc.InvoiceQR(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
