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

type createPaymentRequest struct {
	InvoiceID   uuid.UUID `json:"invoiceId" validate:"required"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Method      string    `json:"method" validate:"required"`
	PaymentDate time.Time `json:"paymentDate"`
	Notes       string    `json:"notes"`
}

// PaymentHandler holds dependencies for payment handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreatePayment records a payment against an invoice and reconciles it.
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	req := new(createPaymentRequest)
	if err := c.Bind(req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	payment, err := h.uc.CreatePayment(c.Request().Context(), actor, &usecase.CreatePaymentInput{
		InvoiceID:   req.InvoiceID,
		Amount:      req.Amount,
		Method:      entity.PaymentMethod(req.Method),
		PaymentDate: req.PaymentDate,
		Notes:       req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newPaymentView(payment), "Payment recorded successfully")
}

// ListUserPayments returns the payments on the invoices the caller participates in.
func (h *PaymentHandler) ListUserPayments(c echo.Context) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	payments, err := h.uc.ListUserPayments(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPaymentViews(payments), "Payments retrieved successfully")
}
