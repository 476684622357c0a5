package handler

import (
	"log/slog"
	"net/http"

	"ledger/internal/delivery/http/response"
	"ledger/internal/domain/entity"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type updateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// AdminHandler holds dependencies for platform administration handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListAllUsers returns every account on the platform.
func (h *AdminHandler) ListAllUsers(c echo.Context) error {
	users, err := h.uc.ListAllUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserViews(users), "Users retrieved successfully")
}

// ListAllInvoices returns every invoice on the platform.
func (h *AdminHandler) ListAllInvoices(c echo.Context) error {
	invoices, err := h.uc.ListAllInvoices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newInvoiceViews(invoices), "Invoices retrieved successfully")
}

// SystemStats returns the admin dashboard aggregates.
func (h *AdminHandler) SystemStats(c echo.Context) error {
	stats, err := h.uc.SystemStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Statistics retrieved successfully")
}

// RecentActivity returns the latest authentication events.
func (h *AdminHandler) RecentActivity(c echo.Context) error {
	entries, err := h.uc.RecentActivity(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newActivityViews(entries), "Activity retrieved successfully")
}

// UpdateUserStatus activates or deactivates an account.
func (h *AdminHandler) UpdateUserStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	req := new(updateUserStatusRequest)
	if err := c.Bind(req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateUserStatus(c.Request().Context(), id, entity.Status(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "User status updated successfully")
}

// DeleteUser removes an account with the same cascade as self-service deletion.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}
