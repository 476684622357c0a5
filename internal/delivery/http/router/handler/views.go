package handler

import (
	"time"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// Response projections of the domain entities. Credentials never leave the
// handler layer; the password hash has no view field to leak through.

type userView struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Role      entity.Role   `json:"role"`
	Status    entity.Status `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func newUserView(u *entity.User) *userView {
	if u == nil {
		return nil
	}

	return &userView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func newUserViews(users []*entity.User) []*userView {
	views := make([]*userView, 0, len(users))
	for _, u := range users {
		views = append(views, newUserView(u))
	}

	return views
}

type authView struct {
	Token string    `json:"token"`
	User  *userView `json:"user"`
}

type invoiceView struct {
	ID            uuid.UUID            `json:"id"`
	InvoiceNumber string               `json:"invoiceNumber"`
	ProviderID    uuid.UUID            `json:"providerId"`
	PurchaserID   uuid.UUID            `json:"purchaserId"`
	Provider      *entity.UserSummary  `json:"provider,omitempty"`
	Purchaser     *entity.UserSummary  `json:"purchaser,omitempty"`
	Items         []entity.InvoiceItem `json:"items"`
	Subtotal      float64              `json:"subtotal"`
	Tax           float64              `json:"tax"`
	Total         float64              `json:"total"`
	Currency      entity.Currency      `json:"currency"`
	Status        entity.InvoiceStatus `json:"status"`
	IssuedDate    time.Time            `json:"issuedDate"`
	DueDate       time.Time            `json:"dueDate"`
	Notes         string               `json:"notes,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

func newInvoiceView(inv *entity.Invoice) *invoiceView {
	if inv == nil {
		return nil
	}

	return &invoiceView{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		ProviderID:    inv.ProviderID,
		PurchaserID:   inv.PurchaserID,
		Provider:      inv.Provider,
		Purchaser:     inv.Purchaser,
		Items:         inv.Items,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Total:         inv.Total,
		Currency:      inv.Currency,
		Status:        inv.Status,
		IssuedDate:    inv.IssuedDate,
		DueDate:       inv.DueDate,
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

func newInvoiceViews(invoices []*entity.Invoice) []*invoiceView {
	views := make([]*invoiceView, 0, len(invoices))
	for _, inv := range invoices {
		views = append(views, newInvoiceView(inv))
	}

	return views
}

type paymentView struct {
	ID          uuid.UUID            `json:"id"`
	InvoiceID   uuid.UUID            `json:"invoiceId"`
	Invoice     *invoiceView         `json:"invoice,omitempty"`
	Amount      float64              `json:"amount"`
	Method      entity.PaymentMethod `json:"method"`
	Status      entity.PaymentStatus `json:"status"`
	PaymentDate time.Time            `json:"paymentDate"`
	Notes       string               `json:"notes,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}

func newPaymentView(p *entity.Payment) *paymentView {
	if p == nil {
		return nil
	}

	return &paymentView{
		ID:          p.ID,
		InvoiceID:   p.InvoiceID,
		Invoice:     newInvoiceView(p.Invoice),
		Amount:      p.Amount,
		Method:      p.Method,
		Status:      p.Status,
		PaymentDate: p.PaymentDate,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
	}
}

func newPaymentViews(payments []*entity.Payment) []*paymentView {
	views := make([]*paymentView, 0, len(payments))
	for _, p := range payments {
		views = append(views, newPaymentView(p))
	}

	return views
}

type activityView struct {
	ID        uuid.UUID           `json:"id"`
	UserID    uuid.UUID           `json:"userId"`
	User      *entity.UserSummary `json:"user,omitempty"`
	Action    entity.Action       `json:"action"`
	IPAddress string              `json:"ipAddress"`
	Timestamp time.Time           `json:"timestamp"`
}

func newActivityViews(entries []*entity.ActivityLog) []*activityView {
	views := make([]*activityView, 0, len(entries))
	for _, e := range entries {
		views = append(views, &activityView{
			ID:        e.ID,
			UserID:    e.UserID,
			User:      e.User,
			Action:    e.Action,
			IPAddress: e.IPAddress,
			Timestamp: e.Timestamp,
		})
	}

	return views
}
