package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GulfDevInnovations/royal-academy/internal/model"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *model.Payment) error
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*model.Payment, error)
	// Update saves status, method, invoice and paid_at of p.
	Update(ctx context.Context, p *model.Payment) error
	CreateInvoice(ctx context.Context, inv *model.Invoice) error
}

type GormPaymentRepository struct {
	db *gorm.DB
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

func (r *GormPaymentRepository) Create(ctx context.Context, p *model.Payment) error {
	return wrap(r.db.WithContext(ctx).Omit("Booking", "Invoice").Create(p).Error, "create payment")
}

func (r *GormPaymentRepository) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*model.Payment, error) {
	var p model.Payment
	if err := r.db.WithContext(ctx).First(&p, "booking_id = ?", bookingID).Error; err != nil {
		return nil, wrap(err, "get payment")
	}
	return &p, nil
}

func (r *GormPaymentRepository) Update(ctx context.Context, p *model.Payment) error {
	err := r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"status":     p.Status,
			"method":     p.Method,
			"invoice_id": p.InvoiceID,
			"paid_at":    p.PaidAt,
		}).Error
	return wrap(err, "update payment")
}

func (r *GormPaymentRepository) CreateInvoice(ctx context.Context, inv *model.Invoice) error {
	return wrap(r.db.WithContext(ctx).Omit("Student").Create(inv).Error, "create invoice")
}
