package invoice

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lightlabcreation/gym-backend/internal/logger"
	"github.com/lightlabcreation/gym-backend/internal/metrics"
)

type Service interface {
	ComputeInvoice(ctx context.Context, paymentID int) (*Invoice, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ComputeInvoice(ctx context.Context, paymentID int) (*Invoice, error) {
	rec, err := s.repo.FindPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	b := Compute(rec.Amount, orZero(rec.MemberTax), orZero(rec.Discount))

	inv := &Invoice{
		PaymentID:   rec.PaymentID,
		InvoiceNo:   rec.InvoiceNo,
		PaymentDate: rec.PaymentDate,
		PaymentMode: rec.PaymentMode,
		Member: Member{
			ID:             rec.MemberID,
			Name:           rec.MemberName,
			Email:          rec.MemberEmail,
			Phone:          rec.MemberPhone,
			Address:        rec.MemberAddress,
			MembershipFrom: rec.MembershipFrom,
			MembershipTo:   rec.MembershipTo,
		},
		Branch: Branch{
			ID:      rec.BranchID,
			Name:    rec.BranchName,
			Address: rec.BranchAddress,
		},
		Plan: Plan{
			ID:       rec.PlanID,
			Name:     rec.PlanName,
			Price:    floatOrNil(rec.PlanPrice),
			Duration: rec.PlanDuration,
			Validity: rec.PlanValidity,
		},
		Gym: Gym{
			AdminID:   rec.AdminID,
			Name:      gymName(rec),
			Address:   rec.AdminGymAddress,
			GSTNumber: rec.AdminGSTNumber,
			Phone:     rec.AdminPhone,
			Email:     rec.AdminEmail,
		},
		Subtotal:      b.Subtotal.InexactFloat64(),
		TaxRate:       b.TaxRate.InexactFloat64(),
		TaxAmount:     b.TaxAmount.InexactFloat64(),
		CGSTAmount:    b.CGST.InexactFloat64(),
		SGSTAmount:    b.SGST.InexactFloat64(),
		Discount:      b.Discount.InexactFloat64(),
		TotalAmount:   b.TotalAmount.InexactFloat64(),
		AmountInWords: AmountInWords(b.TotalAmount),
	}

	metrics.RecordInvoiceGenerated()
	logger.Debug("invoice computed", "payment_id", paymentID, "invoice_no", rec.InvoiceNo)
	return inv, nil
}

func orZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

func floatOrNil(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}

// gymName prefers the name from app settings over the one on the admin user.
func gymName(rec *Record) *string {
	if rec.SettingsGymName != nil && *rec.SettingsGymName != "" {
		return rec.SettingsGymName
	}
	return rec.AdminGymName
}
