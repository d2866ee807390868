package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is a payment joined with the member, branch, plan and admin rows an
// invoice prints. Everything except the payment itself may be missing.
type Record struct {
	PaymentID   int                 `db:"payment_id"`
	Amount      decimal.Decimal     `db:"amount"`
	InvoiceNo   string              `db:"invoice_no"`
	PaymentDate time.Time           `db:"payment_date"`
	PaymentMode *string             `db:"payment_mode"`
	MemberTax   decimal.NullDecimal `db:"member_tax"`
	Discount    decimal.NullDecimal `db:"member_discount"`

	MemberID       *int       `db:"member_id"`
	MemberName     *string    `db:"member_name"`
	MemberEmail    *string    `db:"member_email"`
	MemberPhone    *string    `db:"member_phone"`
	MemberAddress  *string    `db:"member_address"`
	MembershipFrom *time.Time `db:"membership_from"`
	MembershipTo   *time.Time `db:"membership_to"`
	AdminID        *int       `db:"admin_id"`

	BranchID      *int    `db:"branch_id"`
	BranchName    *string `db:"branch_name"`
	BranchAddress *string `db:"branch_address"`

	PlanID       *int                `db:"plan_id"`
	PlanName     *string             `db:"plan_name"`
	PlanPrice    decimal.NullDecimal `db:"plan_price"`
	PlanDuration *string             `db:"plan_duration"`
	PlanValidity *int                `db:"plan_validity"`

	AdminName       *string `db:"admin_name"`
	AdminGymName    *string `db:"admin_gym_name"`
	AdminGymAddress *string `db:"admin_gym_address"`
	AdminGSTNumber  *string `db:"admin_gst_number"`
	AdminPhone      *string `db:"admin_phone"`
	AdminEmail      *string `db:"admin_email"`
	SettingsGymName *string `db:"settings_gym_name"`
}

// Breakdown is the tax split of an amount that already includes tax and
// discount.
type Breakdown struct {
	Subtotal    decimal.Decimal
	TaxRate     decimal.Decimal
	TaxAmount   decimal.Decimal
	CGST        decimal.Decimal
	SGST        decimal.Decimal
	Discount    decimal.Decimal
	TotalAmount decimal.Decimal
}

type Member struct {
	ID             *int       `json:"id"`
	Name           *string    `json:"name"`
	Email          *string    `json:"email"`
	Phone          *string    `json:"phone"`
	Address        *string    `json:"address"`
	MembershipFrom *time.Time `json:"membershipFrom"`
	MembershipTo   *time.Time `json:"membershipTo"`
}

type Branch struct {
	ID      *int    `json:"id"`
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

type Plan struct {
	ID       *int     `json:"id"`
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Duration *string  `json:"duration"`
	Validity *int     `json:"validityDays"`
}

type Gym struct {
	AdminID   *int    `json:"adminId"`
	Name      *string `json:"name"`
	Address   *string `json:"address"`
	GSTNumber *string `json:"gstNumber"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

type Invoice struct {
	PaymentID   int       `json:"paymentId"`
	InvoiceNo   string    `json:"invoiceNo"`
	PaymentDate time.Time `json:"paymentDate"`
	PaymentMode *string   `json:"paymentMode"`

	Member Member `json:"member"`
	Branch Branch `json:"branch"`
	Plan   Plan   `json:"plan"`
	Gym    Gym    `json:"gym"`

	Subtotal      float64 `json:"subtotal" example:"1000"`
	TaxRate       float64 `json:"taxRate" example:"18"`
	TaxAmount     float64 `json:"taxAmount" example:"180"`
	CGSTAmount    float64 `json:"cgstAmount" example:"90"`
	SGSTAmount    float64 `json:"sgstAmount" example:"90"`
	Discount      float64 `json:"discount" example:"0"`
	TotalAmount   float64 `json:"totalAmount" example:"1180"`
	AmountInWords string  `json:"amountInWords" example:"one thousand one hundred eighty only"`
}
