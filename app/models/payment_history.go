package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// PaymentAccountType tags the account side of a payment record. The original
// system resolved this dynamically; here it is a closed union over the two
// account kinds, handled exhaustively wherever it is switched on.
type PaymentAccountType string

const (
	PaymentAccountTenant PaymentAccountType = "tenant"
	PaymentAccountMember PaymentAccountType = "member"
)

const (
	PaymentMethodCash         = "cash"
	PaymentMethodCard         = "card"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCheck        = "check"
	PaymentMethodPaypal       = "paypal"
	PaymentMethodStripe       = "stripe"
	PaymentMethodDirectDebit  = "direct_debit"
)

const (
	PaymentStatusPending       = "pending"
	PaymentStatusCompleted     = "completed"
	PaymentStatusFailed        = "failed"
	PaymentStatusRefunded      = "refunded"
	PaymentStatusPartialRefund = "partial_refund"
	PaymentStatusCancelled     = "cancelled"
)

const (
	PaymentTypeMembershipFee = "membership_fee"
	PaymentTypeGradingFee    = "grading_fee"
	PaymentTypeEquipment     = "equipment"
	PaymentTypeEventFee      = "event_fee"
	PaymentTypeSubscription  = "subscription"
	PaymentTypeLateFee       = "late_fee"
	PaymentTypeRefund        = "refund"
	PaymentTypeAdjustment    = "adjustment"
)

// PaymentHistory records a payment against either a tenant account or a
// member account.
type PaymentHistory struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	AccountType PaymentAccountType `gorm:"type:varchar(20);index:idx_payment_account" json:"account_type" validate:"required,oneof=tenant member"`
	AccountID   uint               `gorm:"index:idx_payment_account" json:"account_id" validate:"required"`

	Amount      float64    `gorm:"type:decimal(10,2)" json:"amount"`
	Currency    string     `gorm:"type:varchar(3);default:'USD'" json:"currency" validate:"required,len=3"`
	PaymentDate time.Time  `gorm:"type:timestamp;index" json:"payment_date" validate:"required"`
	DueDate     *time.Time `gorm:"type:date" json:"due_date"`

	PaymentMethod        string  `gorm:"type:varchar(50)" json:"payment_method" validate:"required,oneof=cash card bank_transfer check paypal stripe direct_debit"`
	TransactionReference string  `gorm:"type:varchar(100);index" json:"transaction_reference" validate:"max=100"`
	ProcessorFee         float64 `gorm:"type:decimal(8,2);default:0" json:"processor_fee"`

	PaymentStatus string `gorm:"type:varchar(20);default:'pending';index" json:"payment_status" validate:"oneof=pending completed failed refunded partial_refund cancelled"`
	PaymentType   string `gorm:"type:varchar(50);index" json:"payment_type" validate:"required,oneof=membership_fee grading_fee equipment event_fee subscription late_fee refund adjustment"`

	InvoiceNumber string `gorm:"type:varchar(50);index" json:"invoice_number" validate:"max=50"`
	Description   string `gorm:"type:text" json:"description"`
	Notes         string `gorm:"type:text" json:"-"`

	CreatedByID *uint     `json:"created_by_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PaymentHistory) TableName() string {
	return "accounts_payment_history"
}

// IsRefund reports whether this is a refund-class transaction.
func (p *PaymentHistory) IsRefund() bool {
	return p.Amount < 0 ||
		p.PaymentStatus == PaymentStatusRefunded ||
		p.PaymentStatus == PaymentStatusPartialRefund
}

func (p *PaymentHistory) hasRefundStatus() bool {
	return p.PaymentStatus == PaymentStatusRefunded || p.PaymentStatus == PaymentStatusPartialRefund
}

// Validate enforces the status/amount/date consistency rules.
func (p *PaymentHistory) Validate() error {
	v := validator.New()
	if err := v.Struct(p); err != nil {
		return err
	}

	if p.Amount < 0 && !p.hasRefundStatus() {
		return NewValidationError("payment_status", "negative amounts require refund status")
	}
	if p.ProcessorFee < 0 {
		return NewValidationError("processor_fee", "processor fee cannot be negative")
	}
	if p.PaymentDate.After(time.Now()) && p.PaymentStatus != PaymentStatusPending {
		return NewValidationError("payment_date", "future payment dates are only allowed for pending payments")
	}
	return nil
}
