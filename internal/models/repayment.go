package models

import "time"

// RepaymentType distinguishes scheduled payments from prepayments
type RepaymentType string

const (
	RepaymentTypeMonthly RepaymentType = "MONTHLY_PAYMENT"
	RepaymentTypeEarly   RepaymentType = "EARLY_REPAYMENT"
)

// ParseRepaymentType validates a repayment type supplied as a path parameter
func ParseRepaymentType(s string) (RepaymentType, bool) {
	switch RepaymentType(s) {
	case RepaymentTypeMonthly, RepaymentTypeEarly:
		return RepaymentType(s), true
	}
	return "", false
}

// Repayment represents a single payment event against an accepted credit.
// Repayments are immutable once created, they can only be deleted.
type Repayment struct {
	ID       int64         `json:"id"`
	CreditID int64         `json:"credit_id"`
	Date     time.Time     `json:"date"`
	Amount   float64       `json:"amount"`
	Type     RepaymentType `json:"type"`
}
