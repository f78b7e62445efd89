package models_test

import (
	"testing"

	"github.com/creditdesk/credit-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestParseCreditStatus(t *testing.T) {
	for _, s := range []string{"IN_PROGRESS", "ACCEPTED", "REJECTED"} {
		status, ok := models.ParseCreditStatus(s)
		assert.True(t, ok)
		assert.Equal(t, models.CreditStatus(s), status)
	}

	for _, s := range []string{"", "accepted", "PENDING"} {
		_, ok := models.ParseCreditStatus(s)
		assert.False(t, ok, "expected %q to be rejected", s)
	}
}

func TestParseRepaymentType(t *testing.T) {
	for _, s := range []string{"MONTHLY_PAYMENT", "EARLY_REPAYMENT"} {
		rt, ok := models.ParseRepaymentType(s)
		assert.True(t, ok)
		assert.Equal(t, models.RepaymentType(s), rt)
	}

	_, ok := models.ParseRepaymentType("WEEKLY")
	assert.False(t, ok)
}
