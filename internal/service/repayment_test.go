package service_test

import (
	"testing"

	"github.com/creditdesk/credit-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepaymentRequiresAcceptedCredit(t *testing.T) {
	svc, _ := newTestService(t)
	client := createClient(t, svc, "Alice Martin", "alice@example.com")

	inProgress, err := svc.CreatePersonalCredit(client.ID, 10000, 24, rate(5.5), "car purchase")
	require.NoError(t, err)
	_, err = svc.CreateMonthlyRepayment(inProgress.ID, 500)
	assert.ErrorIs(t, err, models.ErrCreditNotAccepted)
	_, err = svc.CreateEarlyRepayment(inProgress.ID, 500)
	assert.ErrorIs(t, err, models.ErrCreditNotAccepted)

	rejected, err := svc.CreatePersonalCredit(client.ID, 10000, 24, rate(5.5), "studies")
	require.NoError(t, err)
	_, err = svc.RejectCredit(rejected.ID)
	require.NoError(t, err)
	_, err = svc.CreateMonthlyRepayment(rejected.ID, 500)
	assert.ErrorIs(t, err, models.ErrCreditNotAccepted)

	_, err = svc.CreateMonthlyRepayment(999, 500)
	assert.ErrorIs(t, err, models.ErrCreditNotFound)
}

func TestTotalRepaidSumsAllRepayments(t *testing.T) {
	svc, _ := newTestService(t)
	client := createClient(t, svc, "Alice Martin", "alice@example.com")
	credit := createAcceptedCredit(t, svc, client.ID, 10000, 24, 5.5)

	total, err := svc.TotalRepaidAmount(credit.ID)
	require.NoError(t, err)
	assert.Zero(t, total)

	_, err = svc.CreateMonthlyRepayment(credit.ID, 500)
	require.NoError(t, err)
	_, err = svc.CreateMonthlyRepayment(credit.ID, 500)
	require.NoError(t, err)
	_, err = svc.CreateEarlyRepayment(credit.ID, 1500)
	require.NoError(t, err)

	total, err = svc.TotalRepaidAmount(credit.ID)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, total)

	_, err = svc.TotalRepaidAmount(999)
	assert.ErrorIs(t, err, models.ErrCreditNotFound)
}

func TestRemainingAmountUsesFlatInterestEstimate(t *testing.T) {
	svc, _ := newTestService(t)
	client := createClient(t, svc, "Alice Martin", "alice@example.com")
	credit := createAcceptedCredit(t, svc, client.ID, 10000, 24, 5.5)

	// Estimated total due: 10000 * (1 + (5.5 * 24 / 12) / 100) = 11100
	remaining, err := svc.RemainingAmount(credit.ID)
	require.NoError(t, err)
	assert.InDelta(t, 11100, remaining, 1e-9)

	_, err = svc.CreateMonthlyRepayment(credit.ID, 2500)
	require.NoError(t, err)

	remaining, err = svc.RemainingAmount(credit.ID)
	require.NoError(t, err)
	assert.InDelta(t, 8600, remaining, 1e-9)

	_, err = svc.RemainingAmount(999)
	assert.ErrorIs(t, err, models.ErrCreditNotFound)
}

func TestRemainingAmountNeverGoesNegative(t *testing.T) {
	svc, _ := newTestService(t)
	client := createClient(t, svc, "Alice Martin", "alice@example.com")
	credit := createAcceptedCredit(t, svc, client.ID, 1000, 12, 5.0)

	_, err := svc.CreateEarlyRepayment(credit.ID, 5000)
	require.NoError(t, err)

	remaining, err := svc.RemainingAmount(credit.ID)
	require.NoError(t, err)
	assert.Zero(t, remaining)
}

func TestDeleteRepaymentIsReflectedInTotals(t *testing.T) {
	svc, _ := newTestService(t)
	client := createClient(t, svc, "Alice Martin", "alice@example.com")
	credit := createAcceptedCredit(t, svc, client.ID, 10000, 24, 5.5)

	first, err := svc.CreateMonthlyRepayment(credit.ID, 500)
	require.NoError(t, err)
	_, err = svc.CreateMonthlyRepayment(credit.ID, 700)
	require.NoError(t, err)

	deleted, err := svc.DeleteRepayment(first.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	total, err := svc.TotalRepaidAmount(credit.ID)
	require.NoError(t, err)
	assert.Equal(t, 700.0, total)

	deleted, err = svc.DeleteRepayment(first.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestListRepayments(t *testing.T) {
	svc, _ := newTestService(t)
	client := createClient(t, svc, "Alice Martin", "alice@example.com")
	credit := createAcceptedCredit(t, svc, client.ID, 10000, 24, 5.5)
	other := createAcceptedCredit(t, svc, client.ID, 5000, 12, 6.0)

	monthly, err := svc.CreateMonthlyRepayment(credit.ID, 500)
	require.NoError(t, err)
	early, err := svc.CreateEarlyRepayment(credit.ID, 1500)
	require.NoError(t, err)
	_, err = svc.CreateMonthlyRepayment(other.ID, 400)
	require.NoError(t, err)

	byCredit, err := svc.ListRepaymentsByCredit(credit.ID)
	require.NoError(t, err)
	require.Len(t, byCredit, 2)
	// Chronological creation order
	assert.Equal(t, monthly.ID, byCredit[0].ID)
	assert.Equal(t, early.ID, byCredit[1].ID)

	_, err = svc.ListRepaymentsByCredit(999)
	assert.ErrorIs(t, err, models.ErrCreditNotFound)

	earlyOnly, err := svc.ListRepaymentsByType(models.RepaymentTypeEarly)
	require.NoError(t, err)
	require.Len(t, earlyOnly, 1)
	assert.Equal(t, early.ID, earlyOnly[0].ID)

	monthlyOnly, err := svc.ListRepaymentsByType(models.RepaymentTypeMonthly)
	require.NoError(t, err)
	assert.Len(t, monthlyOnly, 2)
}
