package service_test

import (
	"testing"
	"time"

	"github.com/creditdesk/credit-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCreditUnknownClientFailsForAllVariants(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreatePersonalCredit(42, 10000, 24, rate(5.5), "studies")
	assert.ErrorIs(t, err, models.ErrClientNotFound)

	_, err = svc.CreateProfessionalCredit(42, 50000, 36, rate(4.0), "equipment", "ACME SARL")
	assert.ErrorIs(t, err, models.ErrClientNotFound)

	_, err = svc.CreateRealEstateCredit(42, 250000, 240, rate(3.2),
		models.PropertyTypeApartment, "12 rue de la Paix, Paris", 300000)
	assert.ErrorIs(t, err, models.ErrClientNotFound)
}

func TestCreateCreditStartsInProgress(t *testing.T) {
	svc, _ := newTestService(t)
	client := createClient(t, svc, "Alice Martin", "alice@example.com")

	before := time.Now()
	credit, err := svc.CreatePersonalCredit(client.ID, 10000, 24, rate(5.5), "car purchase")
	require.NoError(t, err)

	assert.NotZero(t, credit.ID)
	assert.Equal(t, models.CreditStatusInProgress, credit.Status)
	assert.Nil(t, credit.AcceptanceDate)
	assert.False(t, credit.RequestDate.Before(before))
	assert.Equal(t, models.CreditTypePersonal, credit.Type)
	require.NotNil(t, credit.Personal)
	assert.Equal(t, "car purchase", credit.Personal.Reason)
	assert.Nil(t, credit.Professional)
	assert.Nil(t, credit.RealEstate)
}

func TestCreateCreditVariantPayloads(t *testing.T) {
	svc, _ := newTestService(t)
	client := createClient(t, svc, "Alice Martin", "alice@example.com")

	pro, err := svc.CreateProfessionalCredit(client.ID, 50000, 36, rate(4.0), "new machines", "ACME SARL")
	require.NoError(t, err)
	assert.Equal(t, models.CreditTypeProfessional, pro.Type)
	require.NotNil(t, pro.Professional)
	assert.Equal(t, "ACME SARL", pro.Professional.CompanyName)

	estate, err := svc.CreateRealEstateCredit(client.ID, 250000, 240, rate(3.2),
		models.PropertyTypeHouse, "3 chemin des Vignes, Lyon", 320000)
	require.NoError(t, err)
	assert.Equal(t, models.CreditTypeRealEstate, estate.Type)
	require.NotNil(t, estate.RealEstate)
	assert.Equal(t, models.PropertyTypeHouse, estate.RealEstate.PropertyType)
	assert.Equal(t, 320000.0, estate.RealEstate.PropertyValue)
}

func TestCreateCreditWithoutRateUsesKeyRate(t *testing.T) {
	svc, _ := newTestService(t)
	client := createClient(t, svc, "Alice Martin", "alice@example.com")

	credit, err := svc.CreatePersonalCredit(client.ID, 10000, 24, nil, "renovation")
	require.NoError(t, err)
	assert.Equal(t, testKeyRate, credit.InterestRate)

	// An explicit zero rate is taken as-is, not replaced by the key rate
	credit, err = svc.CreatePersonalCredit(client.ID, 10000, 24, rate(0), "renovation")
	require.NoError(t, err)
	assert.Equal(t, 0.0, credit.InterestRate)
}

func TestApproveCreditStampsAcceptanceDate(t *testing.T) {
	svc, _ := newTestService(t)
	client := createClient(t, svc, "Alice Martin", "alice@example.com")
	credit, err := svc.CreatePersonalCredit(client.ID, 10000, 24, rate(5.5), "car purchase")
	require.NoError(t, err)

	before := time.Now()
	approved, err := svc.ApproveCredit(credit.ID)
	require.NoError(t, err)

	assert.Equal(t, models.CreditStatusAccepted, approved.Status)
	require.NotNil(t, approved.AcceptanceDate)
	assert.False(t, approved.AcceptanceDate.Before(before))

	stored, err := svc.GetCreditByID(credit.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CreditStatusAccepted, stored.Status)
}

func TestRejectCreditNeverSetsAcceptanceDate(t *testing.T) {
	svc, _ := newTestService(t)
	client := createClient(t, svc, "Alice Martin", "alice@example.com")
	credit, err := svc.CreatePersonalCredit(client.ID, 10000, 24, rate(5.5), "car purchase")
	require.NoError(t, err)

	rejected, err := svc.RejectCredit(credit.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CreditStatusRejected, rejected.Status)
	assert.Nil(t, rejected.AcceptanceDate)
}

func TestDecidedCreditsCannotBeDecidedAgain(t *testing.T) {
	svc, _ := newTestService(t)
	client := createClient(t, svc, "Alice Martin", "alice@example.com")

	accepted, err := svc.CreatePersonalCredit(client.ID, 10000, 24, rate(5.5), "car purchase")
	require.NoError(t, err)
	_, err = svc.ApproveCredit(accepted.ID)
	require.NoError(t, err)

	_, err = svc.ApproveCredit(accepted.ID)
	assert.ErrorIs(t, err, models.ErrCreditFinalized)
	_, err = svc.RejectCredit(accepted.ID)
	assert.ErrorIs(t, err, models.ErrCreditFinalized)

	rejected, err := svc.CreatePersonalCredit(client.ID, 8000, 12, rate(6.0), "studies")
	require.NoError(t, err)
	_, err = svc.RejectCredit(rejected.ID)
	require.NoError(t, err)

	_, err = svc.ApproveCredit(rejected.ID)
	assert.ErrorIs(t, err, models.ErrCreditFinalized)

	_, err = svc.ApproveCredit(999)
	assert.ErrorIs(t, err, models.ErrCreditNotFound)
	_, err = svc.RejectCredit(999)
	assert.ErrorIs(t, err, models.ErrCreditNotFound)
}

func TestListCreditsByClientAndStatus(t *testing.T) {
	svc, _ := newTestService(t)
	alice := createClient(t, svc, "Alice Martin", "alice@example.com")
	bob := createClient(t, svc, "Bob Morane", "bob@example.com")

	first, err := svc.CreatePersonalCredit(alice.ID, 10000, 24, rate(5.5), "car purchase")
	require.NoError(t, err)
	_, err = svc.CreatePersonalCredit(bob.ID, 5000, 12, rate(7.0), "studies")
	require.NoError(t, err)
	_, err = svc.ApproveCredit(first.ID)
	require.NoError(t, err)

	all, err := svc.ListCredits()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	aliceCredits, err := svc.ListCreditsByClient(alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceCredits, 1)
	assert.Equal(t, first.ID, aliceCredits[0].ID)

	accepted, err := svc.ListCreditsByStatus(models.CreditStatusAccepted)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, first.ID, accepted[0].ID)

	inProgress, err := svc.ListCreditsByStatus(models.CreditStatusInProgress)
	require.NoError(t, err)
	assert.Len(t, inProgress, 1)
}

func TestCreditStatistics(t *testing.T) {
	svc, _ := newTestService(t)
	client := createClient(t, svc, "Alice Martin", "alice@example.com")

	personal, err := svc.CreatePersonalCredit(client.ID, 1000, 12, rate(5.0), "studies")
	require.NoError(t, err)
	secondPersonal, err := svc.CreatePersonalCredit(client.ID, 2000, 12, rate(5.0), "renovation")
	require.NoError(t, err)
	professional, err := svc.CreateProfessionalCredit(client.ID, 3000, 24, rate(4.0), "equipment", "ACME SARL")
	require.NoError(t, err)
	estate, err := svc.CreateRealEstateCredit(client.ID, 4000, 120, rate(3.0),
		models.PropertyTypeApartment, "12 rue de la Paix, Paris", 5000)
	require.NoError(t, err)

	for _, id := range []int64{personal.ID, secondPersonal.ID, professional.ID, estate.ID} {
		_, err := svc.ApproveCredit(id)
		require.NoError(t, err)
	}

	// This one stays in progress and must not count as accepted
	_, err = svc.CreatePersonalCredit(client.ID, 9999, 12, rate(5.0), "ignored")
	require.NoError(t, err)

	stats, err := svc.CreditStatisticsByStatus(models.CreditStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, stats.PersonalAmount)
	assert.Equal(t, 3000.0, stats.ProfessionalAmount)
	assert.Equal(t, 4000.0, stats.RealEstateAmount)
	assert.Equal(t, 10000.0, stats.TotalAmount)
	assert.Equal(t, stats.PersonalAmount+stats.ProfessionalAmount+stats.RealEstateAmount, stats.TotalAmount)

	totalAccepted, err := svc.TotalAcceptedAmount()
	require.NoError(t, err)
	assert.Equal(t, stats.TotalAmount, totalAccepted)

	rejectedStats, err := svc.CreditStatisticsByStatus(models.CreditStatusRejected)
	require.NoError(t, err)
	assert.Zero(t, rejectedStats.TotalAmount)
}
