package service

import (
	"time"

	"github.com/creditdesk/credit-service/internal/models"
)

// CreateMonthlyRepayment records a scheduled monthly payment against an
// accepted credit
func (s *Service) CreateMonthlyRepayment(creditID int64, amount float64) (*models.Repayment, error) {
	return s.recordRepayment(creditID, amount, models.RepaymentTypeMonthly)
}

// CreateEarlyRepayment records an early repayment against an accepted credit
func (s *Service) CreateEarlyRepayment(creditID int64, amount float64) (*models.Repayment, error) {
	return s.recordRepayment(creditID, amount, models.RepaymentTypeEarly)
}

func (s *Service) recordRepayment(creditID int64, amount float64, t models.RepaymentType) (*models.Repayment, error) {
	credit, err := s.store.FindCreditByID(creditID)
	if err != nil {
		return nil, err
	}
	if credit.Status != models.CreditStatusAccepted {
		return nil, models.ErrCreditNotAccepted
	}

	repayment := &models.Repayment{
		CreditID: creditID,
		Date:     time.Now(),
		Amount:   amount,
		Type:     t,
	}
	if err := s.store.CreateRepayment(repayment); err != nil {
		return nil, err
	}

	s.log.Infof("Repayment %d of %.2f (%s) recorded for credit %d",
		repayment.ID, amount, t, creditID)
	return repayment, nil
}

// ListRepaymentsByCredit retrieves all repayments of one credit
func (s *Service) ListRepaymentsByCredit(creditID int64) ([]models.Repayment, error) {
	exists, err := s.store.CreditExists(creditID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.ErrCreditNotFound
	}
	return s.store.ListRepaymentsByCredit(creditID)
}

// ListRepaymentsByType retrieves all repayments of the given type
func (s *Service) ListRepaymentsByType(t models.RepaymentType) ([]models.Repayment, error) {
	return s.store.ListRepaymentsByType(t)
}

// TotalRepaidAmount returns the sum of all repayments of one credit,
// 0 when it has none
func (s *Service) TotalRepaidAmount(creditID int64) (float64, error) {
	exists, err := s.store.CreditExists(creditID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, models.ErrCreditNotFound
	}
	return s.store.SumRepaymentsByCredit(creditID)
}

// RemainingAmount estimates what is still owed on a credit. The total due
// is a flat, non-compounding approximation of principal plus interest:
//
//	amount * (1 + (interestRate * duration / 12) / 100)
//
// The result never goes below zero.
func (s *Service) RemainingAmount(creditID int64) (float64, error) {
	credit, err := s.store.FindCreditByID(creditID)
	if err != nil {
		return 0, err
	}

	totalRepaid, err := s.store.SumRepaymentsByCredit(creditID)
	if err != nil {
		return 0, err
	}

	estimatedTotalDue := credit.Amount * (1 + (credit.InterestRate*float64(credit.Duration)/12)/100)
	remaining := estimatedTotalDue - totalRepaid
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// DeleteRepayment removes a repayment and reports whether it existed.
// Subsequent totals reflect the removal, nothing else is recomputed.
func (s *Service) DeleteRepayment(id int64) (bool, error) {
	deleted, err := s.store.DeleteRepayment(id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.log.Infof("Repayment %d deleted", id)
	}
	return deleted, nil
}
