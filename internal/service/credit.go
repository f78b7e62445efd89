package service

import (
	"fmt"
	"time"

	"github.com/creditdesk/credit-service/internal/models"
)

// CreatePersonalCredit creates a personal credit request for a client
func (s *Service) CreatePersonalCredit(clientID int64, amount float64, duration int, interestRate *float64, reason string) (*models.Credit, error) {
	credit, err := s.newCreditRequest(clientID, amount, duration, interestRate)
	if err != nil {
		return nil, err
	}
	credit.Type = models.CreditTypePersonal
	credit.Personal = &models.PersonalDetails{Reason: reason}
	return s.saveCreditRequest(credit)
}

// CreateProfessionalCredit creates a professional credit request for a client
func (s *Service) CreateProfessionalCredit(clientID int64, amount float64, duration int, interestRate *float64, reason, companyName string) (*models.Credit, error) {
	credit, err := s.newCreditRequest(clientID, amount, duration, interestRate)
	if err != nil {
		return nil, err
	}
	credit.Type = models.CreditTypeProfessional
	credit.Professional = &models.ProfessionalDetails{
		Reason:      reason,
		CompanyName: companyName,
	}
	return s.saveCreditRequest(credit)
}

// CreateRealEstateCredit creates a real estate credit request for a client
func (s *Service) CreateRealEstateCredit(clientID int64, amount float64, duration int, interestRate *float64, propertyType models.PropertyType, propertyAddress string, propertyValue float64) (*models.Credit, error) {
	credit, err := s.newCreditRequest(clientID, amount, duration, interestRate)
	if err != nil {
		return nil, err
	}
	credit.Type = models.CreditTypeRealEstate
	credit.RealEstate = &models.RealEstateDetails{
		PropertyType:    propertyType,
		PropertyAddress: propertyAddress,
		PropertyValue:   propertyValue,
	}
	return s.saveCreditRequest(credit)
}

// newCreditRequest builds the common part of a credit request. The status
// is always IN_PROGRESS here, whatever the caller sent on the wire. When no
// interest rate is given the credit is priced from the current key rate.
func (s *Service) newCreditRequest(clientID int64, amount float64, duration int, interestRate *float64) (*models.Credit, error) {
	if _, err := s.store.FindClientByID(clientID); err != nil {
		return nil, err
	}

	var rate float64
	switch {
	case interestRate != nil:
		rate = *interestRate
	case s.rates != nil:
		keyRate, err := s.rates.KeyRate()
		if err != nil {
			return nil, fmt.Errorf("failed to price credit: %w", err)
		}
		rate = keyRate
	default:
		return nil, fmt.Errorf("interest rate is required")
	}

	return &models.Credit{
		RequestDate:  time.Now(),
		Status:       models.CreditStatusInProgress,
		Amount:       amount,
		Duration:     duration,
		InterestRate: rate,
		ClientID:     clientID,
	}, nil
}

func (s *Service) saveCreditRequest(credit *models.Credit) (*models.Credit, error) {
	if err := s.store.CreateCredit(credit); err != nil {
		return nil, err
	}
	s.log.Infof("%s credit %d requested by client %d for %.2f over %d months",
		credit.Type, credit.ID, credit.ClientID, credit.Amount, credit.Duration)
	return credit, nil
}

// GetCreditByID retrieves a credit by id
func (s *Service) GetCreditByID(id int64) (*models.Credit, error) {
	return s.store.FindCreditByID(id)
}

// ListCredits retrieves all credits
func (s *Service) ListCredits() ([]models.Credit, error) {
	return s.store.ListCredits()
}

// ListCreditsByClient retrieves all credits of one client
func (s *Service) ListCreditsByClient(clientID int64) ([]models.Credit, error) {
	return s.store.ListCreditsByClient(clientID)
}

// ListCreditsByStatus retrieves all credits with the given status
func (s *Service) ListCreditsByStatus(status models.CreditStatus) ([]models.Credit, error) {
	return s.store.ListCreditsByStatus(status)
}

// ApproveCredit moves an in-progress credit to ACCEPTED and stamps the
// acceptance date. Credits that have already been decided stay untouched.
func (s *Service) ApproveCredit(id int64) (*models.Credit, error) {
	credit, err := s.store.FindCreditByID(id)
	if err != nil {
		return nil, err
	}
	if credit.Status != models.CreditStatusInProgress {
		return nil, models.ErrCreditFinalized
	}

	now := time.Now()
	credit.Status = models.CreditStatusAccepted
	credit.AcceptanceDate = &now
	if err := s.store.UpdateCreditStatus(credit); err != nil {
		return nil, err
	}

	s.log.Infof("Credit %d approved for client %d", credit.ID, credit.ClientID)
	s.notifyDecision(credit)
	return credit, nil
}

// RejectCredit moves an in-progress credit to REJECTED. The acceptance
// date is never set on this path.
func (s *Service) RejectCredit(id int64) (*models.Credit, error) {
	credit, err := s.store.FindCreditByID(id)
	if err != nil {
		return nil, err
	}
	if credit.Status != models.CreditStatusInProgress {
		return nil, models.ErrCreditFinalized
	}

	credit.Status = models.CreditStatusRejected
	if err := s.store.UpdateCreditStatus(credit); err != nil {
		return nil, err
	}

	s.log.Infof("Credit %d rejected for client %d", credit.ID, credit.ClientID)
	s.notifyDecision(credit)
	return credit, nil
}

// notifyDecision emails the client about an approval or rejection. Delivery
// is best effort, a failure never fails the transition itself.
func (s *Service) notifyDecision(credit *models.Credit) {
	if s.mailer == nil {
		return
	}
	client, err := s.store.FindClientByID(credit.ClientID)
	if err != nil {
		s.log.Errorf("Failed to load client %d for decision email: %v", credit.ClientID, err)
		return
	}
	if err := s.mailer.SendCreditDecision(client.Email, client.Name, credit); err != nil {
		s.log.Errorf("Failed to send decision email to %s: %v", client.Email, err)
	}
}

// TotalAcceptedAmount sums the amounts of all accepted credits
func (s *Service) TotalAcceptedAmount() (float64, error) {
	credits, err := s.store.ListCreditsByStatus(models.CreditStatusAccepted)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, c := range credits {
		total += c.Amount
	}
	return total, nil
}

// CreditStatisticsByStatus partitions the credits of one status by variant
// and returns per-variant sums plus the grand total
func (s *Service) CreditStatisticsByStatus(status models.CreditStatus) (*models.CreditStatistics, error) {
	credits, err := s.store.ListCreditsByStatus(status)
	if err != nil {
		return nil, err
	}

	stats := &models.CreditStatistics{Status: status}
	for _, c := range credits {
		switch c.Type {
		case models.CreditTypePersonal:
			stats.PersonalAmount += c.Amount
		case models.CreditTypeProfessional:
			stats.ProfessionalAmount += c.Amount
		case models.CreditTypeRealEstate:
			stats.RealEstateAmount += c.Amount
		}
	}
	stats.TotalAmount = stats.PersonalAmount + stats.ProfessionalAmount + stats.RealEstateAmount
	return stats, nil
}
