// Package service implements the credit-management core: the client
// registry, the credit lifecycle engine, the repayment ledger and the
// statistics aggregator.
package service

import (
	"github.com/creditdesk/credit-service/internal/models"
)

// Storage defines the contract for the persistence layer. The service
// depends only on this interface, the Postgres repository implements it.
type Storage interface {
	// Client operations
	CreateClient(client *models.Client) error
	FindClientByID(id int64) (*models.Client, error)
	FindClientByEmail(email string) (*models.Client, error)
	ListClients() ([]models.Client, error)
	SearchClientsByName(name string) ([]models.Client, error)
	UpdateClient(client *models.Client) error
	DeleteClient(id int64) (bool, error)
	ClientEmailInUse(email string, excludeID int64) (bool, error)

	// Credit operations
	CreateCredit(credit *models.Credit) error
	FindCreditByID(id int64) (*models.Credit, error)
	CreditExists(id int64) (bool, error)
	ListCredits() ([]models.Credit, error)
	ListCreditsByClient(clientID int64) ([]models.Credit, error)
	ListCreditsByStatus(status models.CreditStatus) ([]models.Credit, error)
	UpdateCreditStatus(credit *models.Credit) error

	// Repayment operations
	CreateRepayment(repayment *models.Repayment) error
	ListRepaymentsByCredit(creditID int64) ([]models.Repayment, error)
	ListRepaymentsByType(t models.RepaymentType) ([]models.Repayment, error)
	SumRepaymentsByCredit(creditID int64) (float64, error)
	DeleteRepayment(id int64) (bool, error)

	// User operations
	CreateUser(user *models.User) error
	FindUserByEmail(email string) (*models.User, error)
	UsernameTaken(username string) (bool, error)
	UserEmailTaken(email string) (bool, error)
}

// RateProvider supplies the current base interest rate, used to price
// credit requests that do not carry an explicit rate.
type RateProvider interface {
	KeyRate() (float64, error)
}

// Notifier delivers credit decision notifications to clients.
type Notifier interface {
	SendCreditDecision(to, name string, credit *models.Credit) error
}
