// Package testutil provides in-memory test doubles for the service layer.
package testutil

import (
	"sort"
	"strings"
	"sync"

	"github.com/creditdesk/credit-service/internal/models"
)

// MemStorage is an in-memory service.Storage implementation
type MemStorage struct {
	mu sync.Mutex

	nextClientID    int64
	nextCreditID    int64
	nextRepaymentID int64
	nextUserID      int64

	clients    map[int64]models.Client
	credits    map[int64]models.Credit
	repayments map[int64]models.Repayment
	users      map[int64]models.User
}

// NewMemStorage creates an empty in-memory storage
func NewMemStorage() *MemStorage {
	return &MemStorage{
		clients:    make(map[int64]models.Client),
		credits:    make(map[int64]models.Credit),
		repayments: make(map[int64]models.Repayment),
		users:      make(map[int64]models.User),
	}
}

// CreateClient stores a new client
func (m *MemStorage) CreateClient(client *models.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextClientID++
	client.ID = m.nextClientID
	m.clients[client.ID] = *client
	return nil
}

// FindClientByID returns a stored client
func (m *MemStorage) FindClientByID(id int64) (*models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.clients[id]
	if !ok {
		return nil, models.ErrClientNotFound
	}
	return &c, nil
}

// FindClientByEmail returns the client with the given email
func (m *MemStorage) FindClientByEmail(email string) (*models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.clients {
		if c.Email == email {
			client := c
			return &client, nil
		}
	}
	return nil, models.ErrClientNotFound
}

// ListClients returns all clients ordered by id
func (m *MemStorage) ListClients() ([]models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var clients []models.Client
	for _, c := range m.clients {
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].ID < clients[j].ID })
	return clients, nil
}

// SearchClientsByName returns clients whose name contains the term
func (m *MemStorage) SearchClientsByName(name string) ([]models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var clients []models.Client
	for _, c := range m.clients {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(name)) {
			clients = append(clients, c)
		}
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].ID < clients[j].ID })
	return clients, nil
}

// UpdateClient overwrites a stored client
func (m *MemStorage) UpdateClient(client *models.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clients[client.ID]; !ok {
		return models.ErrClientNotFound
	}
	m.clients[client.ID] = *client
	return nil
}

// DeleteClient removes a stored client
func (m *MemStorage) DeleteClient(id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clients[id]; !ok {
		return false, nil
	}
	delete(m.clients, id)
	return true, nil
}

// ClientEmailInUse reports whether another client uses the email
func (m *MemStorage) ClientEmailInUse(email string, excludeID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.clients {
		if c.Email == email && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

// CreateCredit stores a new credit
func (m *MemStorage) CreateCredit(credit *models.Credit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextCreditID++
	credit.ID = m.nextCreditID
	m.credits[credit.ID] = *credit
	return nil
}

// FindCreditByID returns a stored credit
func (m *MemStorage) FindCreditByID(id int64) (*models.Credit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.credits[id]
	if !ok {
		return nil, models.ErrCreditNotFound
	}
	return &c, nil
}

// CreditExists reports whether a credit exists
func (m *MemStorage) CreditExists(id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.credits[id]
	return ok, nil
}

// ListCredits returns all credits ordered by id
func (m *MemStorage) ListCredits() ([]models.Credit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.creditsWhere(func(models.Credit) bool { return true }), nil
}

// ListCreditsByClient returns all credits of one client
func (m *MemStorage) ListCreditsByClient(clientID int64) ([]models.Credit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.creditsWhere(func(c models.Credit) bool { return c.ClientID == clientID }), nil
}

// ListCreditsByStatus returns all credits with the given status
func (m *MemStorage) ListCreditsByStatus(status models.CreditStatus) ([]models.Credit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.creditsWhere(func(c models.Credit) bool { return c.Status == status }), nil
}

func (m *MemStorage) creditsWhere(keep func(models.Credit) bool) []models.Credit {
	var credits []models.Credit
	for _, c := range m.credits {
		if keep(c) {
			credits = append(credits, c)
		}
	}
	sort.Slice(credits, func(i, j int) bool { return credits[i].ID < credits[j].ID })
	return credits
}

// UpdateCreditStatus overwrites a stored credit's lifecycle fields
func (m *MemStorage) UpdateCreditStatus(credit *models.Credit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.credits[credit.ID]
	if !ok {
		return models.ErrCreditNotFound
	}
	stored.Status = credit.Status
	stored.AcceptanceDate = credit.AcceptanceDate
	m.credits[credit.ID] = stored
	return nil
}

// CreateRepayment stores a new repayment
func (m *MemStorage) CreateRepayment(repayment *models.Repayment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextRepaymentID++
	repayment.ID = m.nextRepaymentID
	m.repayments[repayment.ID] = *repayment
	return nil
}

// ListRepaymentsByCredit returns all repayments of one credit in creation order
func (m *MemStorage) ListRepaymentsByCredit(creditID int64) ([]models.Repayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.repaymentsWhere(func(p models.Repayment) bool { return p.CreditID == creditID }), nil
}

// ListRepaymentsByType returns all repayments of the given type
func (m *MemStorage) ListRepaymentsByType(t models.RepaymentType) ([]models.Repayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.repaymentsWhere(func(p models.Repayment) bool { return p.Type == t }), nil
}

func (m *MemStorage) repaymentsWhere(keep func(models.Repayment) bool) []models.Repayment {
	var repayments []models.Repayment
	for _, p := range m.repayments {
		if keep(p) {
			repayments = append(repayments, p)
		}
	}
	sort.Slice(repayments, func(i, j int) bool { return repayments[i].ID < repayments[j].ID })
	return repayments
}

// SumRepaymentsByCredit sums the repayments of one credit
func (m *MemStorage) SumRepaymentsByCredit(creditID int64) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total float64
	for _, p := range m.repayments {
		if p.CreditID == creditID {
			total += p.Amount
		}
	}
	return total, nil
}

// DeleteRepayment removes a stored repayment
func (m *MemStorage) DeleteRepayment(id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.repayments[id]; !ok {
		return false, nil
	}
	delete(m.repayments, id)
	return true, nil
}

// CreateUser stores a new user
func (m *MemStorage) CreateUser(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextUserID++
	user.ID = m.nextUserID
	m.users[user.ID] = *user
	return nil
}

// FindUserByEmail returns the user with the given email
func (m *MemStorage) FindUserByEmail(email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, models.ErrUserNotFound
}

// UsernameTaken reports whether a user with the given username exists
func (m *MemStorage) UsernameTaken(username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// UserEmailTaken reports whether a user with the given email exists
func (m *MemStorage) UserEmailTaken(email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// StaticRates is a service.RateProvider returning a fixed rate
type StaticRates struct {
	Rate float64
}

// KeyRate returns the fixed rate
func (s StaticRates) KeyRate() (float64, error) {
	return s.Rate, nil
}
