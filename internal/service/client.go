package service

import (
	"github.com/creditdesk/credit-service/internal/models"
)

// CreateClient registers a new client with a unique email
func (s *Service) CreateClient(name, email string) (*models.Client, error) {
	taken, err := s.store.ClientEmailInUse(email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.ErrEmailTaken
	}

	client := &models.Client{Name: name, Email: email}
	if err := s.store.CreateClient(client); err != nil {
		return nil, err
	}

	s.log.Infof("Client created: %s (%d)", client.Email, client.ID)
	return client, nil
}

// GetClientByID retrieves a client by id
func (s *Service) GetClientByID(id int64) (*models.Client, error) {
	return s.store.FindClientByID(id)
}

// GetClientByEmail retrieves a client by email
func (s *Service) GetClientByEmail(email string) (*models.Client, error) {
	return s.store.FindClientByEmail(email)
}

// ListClients retrieves all clients
func (s *Service) ListClients() ([]models.Client, error) {
	return s.store.ListClients()
}

// SearchClientsByName retrieves clients whose name contains the term,
// case-insensitively
func (s *Service) SearchClientsByName(name string) ([]models.Client, error) {
	return s.store.SearchClientsByName(name)
}

// UpdateClient updates an existing client, keeping email uniqueness
func (s *Service) UpdateClient(client *models.Client) (*models.Client, error) {
	taken, err := s.store.ClientEmailInUse(client.Email, client.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.ErrEmailTaken
	}

	if err := s.store.UpdateClient(client); err != nil {
		return nil, err
	}

	s.log.Infof("Client %d updated", client.ID)
	return client, nil
}

// DeleteClient removes a client and reports whether it existed. A client
// that still has credits cannot be deleted, the foreign key rejects it.
func (s *Service) DeleteClient(id int64) (bool, error) {
	deleted, err := s.store.DeleteClient(id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.log.Infof("Client %d deleted", id)
	}
	return deleted, nil
}
