package repository

import (
	"database/sql"
	"fmt"

	"github.com/creditdesk/credit-service/internal/models"
)

// CreateClient creates a new client in the database
func (r *Repository) CreateClient(client *models.Client) error {
	query := `
		INSERT INTO credit.clients (name, email)
		VALUES ($1, $2)
		RETURNING id`
	err := r.db.QueryRow(query, client.Name, client.Email).Scan(&client.ID)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// FindClientByID retrieves a client by id
func (r *Repository) FindClientByID(id int64) (*models.Client, error) {
	client := &models.Client{}
	query := `
		SELECT id, name, email
		FROM credit.clients
		WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&client.ID, &client.Name, &client.Email)
	if err == sql.ErrNoRows {
		return nil, models.ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return client, nil
}

// FindClientByEmail retrieves a client by email
func (r *Repository) FindClientByEmail(email string) (*models.Client, error) {
	client := &models.Client{}
	query := `
		SELECT id, name, email
		FROM credit.clients
		WHERE email = $1`
	err := r.db.QueryRow(query, email).Scan(&client.ID, &client.Name, &client.Email)
	if err == sql.ErrNoRows {
		return nil, models.ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find client by email: %w", err)
	}
	return client, nil
}

// ListClients retrieves all clients ordered by id
func (r *Repository) ListClients() ([]models.Client, error) {
	query := `
		SELECT id, name, email
		FROM credit.clients
		ORDER BY id`
	return r.queryClients(query)
}

// SearchClientsByName retrieves clients whose name contains the given term,
// case-insensitively
func (r *Repository) SearchClientsByName(name string) ([]models.Client, error) {
	query := `
		SELECT id, name, email
		FROM credit.clients
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY id`
	return r.queryClients(query, name)
}

// UpdateClient updates the name and email of an existing client
func (r *Repository) UpdateClient(client *models.Client) error {
	query := `
		UPDATE credit.clients
		SET name = $1, email = $2
		WHERE id = $3`
	res, err := r.db.Exec(query, client.Name, client.Email, client.ID)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if rows == 0 {
		return models.ErrClientNotFound
	}
	return nil
}

// DeleteClient removes a client and reports whether it existed
func (r *Repository) DeleteClient(id int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM credit.clients WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete client: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete client: %w", err)
	}
	return rows > 0, nil
}

// ClientEmailInUse reports whether another client already uses the email.
// excludeID is 0 when creating a new client.
func (r *Repository) ClientEmailInUse(email string, excludeID int64) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM credit.clients
			WHERE email = $1 AND id <> $2
		)`
	if err := r.db.QueryRow(query, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check client email: %w", err)
	}
	return exists, nil
}

func (r *Repository) queryClients(query string, args ...interface{}) ([]models.Client, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}
