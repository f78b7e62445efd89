package repository

import (
	"database/sql"
	"fmt"

	"github.com/creditdesk/credit-service/internal/models"
)

const creditColumns = `id, credit_type, request_date, status, acceptance_date,
	amount, duration_months, interest_rate, client_id,
	reason, company_name, property_type, property_address, property_value`

// CreateCredit inserts a credit together with its variant fields
func (r *Repository) CreateCredit(credit *models.Credit) error {
	var (
		reason, companyName, propertyType, propertyAddress sql.NullString
		propertyValue                                      sql.NullFloat64
	)
	switch credit.Type {
	case models.CreditTypePersonal:
		reason = sql.NullString{String: credit.Personal.Reason, Valid: true}
	case models.CreditTypeProfessional:
		reason = sql.NullString{String: credit.Professional.Reason, Valid: true}
		companyName = sql.NullString{String: credit.Professional.CompanyName, Valid: true}
	case models.CreditTypeRealEstate:
		propertyType = sql.NullString{String: string(credit.RealEstate.PropertyType), Valid: true}
		propertyAddress = sql.NullString{String: credit.RealEstate.PropertyAddress, Valid: true}
		propertyValue = sql.NullFloat64{Float64: credit.RealEstate.PropertyValue, Valid: true}
	}

	query := `
		INSERT INTO credit.credits (
			credit_type, request_date, status, acceptance_date,
			amount, duration_months, interest_rate, client_id,
			reason, company_name, property_type, property_address, property_value
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.db.QueryRow(query,
		credit.Type, credit.RequestDate, credit.Status, credit.AcceptanceDate,
		credit.Amount, credit.Duration, credit.InterestRate, credit.ClientID,
		reason, companyName, propertyType, propertyAddress, propertyValue,
	).Scan(&credit.ID)
	if err != nil {
		return fmt.Errorf("failed to create credit: %w", err)
	}
	return nil
}

// FindCreditByID retrieves a credit by id
func (r *Repository) FindCreditByID(id int64) (*models.Credit, error) {
	query := `
		SELECT ` + creditColumns + `
		FROM credit.credits
		WHERE id = $1`
	credit, err := scanCredit(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, models.ErrCreditNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find credit: %w", err)
	}
	return credit, nil
}

// CreditExists reports whether a credit with the given id exists
func (r *Repository) CreditExists(id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM credit.credits WHERE id = $1)`
	if err := r.db.QueryRow(query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check credit: %w", err)
	}
	return exists, nil
}

// ListCredits retrieves all credits ordered by id
func (r *Repository) ListCredits() ([]models.Credit, error) {
	query := `
		SELECT ` + creditColumns + `
		FROM credit.credits
		ORDER BY id`
	return r.queryCredits(query)
}

// ListCreditsByClient retrieves all credits of one client
func (r *Repository) ListCreditsByClient(clientID int64) ([]models.Credit, error) {
	query := `
		SELECT ` + creditColumns + `
		FROM credit.credits
		WHERE client_id = $1
		ORDER BY id`
	return r.queryCredits(query, clientID)
}

// ListCreditsByStatus retrieves all credits with the given status
func (r *Repository) ListCreditsByStatus(status models.CreditStatus) ([]models.Credit, error) {
	query := `
		SELECT ` + creditColumns + `
		FROM credit.credits
		WHERE status = $1
		ORDER BY id`
	return r.queryCredits(query, status)
}

// UpdateCreditStatus persists a status transition and its acceptance date
func (r *Repository) UpdateCreditStatus(credit *models.Credit) error {
	query := `
		UPDATE credit.credits
		SET status = $1, acceptance_date = $2
		WHERE id = $3`
	res, err := r.db.Exec(query, credit.Status, credit.AcceptanceDate, credit.ID)
	if err != nil {
		return fmt.Errorf("failed to update credit status: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update credit status: %w", err)
	}
	if rows == 0 {
		return models.ErrCreditNotFound
	}
	return nil
}

func (r *Repository) queryCredits(query string, args ...interface{}) ([]models.Credit, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list credits: %w", err)
	}
	defer rows.Close()

	var credits []models.Credit
	for rows.Next() {
		credit, err := scanCredit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credit: %w", err)
		}
		credits = append(credits, *credit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list credits: %w", err)
	}
	return credits, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanCredit reads one credits row and rebuilds the variant payload from
// the discriminator column.
func scanCredit(row rowScanner) (*models.Credit, error) {
	var (
		credit                                             models.Credit
		acceptanceDate                                     sql.NullTime
		reason, companyName, propertyType, propertyAddress sql.NullString
		propertyValue                                      sql.NullFloat64
	)
	err := row.Scan(
		&credit.ID, &credit.Type, &credit.RequestDate, &credit.Status, &acceptanceDate,
		&credit.Amount, &credit.Duration, &credit.InterestRate, &credit.ClientID,
		&reason, &companyName, &propertyType, &propertyAddress, &propertyValue,
	)
	if err != nil {
		return nil, err
	}
	if acceptanceDate.Valid {
		credit.AcceptanceDate = &acceptanceDate.Time
	}
	switch credit.Type {
	case models.CreditTypePersonal:
		credit.Personal = &models.PersonalDetails{Reason: reason.String}
	case models.CreditTypeProfessional:
		credit.Professional = &models.ProfessionalDetails{
			Reason:      reason.String,
			CompanyName: companyName.String,
		}
	case models.CreditTypeRealEstate:
		credit.RealEstate = &models.RealEstateDetails{
			PropertyType:    models.PropertyType(propertyType.String),
			PropertyAddress: propertyAddress.String,
			PropertyValue:   propertyValue.Float64,
		}
	}
	return &credit, nil
}
