package repository

import (
	"fmt"

	"github.com/creditdesk/credit-service/internal/models"
)

// CreateRepayment creates a new repayment in the database
func (r *Repository) CreateRepayment(repayment *models.Repayment) error {
	query := `
		INSERT INTO credit.repayments (credit_id, date, amount, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.db.QueryRow(query,
		repayment.CreditID, repayment.Date, repayment.Amount, repayment.Type,
	).Scan(&repayment.ID)
	if err != nil {
		return fmt.Errorf("failed to create repayment: %w", err)
	}
	return nil
}

// ListRepaymentsByCredit retrieves all repayments of one credit in
// chronological creation order
func (r *Repository) ListRepaymentsByCredit(creditID int64) ([]models.Repayment, error) {
	query := `
		SELECT id, credit_id, date, amount, type
		FROM credit.repayments
		WHERE credit_id = $1
		ORDER BY id`
	return r.queryRepayments(query, creditID)
}

// ListRepaymentsByType retrieves all repayments of the given type
func (r *Repository) ListRepaymentsByType(t models.RepaymentType) ([]models.Repayment, error) {
	query := `
		SELECT id, credit_id, date, amount, type
		FROM credit.repayments
		WHERE type = $1
		ORDER BY id`
	return r.queryRepayments(query, t)
}

// SumRepaymentsByCredit returns the total repaid amount of one credit,
// 0 when it has no repayments
func (r *Repository) SumRepaymentsByCredit(creditID int64) (float64, error) {
	var total float64
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM credit.repayments
		WHERE credit_id = $1`
	if err := r.db.QueryRow(query, creditID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum repayments: %w", err)
	}
	return total, nil
}

// DeleteRepayment removes a repayment and reports whether it existed
func (r *Repository) DeleteRepayment(id int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM credit.repayments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete repayment: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete repayment: %w", err)
	}
	return rows > 0, nil
}

func (r *Repository) queryRepayments(query string, args ...interface{}) ([]models.Repayment, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list repayments: %w", err)
	}
	defer rows.Close()

	var repayments []models.Repayment
	for rows.Next() {
		var p models.Repayment
		if err := rows.Scan(&p.ID, &p.CreditID, &p.Date, &p.Amount, &p.Type); err != nil {
			return nil, fmt.Errorf("failed to scan repayment: %w", err)
		}
		repayments = append(repayments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list repayments: %w", err)
	}
	return repayments, nil
}
