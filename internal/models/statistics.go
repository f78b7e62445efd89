package models

// CreditStatistics breaks down credit amounts for one status by variant
type CreditStatistics struct {
	Status             CreditStatus `json:"status"`
	PersonalAmount     float64      `json:"personal_amount"`
	ProfessionalAmount float64      `json:"professional_amount"`
	RealEstateAmount   float64      `json:"real_estate_amount"`
	TotalAmount        float64      `json:"total_amount"`
}
