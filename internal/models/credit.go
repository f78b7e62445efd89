package models

import "time"

// CreditType discriminates the three credit variants
type CreditType string

const (
	CreditTypePersonal     CreditType = "PERSONAL"
	CreditTypeProfessional CreditType = "PROFESSIONAL"
	CreditTypeRealEstate   CreditType = "REAL_ESTATE"
)

// CreditStatus is the lifecycle state of a credit request
type CreditStatus string

const (
	CreditStatusInProgress CreditStatus = "IN_PROGRESS"
	CreditStatusAccepted   CreditStatus = "ACCEPTED"
	CreditStatusRejected   CreditStatus = "REJECTED"
)

// ParseCreditStatus validates a status supplied as a path parameter
func ParseCreditStatus(s string) (CreditStatus, bool) {
	switch CreditStatus(s) {
	case CreditStatusInProgress, CreditStatusAccepted, CreditStatusRejected:
		return CreditStatus(s), true
	}
	return "", false
}

// PropertyType classifies the financed property of a real estate credit
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "APARTMENT"
	PropertyTypeHouse      PropertyType = "HOUSE"
	PropertyTypeLand       PropertyType = "LAND"
	PropertyTypeCommercial PropertyType = "COMMERCIAL"
	PropertyTypeOther      PropertyType = "OTHER"
)

// PersonalDetails holds the variant fields of a personal credit
type PersonalDetails struct {
	Reason string `json:"reason"`
}

// ProfessionalDetails holds the variant fields of a professional credit
type ProfessionalDetails struct {
	Reason      string `json:"reason"`
	CompanyName string `json:"company_name"`
}

// RealEstateDetails holds the variant fields of a real estate credit
type RealEstateDetails struct {
	PropertyType    PropertyType `json:"property_type"`
	PropertyAddress string       `json:"property_address"`
	PropertyValue   float64      `json:"property_value"`
}

// Credit represents a credit request of one of the three variants.
// Exactly one variant payload is non-nil, the one matching Type.
type Credit struct {
	ID             int64        `json:"id"`
	Type           CreditType   `json:"credit_type"`
	RequestDate    time.Time    `json:"request_date"`
	Status         CreditStatus `json:"status"`
	AcceptanceDate *time.Time   `json:"acceptance_date,omitempty"`
	Amount         float64      `json:"amount"`
	Duration       int          `json:"duration"` // in months
	InterestRate   float64      `json:"interest_rate"`
	ClientID       int64        `json:"client_id"`

	Personal     *PersonalDetails     `json:"personal,omitempty"`
	Professional *ProfessionalDetails `json:"professional,omitempty"`
	RealEstate   *RealEstateDetails   `json:"real_estate,omitempty"`
}
