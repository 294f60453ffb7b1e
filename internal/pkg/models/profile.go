package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Verification states for professional profiles.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// ServiceCategories is the fixed list of categories professionals can offer
var ServiceCategories = []string{
	"Casa & Construção",
	"Limpeza & Diarista",
	"Beleza & Bem-estar",
	"Tecnologia & Suporte",
	"Cuidados com Pets",
	"Eventos & Serviços",
}

// StringList stores a list of strings as a JSONB column
type StringList []string

// Value implements driver.Valuer
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (s *StringList) Scan(src interface{}) error {
	if src == nil {
		*s = StringList{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for string list: %T", src)
	}
	return json.Unmarshal(data, s)
}

// ProfessionalProfile holds the public profile of a service professional
type ProfessionalProfile struct {
	UserID             uuid.UUID  `json:"user_id" db:"user_id"`
	Bio                string     `json:"bio" db:"bio"`
	Services           StringList `json:"services" db:"services"`
	PriceRange         string     `json:"price_range" db:"price_range"`
	Availability       string     `json:"availability" db:"availability"`
	Location           string     `json:"location" db:"location"`
	VerificationStatus string     `json:"verification_status" db:"verification_status"`
	Rating             float64    `json:"rating" db:"rating"` // mean of client ratings, one decimal
	ReviewsCount       int        `json:"reviews_count" db:"reviews_count"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`
}

// ClientProfile holds a client's profile
type ClientProfile struct {
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	Location    string     `json:"location" db:"location"`
	Preferences StringList `json:"preferences" db:"preferences"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// UpdateProfessionalProfileRequest is the payload for profile updates
type UpdateProfessionalProfileRequest struct {
	Bio          string   `json:"bio"`
	Services     []string `json:"services"`
	PriceRange   string   `json:"price_range"`
	Availability string   `json:"availability"`
	Location     string   `json:"location"`
}

// UpdateClientProfileRequest is the payload for client profile updates
type UpdateClientProfileRequest struct {
	Location    string   `json:"location"`
	Preferences []string `json:"preferences"`
}
