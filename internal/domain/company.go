package domain

import "time"

// Company is an advertiser account managed through the admin API. The
// password never leaves the registry file, so it is not part of this
// struct; the repository keeps its own on-disk record.
type Company struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	CommissionRate float64         `json:"commission_rate"`
	IsActive       bool            `json:"is_active"`
	Branding       CompanyBranding `json:"branding"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CompanyBranding holds optional presentation settings for a company.
type CompanyBranding struct {
	Logo           string `json:"logo,omitempty"`
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
}
