package repository

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"

	"addreel/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errors.New("company with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveCompany    = errors.New("company account is inactive")
)

const defaultCommissionRate = 0.3

// companyRecord is the on-disk shape of a company. It exists separately
// from domain.Company so the password can be serialized into the registry
// file while staying out of every API response.
type companyRecord struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	Password       string                 `json:"password"`
	CommissionRate float64                `json:"commission_rate"`
	IsActive       bool                   `json:"is_active"`
	Branding       domain.CompanyBranding `json:"branding"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

type companiesFile struct {
	Companies []companyRecord `json:"companies"`
}

// CompanyStore is the flat-file advertiser registry.
type CompanyStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

func NewCompanyStore(path string) *CompanyStore {
	return &CompanyStore{path: path, now: time.Now}
}

// List returns every registered company, passwords stripped.
func (s *CompanyStore) List() []domain.Company {
	s.mu.Lock()
	defer s.mu.Unlock()

	var companies []domain.Company
	for _, rec := range s.read().Companies {
		companies = append(companies, rec.toDomain())
	}
	return companies
}

// Get returns the company with the given ID.
func (s *CompanyStore) Get(id string) (domain.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.read().Companies {
		if rec.ID == id {
			return rec.toDomain(), nil
		}
	}
	return domain.Company{}, ErrNotFound
}

// Create registers a new company. Email must be unique; the commission
// rate and active flag default when unset.
func (s *CompanyStore) Create(company domain.Company, password string) (domain.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.read()
	for _, rec := range data.Companies {
		if rec.Email == company.Email {
			return domain.Company{}, ErrEmailTaken
		}
	}

	now := s.now()
	rec := companyRecord{
		ID:             uuid.NewString(),
		Name:           company.Name,
		Email:          company.Email,
		Password:       password,
		CommissionRate: company.CommissionRate,
		IsActive:       company.IsActive,
		Branding:       company.Branding,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if rec.CommissionRate == 0 {
		rec.CommissionRate = defaultCommissionRate
	}

	data.Companies = append(data.Companies, rec)
	if err := s.write(data); err != nil {
		return domain.Company{}, err
	}
	return rec.toDomain(), nil
}

// Update replaces the mutable fields of the company with the same ID.
// An empty password keeps the stored one.
func (s *CompanyStore) Update(company domain.Company, password string) (domain.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.read()
	for i := range data.Companies {
		if data.Companies[i].ID != company.ID {
			continue
		}

		rec := &data.Companies[i]
		rec.Name = company.Name
		rec.Email = company.Email
		rec.CommissionRate = company.CommissionRate
		rec.IsActive = company.IsActive
		rec.Branding = company.Branding
		rec.UpdatedAt = s.now()
		if password != "" {
			rec.Password = password
		}

		if err := s.write(data); err != nil {
			return domain.Company{}, err
		}
		return rec.toDomain(), nil
	}
	return domain.Company{}, ErrNotFound
}

// Delete removes the company with the given ID. Absent IDs are ignored.
func (s *CompanyStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.read()
	kept := data.Companies[:0]
	for _, rec := range data.Companies {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	data.Companies = kept
	return s.write(data)
}

// Authenticate checks credentials and returns the matching active
// company. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *CompanyStore) Authenticate(email, password string) (domain.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.read().Companies {
		if rec.Email != email {
			continue
		}
		if rec.Password != password {
			return domain.Company{}, ErrInvalidCredentials
		}
		if !rec.IsActive {
			return domain.Company{}, ErrInactiveCompany
		}
		return rec.toDomain(), nil
	}
	return domain.Company{}, ErrInvalidCredentials
}

func (r companyRecord) toDomain() domain.Company {
	return domain.Company{
		ID:             r.ID,
		Name:           r.Name,
		Email:          r.Email,
		CommissionRate: r.CommissionRate,
		IsActive:       r.IsActive,
		Branding:       r.Branding,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (s *CompanyStore) read() companiesFile {
	var data companiesFile
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return data
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return companiesFile{}
	}
	return data
}

func (s *CompanyStore) write(data companiesFile) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}
