package repository

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"addreel/internal/domain"
)

func newTestCompanyStore(t *testing.T) *CompanyStore {
	t.Helper()
	return NewCompanyStore(filepath.Join(t.TempDir(), "companies.json"))
}

func TestCompanyCreateDefaults(t *testing.T) {
	s := newTestCompanyStore(t)

	created, err := s.Create(domain.Company{Name: "Acme", Email: "a@acme.io", IsActive: true}, "secret")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Error("ID not assigned")
	}
	if created.CommissionRate != 0.3 {
		t.Errorf("CommissionRate = %v, want default 0.3", created.CommissionRate)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps not stamped")
	}
}

func TestCompanyEmailMustBeUnique(t *testing.T) {
	s := newTestCompanyStore(t)

	if _, err := s.Create(domain.Company{Email: "dup@x.io", IsActive: true}, "p1"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Create(domain.Company{Email: "dup@x.io", IsActive: true}, "p2"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestCompanyAuthenticate(t *testing.T) {
	s := newTestCompanyStore(t)

	created, _ := s.Create(domain.Company{Email: "a@x.io", IsActive: true}, "right")

	got, err := s.Authenticate("a@x.io", "right")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("authenticated wrong company: %s", got.ID)
	}

	if _, err := s.Authenticate("a@x.io", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := s.Authenticate("nobody@x.io", "right"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestCompanyAuthenticateInactive(t *testing.T) {
	s := newTestCompanyStore(t)

	created, _ := s.Create(domain.Company{Email: "a@x.io", IsActive: true}, "pw")
	created.IsActive = false
	if _, err := s.Update(created, ""); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if _, err := s.Authenticate("a@x.io", "pw"); !errors.Is(err, ErrInactiveCompany) {
		t.Errorf("err = %v, want ErrInactiveCompany", err)
	}
}

func TestCompanyUpdateKeepsPasswordWhenEmpty(t *testing.T) {
	s := newTestCompanyStore(t)

	created, _ := s.Create(domain.Company{Email: "a@x.io", IsActive: true}, "original")
	created.Name = "Renamed"
	if _, err := s.Update(created, ""); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if _, err := s.Authenticate("a@x.io", "original"); err != nil {
		t.Errorf("password changed by empty update: %v", err)
	}
}

func TestCompanyResponsesNeverCarryPassword(t *testing.T) {
	s := newTestCompanyStore(t)
	_, _ = s.Create(domain.Company{Email: "a@x.io", IsActive: true}, "secret")

	raw, err := json.Marshal(s.List())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	serialized := strings.ToLower(string(raw))
	if strings.Contains(serialized, "secret") || strings.Contains(serialized, "password") {
		t.Errorf("serialized company leaks credentials: %s", raw)
	}
}
