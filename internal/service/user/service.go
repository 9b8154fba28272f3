package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"pasteleria-mil-sabores/internal/domain"
	"pasteleria-mil-sabores/internal/prefs"
	userrepo "pasteleria-mil-sabores/internal/repository/user"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service handles registration, login and the session snapshot kept in the
// preference store. Passwords are stored as bcrypt hashes only.
type Service struct {
	repo        userrepo.Repository
	prefs       *prefs.Store
	passwordMin int
}

func New(repo userrepo.Repository, store *prefs.Store) *Service {
	return &Service{
		repo:        repo,
		prefs:       store,
		passwordMin: 8,
	}
}

// RegisterInput captures the registration form.
type RegisterInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Address   string `json:"address"`
	BirthDate string `json:"birthDate"`
	Phone     string `json:"phone"`
	RUT       string `json:"rut"`
}

// Register creates the account and opens a session for it.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, errors.New("email required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name required")
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, fmt.Errorf("password must be at least %d characters", s.passwordMin)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Address:      strings.TrimSpace(in.Address),
		BirthDate:    strings.TrimSpace(in.BirthDate),
		Phone:        strings.TrimSpace(in.Phone),
		RUT:          strings.TrimSpace(in.RUT),
	})
	if err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// Login validates credentials and opens a session.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.saveSession(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Logout clears the session snapshot.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.prefs.SetBool(ctx, prefs.KeyLoggedIn, false); err != nil {
		return err
	}
	if err := s.prefs.Delete(ctx, prefs.KeyCurrentUserID); err != nil {
		return err
	}
	return s.prefs.Delete(ctx, prefs.KeySessionEmail)
}

// IsLoggedIn reports whether a session exists. Checkout consults this in
// addition to any UI-level gating.
func (s *Service) IsLoggedIn(ctx context.Context) (bool, error) {
	return s.prefs.GetBool(ctx, prefs.KeyLoggedIn)
}

// Current returns the logged-in user, or domain.ErrNotAuthenticated.
func (s *Service) Current(ctx context.Context) (*domain.User, error) {
	loggedIn, err := s.IsLoggedIn(ctx)
	if err != nil {
		return nil, err
	}
	if !loggedIn {
		return nil, domain.ErrNotAuthenticated
	}
	id, err := s.prefs.Get(ctx, prefs.KeyCurrentUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotAuthenticated
		}
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// UpdateProfile mutates the logged-in user's profile fields. Empty fields
// keep their stored value; the email is immutable.
func (s *Service) UpdateProfile(ctx context.Context, in RegisterInput) (*domain.User, error) {
	u, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if v := strings.TrimSpace(in.Name); v != "" {
		u.Name = v
	}
	if v := strings.TrimSpace(in.Address); v != "" {
		u.Address = v
	}
	if v := strings.TrimSpace(in.BirthDate); v != "" {
		u.BirthDate = v
	}
	if v := strings.TrimSpace(in.Phone); v != "" {
		u.Phone = v
	}
	if v := strings.TrimSpace(in.RUT); v != "" {
		u.RUT = v
	}
	if v := strings.TrimSpace(in.Password); v != "" {
		if len(v) < s.passwordMin {
			return nil, fmt.Errorf("password must be at least %d characters", s.passwordMin)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(v), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hashed)
	}
	if err := s.repo.Update(ctx, *u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) saveSession(ctx context.Context, u *domain.User) error {
	if err := s.prefs.Set(ctx, prefs.KeyCurrentUserID, u.ID); err != nil {
		return err
	}
	if err := s.prefs.Set(ctx, prefs.KeySessionEmail, u.Email); err != nil {
		return err
	}
	return s.prefs.SetBool(ctx, prefs.KeyLoggedIn, true)
}
