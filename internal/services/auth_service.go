package services

import (
	"errors"
	"fmt"

	"agrimart/internal/models"
	"agrimart/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// Authentication failures the handler maps to distinct responses.
var (
	ErrInvalidAdminCredentials = errors.New("invalid admin credentials")
	ErrWrongPassword           = errors.New("wrong password")
)

// AuthService handles registration and per-request credential checks. There
// are no sessions or tokens; every request asserts identity in its body.
type AuthService struct {
	userRepo          repositories.UserRepository
	adminEmail        string
	adminPasswordHash string
	bcryptCost        int
}

// NewAuthService creates a new AuthService. adminPasswordHash is a bcrypt
// hash supplied through configuration; when empty, admin login always fails.
func NewAuthService(userRepo repositories.UserRepository, adminEmail, adminPasswordHash string, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		userRepo:          userRepo,
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		bcryptCost:        bcryptCost,
	}
}

// RegisterUser hashes the user's password and saves the user. Email
// uniqueness is enforced by the store; a duplicate surfaces as
// repositories.ErrDuplicateEmail without a prior existence read.
func (s *AuthService) RegisterUser(user *models.User) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword) // Store the hashed password

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return err
		}
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// LoginResult is the identity returned on a successful login.
type LoginResult struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Login authenticates a credential triple. The admin role is checked against
// the configured administrator credential through the same bcrypt path as
// ordinary users; other roles are looked up in the store by (email, role).
func (s *AuthService) Login(email, password, role string) (*LoginResult, error) {
	if role == models.RoleAdmin {
		if s.adminPasswordHash == "" || email != s.adminEmail {
			return nil, ErrInvalidAdminCredentials
		}
		if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
			return nil, ErrInvalidAdminCredentials
		}
		return &LoginResult{Name: "Admin", Role: models.RoleAdmin}, nil
	}

	user, err := s.userRepo.GetByEmailAndRole(email, role)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}

	return &LoginResult{Name: user.Name, Role: user.Role}, nil
}
