// Package auth implements registration, login and token-based user
// resolution on top of the users repository.
package auth

import (
	"fmt"

	"github.com/cnlearn/cnlearn/internal/apperr"
	"github.com/cnlearn/cnlearn/internal/config"
	"github.com/cnlearn/cnlearn/internal/entities"
)

// UserStore defines the user data access the service needs. Absent users
// are nil results, not errors.
type UserStore interface {
	Get(id uint) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	Create(user *entities.User) error
	Update(user *entities.User, changes map[string]any) error
}

// UserOut is the public representation of a user. Password material never
// appears here.
type UserOut struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

// Token is the login response body.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Service handles authentication and account management.
type Service struct {
	users UserStore
	cfg   config.Auth
}

// NewService creates a new authentication service.
func NewService(users UserStore, cfg config.Auth) *Service {
	return &Service{users: users, cfg: cfg}
}

// Register creates a new active, non-superuser account. Registration with
// an email that is already taken is a conflict.
func (s *Service) Register(email, password, fullName string) (*UserOut, error) {
	existing, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("This email is already in use.")
	}

	hash, err := HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Email:          email,
		FullName:       fullName,
		HashedPassword: hash,
		IsActive:       true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	out, ok := mapUser(user)
	if !ok {
		return nil, apperr.Internal("There is an error with this user object.")
	}
	return out, nil
}

// Login verifies the credentials and issues a bearer token. A missing
// user and a wrong password are deliberately the same error; an inactive
// account is reported separately.
func (s *Service) Login(email, password string) (*Token, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.InvalidCredentials("Incorrect email or password")
	}
	if err := CheckPassword(password, user.HashedPassword); err != nil {
		return nil, apperr.InvalidCredentials("Incorrect email or password")
	}
	if !user.IsActive {
		return nil, apperr.InvalidCredentials("Inactive user")
	}

	signed, err := CreateAccessToken(user.ID, s.cfg.SecretKey, s.cfg.AccessTokenExpiry)
	if err != nil {
		return nil, err
	}
	return &Token{AccessToken: signed, TokenType: "bearer"}, nil
}

// CurrentUser resolves a bearer token to its user.
func (s *Service) CurrentUser(tokenString string) (*UserOut, error) {
	userID, err := ParseAccessToken(tokenString, s.cfg.SecretKey)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Get(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	out, ok := mapUser(user)
	if !ok {
		return nil, apperr.Internal("Problem with current user")
	}
	return out, nil
}

// UpdateProfile applies a partial update to an account. Only non-nil
// fields are touched; a new password is hashed before storage.
func (s *Service) UpdateProfile(userID uint, email, password, fullName *string) (*UserOut, error) {
	user, err := s.users.Get(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	changes := map[string]any{}
	if email != nil {
		changes["email"] = *email
	}
	if fullName != nil {
		changes["full_name"] = *fullName
	}
	if password != nil {
		hash, err := HashPassword(*password, s.cfg.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		changes["hashed_password"] = hash
	}
	if err := s.users.Update(user, changes); err != nil {
		return nil, err
	}

	// Map-form updates do not write back into the struct, so re-read the
	// row before mapping it out.
	user, err = s.users.Get(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	out, ok := mapUser(user)
	if !ok {
		return nil, apperr.Internal("There is an error with this user object.")
	}
	return out, nil
}

func mapUser(user *entities.User) (*UserOut, bool) {
	if user.ID == 0 || user.Email == "" {
		return nil, false
	}
	return &UserOut{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		IsActive:    user.IsActive,
		IsSuperuser: user.IsSuperuser,
	}, true
}
