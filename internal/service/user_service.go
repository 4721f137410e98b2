package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"blog-api/internal/domain"
	"blog-api/internal/repository"
)

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(uid, nombre string) (string, error)
}

// RegisterInput carries the registration form.
type RegisterInput struct {
	Email       string
	Password    string
	PassConfirm string
	Nombre      string
	Role        string
	Date        *time.Time
}

// Session is the outcome of a successful login or renewal.
type Session struct {
	UID    string
	Email  string
	Nombre string
	Token  string
}

// UserService describes registration, authentication and renewal.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Provision creates a user with any role, including superadmin.
	Provision(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Renew(identity domain.Identity) (*Session, error)
	// Identify resolves the current capabilities of a verified token subject.
	Identify(ctx context.Context, uid, displayName string) (domain.Identity, error)
	List(ctx context.Context) ([]domain.User, error)
}

type userService struct {
	users  repository.UserRepository
	tokens TokenIssuer
	cost   int
}

func NewUserService(users repository.UserRepository, tokens TokenIssuer) UserService {
	return &userService{
		users:  users,
		tokens: tokens,
		cost:   bcrypt.DefaultCost,
	}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if in.Role == domain.RoleSuperadmin {
		return nil, ErrRoleNotAllowed
	}
	return s.create(ctx, in)
}

func (s *userService) Provision(ctx context.Context, in RegisterInput) (*domain.User, error) {
	return s.create(ctx, in)
}

func (s *userService) create(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Nombre = strings.TrimSpace(in.Nombre)
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	// looked up first so a taken email wins over a mismatched confirmation;
	// the unique index still decides races below
	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrDuplicateAccount
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if in.Password != in.PassConfirm {
		return nil, ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Nombre:       in.Nombre,
		Role:         in.Role,
	}
	if user.Role == "" {
		user.Role = domain.RoleMember
	}
	if in.Date != nil {
		user.Date = *in.Date
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateAccount
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(email)
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownAccount
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Nombre)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{
		UID:    user.ID,
		Email:  user.Email,
		Nombre: user.Nombre,
		Token:  token,
	}, nil
}

func (s *userService) Renew(identity domain.Identity) (*Session, error) {
	token, err := s.tokens.Issue(identity.UID, identity.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("renew token: %w", err)
	}
	return &Session{
		UID:    identity.UID,
		Nombre: identity.DisplayName,
		Token:  token,
	}, nil
}

func (s *userService) Identify(ctx context.Context, uid, displayName string) (domain.Identity, error) {
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Identity{}, ErrUnknownAccount
		}
		return domain.Identity{}, err
	}
	return domain.NewIdentity(user.ID, displayName, user.Role), nil
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, len(users))
	for i := range users {
		out[i] = *sanitizeUser(&users[i])
	}
	return out, nil
}

func validateRegistration(in RegisterInput) error {
	verr := &ValidationError{}
	if !validEmail(in.Email) {
		verr.add("email", "a valid email is required")
	}
	if in.Nombre == "" {
		verr.add("nombre", "nombre is required")
	}
	if err := CheckPassword(in.Password); err != nil {
		verr.add("password", err.Error())
	}
	if in.PassConfirm == "" {
		verr.add("passConfirm", "passConfirm is required")
	}
	switch in.Role {
	case "", domain.RoleMember, domain.RoleEditor, domain.RoleSuperadmin:
	default:
		verr.add("role", "unknown role")
	}
	return verr.orNil()
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:     user.ID,
		Email:  user.Email,
		Nombre: user.Nombre,
		Role:   user.Role,
		Date:   user.Date,
	}
}
