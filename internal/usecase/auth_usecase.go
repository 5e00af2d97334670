package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jobradar/internal/domain/user"
	"jobradar/internal/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmptyName          = errors.New("full name is required")
)

type AuthUsecase struct {
	users        user.Repository
	tokens       jwt.Service
	bcryptRounds int
	now          func() time.Time
}

func NewAuthUsecase(users user.Repository, tokens jwt.Service, bcryptRounds int) *AuthUsecase {
	if bcryptRounds < bcrypt.MinCost || bcryptRounds > bcrypt.MaxCost {
		bcryptRounds = bcrypt.DefaultCost
	}
	return &AuthUsecase{users: users, tokens: tokens, bcryptRounds: bcryptRounds, now: time.Now}
}

type AuthResult struct {
	Token string     `json:"access_token"`
	User  PublicUser `json:"user"`
}

type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
}

func (u *AuthUsecase) Signup(ctx context.Context, email, fullName, password string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	fullName = strings.TrimSpace(fullName)

	if !strings.Contains(email, "@") || len(email) < 5 {
		return AuthResult{}, ErrInvalidEmail
	}
	if fullName == "" {
		return AuthResult{}, ErrEmptyName
	}
	if len(password) < 8 {
		return AuthResult{}, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.bcryptRounds)
	if err != nil {
		return AuthResult{}, err
	}

	newUser := user.User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
		CreatedAt:    u.now().UTC(),
	}
	if err := u.users.Create(ctx, newUser); err != nil {
		return AuthResult{}, err
	}

	return u.issue(newUser)
}

func (u *AuthUsecase) Signin(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	found, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	return u.issue(found)
}

func (u *AuthUsecase) Me(ctx context.Context, userID uuid.UUID) (PublicUser, error) {
	found, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return PublicUser{}, err
	}
	return publicUser(found), nil
}

func (u *AuthUsecase) issue(usr user.User) (AuthResult, error) {
	token, err := u.tokens.GenerateToken(usr.ID, usr.Email)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, User: publicUser(usr)}, nil
}

func publicUser(usr user.User) PublicUser {
	return PublicUser{ID: usr.ID, Email: usr.Email, FullName: usr.FullName}
}
