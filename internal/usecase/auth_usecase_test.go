package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"jobradar/internal/domain/user"
	"jobradar/internal/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]user.User
	byID    map[uuid.UUID]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]user.User{},
		byID:    map[uuid.UUID]user.User{},
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return user.ErrEmailTaken
	}
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func newTestAuthUsecase() (*AuthUsecase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	tokens := jwt.NewHMACService("test-secret", time.Hour)
	return NewAuthUsecase(repo, tokens, 4), repo
}

func TestAuth_SignupSigninRoundtrip(t *testing.T) {
	uc, _ := newTestAuthUsecase()
	ctx := context.Background()

	signedUp, err := uc.Signup(ctx, "Dev@Example.com", "Dev Person", "hunter2secret")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if signedUp.Token == "" {
		t.Fatal("signup returned empty token")
	}
	if signedUp.User.Email != "dev@example.com" {
		t.Fatalf("email not normalized: %q", signedUp.User.Email)
	}

	signedIn, err := uc.Signin(ctx, "dev@example.com", "hunter2secret")
	if err != nil {
		t.Fatalf("signin failed: %v", err)
	}
	if signedIn.User.ID != signedUp.User.ID {
		t.Fatal("signin returned a different user")
	}

	me, err := uc.Me(ctx, signedIn.User.ID)
	if err != nil {
		t.Fatalf("me failed: %v", err)
	}
	if me.FullName != "Dev Person" {
		t.Fatalf("unexpected profile: %+v", me)
	}
}

func TestAuth_WrongPassword(t *testing.T) {
	uc, _ := newTestAuthUsecase()
	ctx := context.Background()

	if _, err := uc.Signup(ctx, "a@example.com", "A B", "correcthorse"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if _, err := uc.Signin(ctx, "a@example.com", "wrongpassword"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := uc.Signin(ctx, "nobody@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user should map to ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_SignupValidation(t *testing.T) {
	uc, _ := newTestAuthUsecase()
	ctx := context.Background()

	if _, err := uc.Signup(ctx, "not-an-email", "A B", "longenough"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if _, err := uc.Signup(ctx, "a@example.com", "  ", "longenough"); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if _, err := uc.Signup(ctx, "a@example.com", "A B", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestAuth_DuplicateEmail(t *testing.T) {
	uc, _ := newTestAuthUsecase()
	ctx := context.Background()

	if _, err := uc.Signup(ctx, "a@example.com", "A B", "longenough"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if _, err := uc.Signup(ctx, "A@Example.com", "A B", "longenough"); !errors.Is(err, user.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuth_TokenCarriesUserID(t *testing.T) {
	uc, _ := newTestAuthUsecase()
	tokens := jwt.NewHMACService("test-secret", time.Hour)

	res, err := uc.Signup(context.Background(), "a@example.com", "A B", "longenough")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	claims, err := tokens.ValidateToken(res.Token)
	if err != nil {
		t.Fatalf("token did not validate: %v", err)
	}
	if claims.UserID != res.User.ID {
		t.Fatalf("claims user mismatch: %s vs %s", claims.UserID, res.User.ID)
	}
}
