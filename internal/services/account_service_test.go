package services

import (
	"context"
	"errors"
	"testing"

	"github.com/maxeffectus/route-planner-sub001/internal/models/db_models"
	"github.com/maxeffectus/route-planner-sub001/internal/models/request_models"
	"github.com/maxeffectus/route-planner-sub001/pkg/utils"
)

type mockAccountRepo struct {
	byEmail  map[string]*db_models.Account
	inserted *db_models.Account
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return m.byEmail[email], nil
}

func (m *mockAccountRepo) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	return nil, nil
}

func (m *mockAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	m.inserted = account
	return nil
}

func TestCreateAccount(t *testing.T) {
	repo := &mockAccountRepo{byEmail: map[string]*db_models.Account{}}
	svc := NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Sam",
		Email:       "sam@example.com",
		Password:    "correct-horse",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.inserted == nil {
		t.Fatal("account not inserted")
	}
	if repo.inserted.PasswordHash == "correct-horse" {
		t.Error("password stored in plain text")
	}
	if err := utils.ComparePasswords(repo.inserted.PasswordHash, "correct-horse"); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	repo := &mockAccountRepo{byEmail: map[string]*db_models.Account{
		"sam@example.com": {Email: "sam@example.com"},
	}}
	svc := NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Sam",
		Email:       "sam@example.com",
		Password:    "correct-horse",
	})
	if !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Fatalf("got %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse")
	if err != nil {
		t.Fatal(err)
	}
	repo := &mockAccountRepo{byEmail: map[string]*db_models.Account{
		"sam@example.com": {Email: "sam@example.com", PasswordHash: hash},
	}}
	svc := NewAccountService(repo)
	ctx := context.Background()

	_, wrongPass := svc.Login(ctx, request_models.LoginRequest{Email: "sam@example.com", Password: "wrong"})
	_, unknown := svc.Login(ctx, request_models.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	if !errors.Is(wrongPass, utils.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", wrongPass)
	}
	if !errors.Is(unknown, utils.ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", unknown)
	}
	if wrongPass.Error() != unknown.Error() {
		t.Error("credential errors must be indistinguishable")
	}
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse")
	if err != nil {
		t.Fatal(err)
	}
	repo := &mockAccountRepo{byEmail: map[string]*db_models.Account{
		"sam@example.com": {Email: "sam@example.com", PasswordHash: hash},
	}}
	svc := NewAccountService(repo)

	token, err := svc.Login(context.Background(), request_models.LoginRequest{Email: "sam@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Error("expected a signed token")
	}
}
