package services

import (
	"context"
	"fmt"

	"github.com/maxeffectus/route-planner-sub001/internal/models/db_models"
	"github.com/maxeffectus/route-planner-sub001/internal/models/request_models"
	"github.com/maxeffectus/route-planner-sub001/internal/repositories"
	"github.com/maxeffectus/route-planner-sub001/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, req request_models.SignUpRequest) error
	Login(ctx context.Context, req request_models.LoginRequest) (string, error)
}

type AccountService struct {
	accounts repositories.AccountRepository
}

func NewAccountService(accounts repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{accounts: accounts}
}

func (s *AccountService) CreateAccount(ctx context.Context, req request_models.SignUpRequest) error {
	existing, err := s.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return err
	}

	account := &db_models.Account{
		Name:         req.DisplayName,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.accounts.Insert(ctx, account); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

// Login checks credentials and returns a signed token. Unknown email
// and wrong password report the same error to avoid account probing.
func (s *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (string, error) {
	account, err := s.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return utils.CreateToken(account.ID)
}
