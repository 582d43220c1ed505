package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"monastery/internal/models/db_models"
	"monastery/internal/models/request_models"
	"monastery/internal/models/response_models"
	"monastery/internal/repositories"
	mem "monastery/pkg/memcache"
	"monastery/pkg/utils"
)

const (
	MinPasswordLength = 6
	MinUsernameLength = 3
	MaxUsernameLength = 50
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.AccountLoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (response_models.AccountResponse, error)
	Logout(tokenID, username string, expiresAt time.Time)
	GetAllAccounts(ctx context.Context) ([]response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenManager
	revoked     mem.RevokedTokenStore
	logger      *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	tokens *utils.TokenManager,
	revoked mem.RevokedTokenStore,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		revoked:     revoked,
		logger:      logger,
	}
}

// bootstrapRole makes the first account on a fresh site the administrator.
func bootstrapRole(existing int64) string {
	if existing == 0 {
		return db_models.RoleAdmin
	}
	return db_models.RoleUser
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.AccountLoginResponse, error) {

	startTime := time.Now()
	username := strings.TrimSpace(request.Username)

	account, err := a.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		return response_models.AccountLoginResponse{}, errors.Join(utils.ErrDatabaseError, err)
	}

	if account == nil {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(account.ID, account.Username, account.Role)
	if err != nil {
		return response_models.AccountLoginResponse{}, err
	}

	a.logger.Info("login succeeded",
		zap.String("username", account.Username),
		zap.String("role", account.Role),
		zap.Duration("took", time.Since(startTime)))

	return response_models.AccountLoginResponse{
		Token:     token,
		Role:      account.Role,
		Username:  account.Username,
		ExpiresIn: int64(a.tokens.TTL().Seconds()),
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (response_models.AccountResponse, error) {
	username := strings.TrimSpace(request.Username)
	if n := utf8.RuneCountInString(username); n < MinUsernameLength || n > MaxUsernameLength {
		return response_models.AccountResponse{}, utils.ErrInvalidUsername
	}
	if utf8.RuneCountInString(request.Password) < MinPasswordLength {
		return response_models.AccountResponse{}, utils.ErrWeakPassword
	}

	existingAccount, err := a.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		return response_models.AccountResponse{}, errors.Join(utils.ErrDatabaseError, err)
	}
	if existingAccount != nil {
		return response_models.AccountResponse{}, utils.ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return response_models.AccountResponse{}, err
	}

	newAccount := &db_models.Account{
		Username:     username,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, newAccount, bootstrapRole); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return response_models.AccountResponse{}, utils.ErrUsernameTaken
		}
		return response_models.AccountResponse{}, errors.Join(utils.ErrDatabaseError, err)
	}

	a.logger.Info("account created", zap.String("username", newAccount.Username), zap.String("role", newAccount.Role))
	return toAccountResponse(*newAccount), nil
}

// Logout revokes the token until its natural expiry.
func (a *AccountService) Logout(tokenID, username string, expiresAt time.Time) {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return
	}
	a.revoked.Revoke(tokenID, username, ttl)
	a.logger.Info("token revoked", zap.String("username", username))
}

func (a *AccountService) GetAllAccounts(ctx context.Context) ([]response_models.AccountResponse, error) {
	accounts, err := a.accountRepo.List(ctx)
	if err != nil {
		return nil, errors.Join(utils.ErrDatabaseError, err)
	}

	out := make([]response_models.AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, toAccountResponse(acc))
	}
	return out, nil
}

func toAccountResponse(acc db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:        acc.ID.String(),
		Username:  acc.Username,
		Role:      acc.Role,
		CreatedAt: utils.FormatRFC3339IST(utils.FromUnixSecondsIST(acc.CreatedAt)),
	}
}
