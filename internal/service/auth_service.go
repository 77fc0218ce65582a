// internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/repository"
	"finance-tracker/internal/token"
	"finance-tracker/internal/util"
	"finance-tracker/pkg/db"
)

// TokenPair bundles the short-lived access token and the long-lived
// refresh token returned by login and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService defines the interface for authentication business logic.
type AuthService interface {
	// Signup registers a new user. Returns util.ErrUserExists if the email
	// is already taken. No tokens are issued; the caller must log in.
	Signup(ctx context.Context, email, password string) error
	// Login verifies credentials and issues a fresh token pair, overwriting
	// any previously stored refresh token for the user.
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	// Refresh exchanges a valid refresh token for a new token pair, rotating
	// the stored refresh token so the presented one becomes permanently invalid.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

// ErrInvalidOrExpiredToken is returned by Refresh when the presented token
// fails signature or expiry verification, as opposed to being well-formed
// but superseded (util.ErrInvalidRefreshToken).
var ErrInvalidOrExpiredToken = errors.New("invalid or expired refresh token")

// authService implements the AuthService interface.
type authService struct {
	dbBeginner db.DBTxBeginner
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	tokens     *token.Service
	bcryptCost int
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	tokens *token.Service,
	bcryptCost int,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) AuthService {
	return &authService{
		dbBeginner: dbBeginner,
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
	}
}

// Signup hashes the password and persists a new user with no active
// refresh token. The duplicate check runs inside a transaction; the unique
// index on email backstops concurrent signups for the same address.
func (s *authService) Signup(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return util.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("signup: failed to hash password: %w", err)
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return fmt.Errorf("signup: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return fmt.Errorf("signup: transaction controller does not implement DBExecutor")
	}

	_, err = s.userRepo.GetUserByEmail(ctx, txExecutor, email)
	if err == nil {
		return util.ErrUserExists
	}
	if !errors.Is(err, util.ErrNotFound) {
		return fmt.Errorf("signup: failed to check existing user: %w", err)
	}

	user := domain.NewUser(email, string(hash))
	if err := s.userRepo.CreateUser(ctx, txExecutor, user); err != nil {
		if errors.Is(err, util.ErrUserExists) {
			return util.ErrUserExists
		}
		return fmt.Errorf("signup: failed to create user: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return fmt.Errorf("signup: failed to commit transaction: %w", err)
	}
	return nil
}

// Login verifies the password against the stored bcrypt hash and issues a
// fresh token pair. Storing the new refresh token invalidates whatever
// refresh token the user held before: one live session per user.
func (s *authService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, s.dbExecutor, email)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("login: failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	pair, err := s.issueTokenPair(user.ID)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := s.userRepo.SetRefreshToken(ctx, s.dbExecutor, user.ID, pair.RefreshToken); err != nil {
		return nil, fmt.Errorf("login: failed to store refresh token: %w", err)
	}
	return pair, nil
}

// Refresh verifies the presented refresh token, checks it is still the one
// on record, and rotates it. The rotation is a conditional update on the
// old token value, so reuse of a superseded token and concurrent refreshes
// are both rejected with util.ErrInvalidRefreshToken.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.tokens.Verify(refreshToken, token.KindRefresh)
	if err != nil {
		return nil, ErrInvalidOrExpiredToken
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("refresh: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("refresh: transaction controller does not implement DBExecutor")
	}

	user, err := s.userRepo.GetUserByID(ctx, txExecutor, userID)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("refresh: failed to get user: %w", err)
	}
	if user.RefreshToken != refreshToken {
		// A superseded token is being replayed.
		return nil, util.ErrInvalidRefreshToken
	}

	pair, err := s.issueTokenPair(user.ID)
	if err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}

	rotated, err := s.userRepo.RotateRefreshToken(ctx, txExecutor, user.ID, refreshToken, pair.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("refresh: failed to rotate refresh token: %w", err)
	}
	if !rotated {
		// A concurrent refresh won the conditional update.
		return nil, util.ErrInvalidRefreshToken
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("refresh: failed to commit transaction: %w", err)
	}
	return pair, nil
}

func (s *authService) issueTokenPair(userID string) (*TokenPair, error) {
	access, err := s.tokens.Issue(userID, token.KindAccess)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refresh, err := s.tokens.Issue(userID, token.KindRefresh)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
