package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"collegeblog/internal/apperror"
	"collegeblog/internal/config"
	"collegeblog/internal/database"
	"collegeblog/internal/logger"
	"collegeblog/internal/mailer"
	"collegeblog/internal/models"
	"collegeblog/internal/repository"
	"collegeblog/internal/token"
)

const usernameConstraint = "users_username_key"

type AuthService interface {
	Register(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.TokenResponse, error)
	VerifyEmail(ctx context.Context, verificationToken string) (*models.User, error)
	// Resolve maps a bearer token to the live user it was issued for.
	Resolve(ctx context.Context, accessToken string) (*models.User, error)
}

type authService struct {
	userRepo  repository.UserRepository
	tx        database.Transactor
	mailer    mailer.Mailer
	tokens    *token.Issuer
	cfg       *config.Config
	now       func() time.Time
	newVerify func() (string, error)
}

func NewAuthService(userRepo repository.UserRepository, tx database.Transactor, mail mailer.Mailer, tokens *token.Issuer, cfg *config.Config) AuthService {
	return &authService{
		userRepo:  userRepo,
		tx:        tx,
		mailer:    mail,
		tokens:    tokens,
		cfg:       cfg,
		now:       time.Now,
		newVerify: token.NewVerificationToken,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	email := normalizeEmail(req.Email)

	// fast path, the unique constraint still decides
	if _, err := s.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, apperror.NewConflict("Email already registered", nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, repoError(err, "User")
	}

	var username *string
	if req.Username != nil {
		if trimmed := strings.TrimSpace(*req.Username); trimmed != "" {
			username = &trimmed
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperror.NewInvalidInput("Password must be at most 72 bytes", err)
		}
		return nil, apperror.NewInternal("Failed to hash password", err)
	}

	verificationToken, err := s.newVerify()
	if err != nil {
		return nil, apperror.NewInternal("Failed to create verification token", err)
	}
	expires := s.now().Add(s.cfg.VerificationTokenTTL)

	user := &models.User{
		Email:                    email,
		Username:                 username,
		PasswordHash:             string(hashed),
		VerificationToken:        &verificationToken,
		VerificationTokenExpires: &expires,
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.userRepo.CreateUser(ctx, user); err != nil {
			return err
		}

		link := s.cfg.FrontendURL + "/verify-email?token=" + url.QueryEscape(verificationToken)
		if err := s.mailer.SendVerification(ctx, user.Email, link); err != nil {
			logger.Log.Errorw("verification email failed, rolling back registration", "email", user.Email, "error", err)
			return apperror.NewUpstreamFailure("Failed to send verification email", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			if repository.ConstraintName(err) == usernameConstraint {
				return nil, apperror.NewConflict("Username already taken", err)
			}
			return nil, apperror.NewConflict("Email already registered", err)
		}
		return nil, repoError(err, "User")
	}

	logger.Log.Infow("user registered", "user_id", user.ID)
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	invalid := apperror.NewUnauthenticated("Incorrect username or password", nil)

	user, err := s.userRepo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, invalid
		}
		return nil, repoError(err, "User")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, invalid
	}

	if !user.IsActive {
		return nil, apperror.NewForbidden("Inactive user", nil)
	}

	accessToken, _, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperror.NewInternal("Failed to issue access token", err)
	}

	return &models.TokenResponse{AccessToken: accessToken, TokenType: "bearer"}, nil
}

func (s *authService) VerifyEmail(ctx context.Context, verificationToken string) (*models.User, error) {
	if verificationToken == "" {
		return nil, apperror.NewInvalidToken("Invalid verification token", nil)
	}

	user, err := s.userRepo.GetUserByVerificationToken(ctx, verificationToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NewInvalidToken("Invalid verification token", err)
		}
		return nil, repoError(err, "User")
	}

	if user.VerificationTokenExpires == nil || s.now().After(*user.VerificationTokenExpires) {
		if err := s.userRepo.ClearVerificationToken(ctx, user.ID); err != nil {
			logger.Log.Warnw("failed to clear expired verification token", "user_id", user.ID, "error", err)
		}
		return nil, apperror.NewExpiredToken("Verification token has expired", nil)
	}

	verified, err := s.userRepo.MarkVerified(ctx, user.ID, verificationToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NewInvalidToken("Invalid verification token", err)
		}
		return nil, repoError(err, "User")
	}

	logger.Log.Infow("email verified", "user_id", verified.ID)
	return verified, nil
}

func (s *authService) Resolve(ctx context.Context, accessToken string) (*models.User, error) {
	claims, err := s.tokens.Parse(accessToken)
	if err != nil {
		if errors.Is(err, token.ErrExpiredToken) {
			return nil, apperror.NewUnauthenticated("Token has expired", err)
		}
		return nil, apperror.NewUnauthenticated("Could not validate credentials", err)
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NewUnauthenticated("Could not validate credentials", err)
		}
		return nil, repoError(err, "User")
	}

	if !user.IsActive {
		return nil, apperror.NewUnauthenticated("Inactive user", nil)
	}

	return user, nil
}
