package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"collegeblog/internal/apperror"
	"collegeblog/internal/config"
	"collegeblog/internal/models"
	"collegeblog/internal/repository"
	"collegeblog/internal/repository/mocks"
	"collegeblog/internal/token"
)

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newTestAuthService(t *testing.T) (*authService, *mocks.MockUserRepository, *inlineTx, *recordingMailer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	tx := &inlineTx{}
	mail := &recordingMailer{}
	cfg := &config.Config{
		JWTSecretKey:         "test-secret",
		AccessTokenDuration:  30 * time.Minute,
		VerificationTokenTTL: time.Hour,
		FrontendURL:          "http://localhost:5173",
	}

	svc := NewAuthService(repo, tx, mail, token.NewIssuer(cfg.JWTSecretKey, cfg.AccessTokenDuration), cfg).(*authService)
	svc.now = func() time.Time { return fixedNow }
	svc.newVerify = func() (string, error) { return "verify-token", nil }

	return svc, repo, tx, mail
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo, tx, mail := newTestAuthService(t)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "alice@example.com").Return(nil, repository.ErrNotFound)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
			u.ID = 7
			u.IsActive = true
			return nil
		})

		user, err := svc.Register(ctx, models.CreateUserRequest{
			Email:    "  Alice@Example.com ",
			Password: "secret123",
			Username: strPtr(" alice "),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "alice", *user.Username)
		assert.False(t, user.IsVerified)
		assert.Equal(t, "verify-token", *user.VerificationToken)
		assert.Equal(t, fixedNow.Add(time.Hour), *user.VerificationTokenExpires)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))

		assert.Equal(t, 1, tx.calls)
		require.Len(t, mail.links, 1)
		assert.Equal(t, "http://localhost:5173/verify-email?token=verify-token", mail.links[0])
		assert.Equal(t, []string{"alice@example.com"}, mail.to)
	})

	t.Run("email already registered", func(t *testing.T) {
		svc, repo, tx, _ := newTestAuthService(t)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "bob@example.com").Return(testUser(1), nil)

		_, err := svc.Register(ctx, models.CreateUserRequest{Email: "bob@example.com", Password: "pw"})

		assert.True(t, apperror.Is(err, apperror.Conflict))
		assert.Equal(t, 0, tx.calls)
	})

	t.Run("username taken", func(t *testing.T) {
		svc, repo, _, mail := newTestAuthService(t)

		repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, repository.ErrNotFound)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(uniqueViolation("users_username_key"))

		_, err := svc.Register(ctx, models.CreateUserRequest{Email: "c@example.com", Password: "pw", Username: strPtr("carol")})

		require.Error(t, err)
		assert.True(t, apperror.Is(err, apperror.Conflict))
		assert.Equal(t, "Username already taken", apperror.From(err).Message)
		assert.Empty(t, mail.links)
	})

	t.Run("concurrent email insert loses the race", func(t *testing.T) {
		svc, repo, _, _ := newTestAuthService(t)

		repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, repository.ErrNotFound)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(uniqueViolation("users_email_key"))

		_, err := svc.Register(ctx, models.CreateUserRequest{Email: "d@example.com", Password: "pw"})

		assert.True(t, apperror.Is(err, apperror.Conflict))
		assert.Equal(t, "Email already registered", apperror.From(err).Message)
	})

	t.Run("mail failure rolls back", func(t *testing.T) {
		svc, repo, tx, mail := newTestAuthService(t)
		mail.err = errors.New("smtp: 535 authentication failed")

		repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, repository.ErrNotFound)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Register(ctx, models.CreateUserRequest{Email: "e@example.com", Password: "pw"})

		require.Error(t, err)
		assert.True(t, apperror.Is(err, apperror.UpstreamFailure))
		assert.True(t, tx.rolledBack)
	})

	t.Run("password too long", func(t *testing.T) {
		svc, repo, _, _ := newTestAuthService(t)

		repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, repository.ErrNotFound)

		_, err := svc.Register(ctx, models.CreateUserRequest{Email: "f@example.com", Password: strings.Repeat("x", 73)})

		assert.True(t, apperror.Is(err, apperror.InvalidInput))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		user     *models.User
		repoErr  error
		password string
		wantKind apperror.Kind
		wantOK   bool
	}{
		{
			name:     "valid credentials",
			user:     &models.User{ID: 3, Email: "a@example.com", PasswordHash: string(hash), IsActive: true},
			password: "secret123",
			wantOK:   true,
		},
		{
			name:     "wrong password",
			user:     &models.User{ID: 3, Email: "a@example.com", PasswordHash: string(hash), IsActive: true},
			password: "nope",
			wantKind: apperror.Unauthenticated,
		},
		{
			name:     "unknown email",
			repoErr:  repository.ErrNotFound,
			password: "secret123",
			wantKind: apperror.Unauthenticated,
		},
		{
			name:     "inactive user",
			user:     &models.User{ID: 3, Email: "a@example.com", PasswordHash: string(hash)},
			password: "secret123",
			wantKind: apperror.Forbidden,
		},
		{
			name:     "database down",
			repoErr:  errors.New("connection refused"),
			password: "secret123",
			wantKind: apperror.Internal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newTestAuthService(t)
			repo.EXPECT().GetUserByEmail(gomock.Any(), "a@example.com").Return(tt.user, tt.repoErr)

			resp, err := svc.Login(ctx, "A@example.com", tt.password)

			if !tt.wantOK {
				require.Error(t, err)
				assert.True(t, apperror.Is(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "bearer", resp.TokenType)

			claims, err := svc.tokens.Parse(resp.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, int64(3), claims.UserID)
		})
	}
}

func TestAuthService_VerifyEmail(t *testing.T) {
	ctx := context.Background()
	future := fixedNow.Add(30 * time.Minute)
	past := fixedNow.Add(-time.Minute)

	t.Run("verifies once", func(t *testing.T) {
		svc, repo, _, _ := newTestAuthService(t)
		pending := &models.User{ID: 5, VerificationToken: strPtr("tok"), VerificationTokenExpires: &future}

		repo.EXPECT().GetUserByVerificationToken(gomock.Any(), "tok").Return(pending, nil)
		repo.EXPECT().MarkVerified(gomock.Any(), int64(5), "tok").Return(&models.User{ID: 5, IsVerified: true}, nil)

		user, err := svc.VerifyEmail(ctx, "tok")
		require.NoError(t, err)
		assert.True(t, user.IsVerified)

		repo.EXPECT().GetUserByVerificationToken(gomock.Any(), "tok").Return(nil, repository.ErrNotFound)

		_, err = svc.VerifyEmail(ctx, "tok")
		assert.True(t, apperror.Is(err, apperror.InvalidToken))
	})

	t.Run("expired token is cleared", func(t *testing.T) {
		svc, repo, _, _ := newTestAuthService(t)
		stale := &models.User{ID: 6, VerificationToken: strPtr("old"), VerificationTokenExpires: &past}

		repo.EXPECT().GetUserByVerificationToken(gomock.Any(), "old").Return(stale, nil)
		repo.EXPECT().ClearVerificationToken(gomock.Any(), int64(6)).Return(nil)

		_, err := svc.VerifyEmail(ctx, "old")
		assert.True(t, apperror.Is(err, apperror.ExpiredToken))
	})

	t.Run("empty token", func(t *testing.T) {
		svc, _, _, _ := newTestAuthService(t)

		_, err := svc.VerifyEmail(ctx, "")
		assert.True(t, apperror.Is(err, apperror.InvalidToken))
	})
}

func TestAuthService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token", func(t *testing.T) {
		svc, repo, _, _ := newTestAuthService(t)
		accessToken, _, err := svc.tokens.Issue(9, "z@example.com")
		require.NoError(t, err)

		repo.EXPECT().GetUserByID(gomock.Any(), int64(9)).Return(&models.User{ID: 9, IsActive: true}, nil)

		user, err := svc.Resolve(ctx, accessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(9), user.ID)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc, _, _, _ := newTestAuthService(t)

		_, err := svc.Resolve(ctx, "not.a.jwt")
		assert.True(t, apperror.Is(err, apperror.Unauthenticated))
	})

	t.Run("token signed with another key", func(t *testing.T) {
		svc, _, _, _ := newTestAuthService(t)
		forged, _, err := token.NewIssuer("other-secret", time.Minute).Issue(9, "z@example.com")
		require.NoError(t, err)

		_, err = svc.Resolve(ctx, forged)
		assert.True(t, apperror.Is(err, apperror.Unauthenticated))
	})

	t.Run("user deleted after issue", func(t *testing.T) {
		svc, repo, _, _ := newTestAuthService(t)
		accessToken, _, err := svc.tokens.Issue(10, "gone@example.com")
		require.NoError(t, err)

		repo.EXPECT().GetUserByID(gomock.Any(), int64(10)).Return(nil, repository.ErrNotFound)

		_, err = svc.Resolve(ctx, accessToken)
		assert.True(t, apperror.Is(err, apperror.Unauthenticated))
	})

	t.Run("inactive user", func(t *testing.T) {
		svc, repo, _, _ := newTestAuthService(t)
		accessToken, _, err := svc.tokens.Issue(11, "off@example.com")
		require.NoError(t, err)

		repo.EXPECT().GetUserByID(gomock.Any(), int64(11)).Return(&models.User{ID: 11}, nil)

		_, err = svc.Resolve(ctx, accessToken)
		assert.True(t, apperror.Is(err, apperror.Unauthenticated))
	})
}
