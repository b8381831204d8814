package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collegeblog/internal/apperror"
	"collegeblog/internal/models"
	"collegeblog/internal/repository"
	"collegeblog/internal/repository/mocks"
)

func TestUserService_UpdateUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("free name", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(gomock.NewController(t))
		svc := NewUserService(repo)

		repo.EXPECT().GetUserByUsername(gomock.Any(), "neo").Return(nil, repository.ErrNotFound)
		repo.EXPECT().UpdateUsername(gomock.Any(), int64(1), "neo").Return(&models.User{ID: 1, Username: strPtr("neo")}, nil)

		user, err := svc.UpdateUsername(ctx, testUser(1), models.UpdateUsernameRequest{Username: " neo "})
		require.NoError(t, err)
		assert.Equal(t, "neo", *user.Username)
	})

	t.Run("taken by someone else", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(gomock.NewController(t))
		svc := NewUserService(repo)

		repo.EXPECT().GetUserByUsername(gomock.Any(), "neo").Return(&models.User{ID: 2}, nil)

		_, err := svc.UpdateUsername(ctx, testUser(1), models.UpdateUsernameRequest{Username: "neo"})
		assert.True(t, apperror.Is(err, apperror.Conflict))
	})

	t.Run("unchanged own name", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(gomock.NewController(t))
		svc := NewUserService(repo)

		repo.EXPECT().GetUserByUsername(gomock.Any(), "neo").Return(&models.User{ID: 1}, nil)
		repo.EXPECT().UpdateUsername(gomock.Any(), int64(1), "neo").Return(&models.User{ID: 1, Username: strPtr("neo")}, nil)

		_, err := svc.UpdateUsername(ctx, testUser(1), models.UpdateUsernameRequest{Username: "neo"})
		assert.NoError(t, err)
	})
}
