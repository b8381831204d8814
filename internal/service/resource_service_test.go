package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collegeblog/internal/apperror"
	"collegeblog/internal/config"
	"collegeblog/internal/models"
	"collegeblog/internal/repository"
	"collegeblog/internal/repository/mocks"
)

func TestResourceService_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockResourceRepository(gomock.NewController(t))
	svc := NewResourceService(repo, config.AnyAuthenticated)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *models.Resource) error {
		require.NotNil(t, r.OwnerID)
		assert.Equal(t, int64(3), *r.OwnerID)
		r.ID = 8
		return nil
	})
	repo.EXPECT().GetByID(gomock.Any(), int64(8)).Return(&models.Resource{ID: 8, Title: "Notes", OwnerID: int64Ptr(3)}, nil).Times(2)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().GetByID(gomock.Any(), int64(8)).Return(&models.Resource{ID: 8, Title: "Better notes", OwnerID: int64Ptr(3)}, nil)

	input := models.ResourceInput{Title: "Notes", Context: "c", Teachings: "t", Link: "https://example.com"}
	created, err := svc.CreateResource(ctx, testUser(3), input)
	require.NoError(t, err)
	assert.Equal(t, int64(8), created.ID)

	// another user may edit under the default policy
	input.Title = "Better notes"
	updated, err := svc.UpdateResource(ctx, testUser(4), 8, input)
	require.NoError(t, err)
	assert.Equal(t, "Better notes", updated.Title)
}

func TestResourceService_OwnerOnlyRejectsOrphans(t *testing.T) {
	repo := mocks.NewMockResourceRepository(gomock.NewController(t))
	svc := NewResourceService(repo, config.OwnerOnly)

	repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.Resource{ID: 1}, nil)

	err := svc.DeleteResource(context.Background(), testUser(1), 1)
	assert.True(t, apperror.Is(err, apperror.Forbidden))
}

func TestResourceService_GetMissing(t *testing.T) {
	repo := mocks.NewMockResourceRepository(gomock.NewController(t))
	svc := NewResourceService(repo, config.AnyAuthenticated)

	repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(nil, repository.ErrNotFound)

	_, err := svc.GetResource(context.Background(), 5)
	require.Error(t, err)
	assert.Equal(t, "Resource not found", apperror.From(err).Message)
}

func TestResourceService_RejectsBlankText(t *testing.T) {
	svc := NewResourceService(mocks.NewMockResourceRepository(gomock.NewController(t)), config.AnyAuthenticated)

	_, err := svc.CreateResource(context.Background(), testUser(1),
		models.ResourceInput{Title: "Notes", Context: "c", Teachings: "t", Link: "   "})

	require.True(t, apperror.Is(err, apperror.InvalidInput))
	assert.Contains(t, err.Error(), "link")
}
