package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"collegeblog/internal/models"
	"collegeblog/internal/repository"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenResponse), args.Error(1)
}

func (m *MockAuthService) VerifyEmail(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Resolve(ctx context.Context, accessToken string) (*models.User, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) UpdateUsername(ctx context.Context, user *models.User, req models.UpdateUsernameRequest) (*models.User, error) {
	args := m.Called(ctx, user, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, user *models.User, input models.PostInput) (*models.Post, error) {
	args := m.Called(ctx, user, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) ListPosts(ctx context.Context, filter repository.ListFilter) ([]models.Post, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, user *models.User, postID int64, input models.PostInput) (*models.Post, error) {
	args := m.Called(ctx, user, postID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, user *models.User, postID int64) error {
	args := m.Called(ctx, user, postID)
	return args.Error(0)
}

type MockResourceService struct {
	mock.Mock
}

func (m *MockResourceService) CreateResource(ctx context.Context, user *models.User, input models.ResourceInput) (*models.Resource, error) {
	args := m.Called(ctx, user, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resource), args.Error(1)
}

func (m *MockResourceService) GetResource(ctx context.Context, resourceID int64) (*models.Resource, error) {
	args := m.Called(ctx, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resource), args.Error(1)
}

func (m *MockResourceService) ListResources(ctx context.Context, filter repository.ListFilter) ([]models.Resource, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Resource), args.Error(1)
}

func (m *MockResourceService) UpdateResource(ctx context.Context, user *models.User, resourceID int64, input models.ResourceInput) (*models.Resource, error) {
	args := m.Called(ctx, user, resourceID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resource), args.Error(1)
}

func (m *MockResourceService) DeleteResource(ctx context.Context, user *models.User, resourceID int64) error {
	args := m.Called(ctx, user, resourceID)
	return args.Error(0)
}

type MockClubService struct {
	mock.Mock
}

func (m *MockClubService) CreateClub(ctx context.Context, user *models.User, input models.ClubInput) (*models.Club, error) {
	args := m.Called(ctx, user, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Club), args.Error(1)
}

func (m *MockClubService) GetClub(ctx context.Context, clubID int64) (*models.Club, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Club), args.Error(1)
}

func (m *MockClubService) ListClubs(ctx context.Context, filter repository.ListFilter) ([]models.Club, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Club), args.Error(1)
}

func (m *MockClubService) UpdateClub(ctx context.Context, user *models.User, clubID int64, input models.ClubInput) (*models.Club, error) {
	args := m.Called(ctx, user, clubID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Club), args.Error(1)
}

func (m *MockClubService) DeleteClub(ctx context.Context, user *models.User, clubID int64) error {
	args := m.Called(ctx, user, clubID)
	return args.Error(0)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, user *models.User, input models.CategoryInput) (*models.Category, error) {
	args := m.Called(ctx, user, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) GetCategory(ctx context.Context, categoryID int64) (*models.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) ListCategories(ctx context.Context, skip, limit int) ([]models.Category, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, user *models.User, categoryID int64, input models.CategoryInput) (*models.Category, error) {
	args := m.Called(ctx, user, categoryID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, user *models.User, categoryID int64) error {
	args := m.Called(ctx, user, categoryID)
	return args.Error(0)
}

type MockBookmarkService struct {
	mock.Mock
}

func (m *MockBookmarkService) CreateBookmark(ctx context.Context, user *models.User, input models.BookmarkInput) (*models.Bookmark, error) {
	args := m.Called(ctx, user, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bookmark), args.Error(1)
}

func (m *MockBookmarkService) ListBookmarks(ctx context.Context, user *models.User, skip, limit int) ([]models.Bookmark, error) {
	args := m.Called(ctx, user, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bookmark), args.Error(1)
}

func (m *MockBookmarkService) DeleteBookmark(ctx context.Context, user *models.User, bookmarkID int64) error {
	args := m.Called(ctx, user, bookmarkID)
	return args.Error(0)
}

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) UploadImage(ctx context.Context, fileName, contentType string, data []byte) (*models.UploadResult, error) {
	args := m.Called(ctx, fileName, contentType, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UploadResult), args.Error(1)
}

type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) Check(ctx context.Context) models.HealthStatus {
	args := m.Called(ctx)
	return args.Get(0).(models.HealthStatus)
}
