package handlers

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"collegeblog/internal/config"
	"collegeblog/internal/models"
	"collegeblog/internal/service"
)

// Authenticator resolves a bearer token to the user it was issued for.
type Authenticator interface {
	Resolve(ctx context.Context, accessToken string) (*models.User, error)
}

type Handlers struct {
	Auth                    Authenticator
	AuthService             service.AuthService
	UserService             service.UserService
	PostService             service.PostService
	ResourceService         service.ResourceService
	ClubService             service.ClubService
	PostCategoryService     service.CategoryService
	ResourceCategoryService service.CategoryService
	ClubCategoryService     service.CategoryService
	BookmarkService         service.BookmarkService
	UploadService           service.UploadService
	HealthService           service.HealthService
	Cfg                     *config.Config
	Validate                *validator.Validate
}

func NewHandlers(svc *service.Service, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:                    svc.Auth,
		AuthService:             svc.Auth,
		UserService:             svc.User,
		PostService:             svc.Post,
		ResourceService:         svc.Resource,
		ClubService:             svc.Club,
		PostCategoryService:     svc.PostCategory,
		ResourceCategoryService: svc.ResourceCategory,
		ClubCategoryService:     svc.ClubCategory,
		BookmarkService:         svc.Bookmark,
		UploadService:           svc.Upload,
		HealthService:           svc.Health,
		Cfg:                     cfg,
		Validate:                NewValidator(),
	}
}

// NewValidator reports failing fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
