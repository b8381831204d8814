package service

import (
	"collegeblog/internal/config"
	"collegeblog/internal/database"
	"collegeblog/internal/mailer"
	"collegeblog/internal/repository"
	"collegeblog/internal/storage"
	"collegeblog/internal/token"
)

type Service struct {
	Auth             AuthService
	User             UserService
	Post             PostService
	Resource         ResourceService
	Club             ClubService
	PostCategory     CategoryService
	ResourceCategory CategoryService
	ClubCategory     CategoryService
	Bookmark         BookmarkService
	Upload           UploadService
	Health           HealthService
}

func NewService(rep *repository.Repository, cfg *config.Config, tx database.Transactor, store storage.Storage, mail mailer.Mailer) *Service {
	tokens := token.NewIssuer(cfg.JWTSecretKey, cfg.AccessTokenDuration)

	return &Service{
		Auth:             NewAuthService(rep.User, tx, mail, tokens, cfg),
		User:             NewUserService(rep.User),
		Post:             NewPostService(rep.Post, cfg.Ownership.Post),
		Resource:         NewResourceService(rep.Resource, cfg.Ownership.Resource),
		Club:             NewClubService(rep.Club, cfg.Ownership.Club),
		PostCategory:     NewCategoryService(rep.PostCategory),
		ResourceCategory: NewCategoryService(rep.ResourceCategory),
		ClubCategory:     NewCategoryService(rep.ClubCategory),
		Bookmark:         NewBookmarkService(rep.Bookmark),
		Upload:           NewUploadService(store, cfg.MaxUploadSize),
		Health:           NewHealthService(rep.Health),
	}
}
