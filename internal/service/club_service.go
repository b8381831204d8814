package service

import (
	"context"
	"strings"

	"collegeblog/internal/config"
	"collegeblog/internal/models"
	"collegeblog/internal/repository"
)

type ClubService interface {
	CreateClub(ctx context.Context, user *models.User, input models.ClubInput) (*models.Club, error)
	GetClub(ctx context.Context, clubID int64) (*models.Club, error)
	ListClubs(ctx context.Context, filter repository.ListFilter) ([]models.Club, error)
	UpdateClub(ctx context.Context, user *models.User, clubID int64, input models.ClubInput) (*models.Club, error)
	DeleteClub(ctx context.Context, user *models.User, clubID int64) error
}

type clubService struct {
	clubRepo repository.ClubRepository
	policy   config.OwnershipPolicy
}

func NewClubService(clubRepo repository.ClubRepository, policy config.OwnershipPolicy) ClubService {
	return &clubService{
		clubRepo: clubRepo,
		policy:   policy,
	}
}

func (s *clubService) CreateClub(ctx context.Context, user *models.User, input models.ClubInput) (*models.Club, error) {
	if err := authorizeMutation(config.AnyAuthenticated, user, nil, "club"); err != nil {
		return nil, err
	}
	if err := requireText("name", input.Name, "description", input.Description); err != nil {
		return nil, err
	}

	club := &models.Club{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		ImageURL:    input.ImageURL,
		CategoryID:  input.CategoryID,
		OwnerID:     &user.ID,
	}

	if err := s.clubRepo.Create(ctx, club); err != nil {
		return nil, repoError(err, "Club")
	}

	return s.GetClub(ctx, club.ID)
}

func (s *clubService) GetClub(ctx context.Context, clubID int64) (*models.Club, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, repoError(err, "Club")
	}
	return club, nil
}

func (s *clubService) ListClubs(ctx context.Context, filter repository.ListFilter) ([]models.Club, error) {
	clubs, err := s.clubRepo.List(ctx, filter.Normalize())
	if err != nil {
		return nil, repoError(err, "Club")
	}
	return clubs, nil
}

func (s *clubService) UpdateClub(ctx context.Context, user *models.User, clubID int64, input models.ClubInput) (*models.Club, error) {
	club, err := s.GetClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	if err := authorizeMutation(s.policy, user, club.OwnerID, "club"); err != nil {
		return nil, err
	}
	if err := requireText("name", input.Name, "description", input.Description); err != nil {
		return nil, err
	}

	club.Name = strings.TrimSpace(input.Name)
	club.Description = input.Description
	club.ImageURL = input.ImageURL
	club.CategoryID = input.CategoryID

	if err := s.clubRepo.Update(ctx, club); err != nil {
		return nil, repoError(err, "Club")
	}

	return s.GetClub(ctx, clubID)
}

func (s *clubService) DeleteClub(ctx context.Context, user *models.User, clubID int64) error {
	club, err := s.GetClub(ctx, clubID)
	if err != nil {
		return err
	}

	if err := authorizeMutation(s.policy, user, club.OwnerID, "club"); err != nil {
		return err
	}

	if err := s.clubRepo.Delete(ctx, clubID); err != nil {
		return repoError(err, "Club")
	}

	return nil
}
