package service

import (
	"context"
	"strings"

	"collegeblog/internal/config"
	"collegeblog/internal/models"
	"collegeblog/internal/repository"
)

type ResourceService interface {
	CreateResource(ctx context.Context, user *models.User, input models.ResourceInput) (*models.Resource, error)
	GetResource(ctx context.Context, resourceID int64) (*models.Resource, error)
	ListResources(ctx context.Context, filter repository.ListFilter) ([]models.Resource, error)
	UpdateResource(ctx context.Context, user *models.User, resourceID int64, input models.ResourceInput) (*models.Resource, error)
	DeleteResource(ctx context.Context, user *models.User, resourceID int64) error
}

type resourceService struct {
	resourceRepo repository.ResourceRepository
	policy       config.OwnershipPolicy
}

func NewResourceService(resourceRepo repository.ResourceRepository, policy config.OwnershipPolicy) ResourceService {
	return &resourceService{
		resourceRepo: resourceRepo,
		policy:       policy,
	}
}

func (s *resourceService) CreateResource(ctx context.Context, user *models.User, input models.ResourceInput) (*models.Resource, error) {
	if err := authorizeMutation(config.AnyAuthenticated, user, nil, "resource"); err != nil {
		return nil, err
	}
	if err := requireText("title", input.Title, "context", input.Context, "teachings", input.Teachings, "link", input.Link); err != nil {
		return nil, err
	}

	resource := &models.Resource{
		Title:      strings.TrimSpace(input.Title),
		Context:    input.Context,
		Teachings:  input.Teachings,
		Link:       strings.TrimSpace(input.Link),
		ImageURL:   input.ImageURL,
		CategoryID: input.CategoryID,
		OwnerID:    &user.ID,
	}

	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, repoError(err, "Resource")
	}

	return s.GetResource(ctx, resource.ID)
}

func (s *resourceService) GetResource(ctx context.Context, resourceID int64) (*models.Resource, error) {
	resource, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return nil, repoError(err, "Resource")
	}
	return resource, nil
}

func (s *resourceService) ListResources(ctx context.Context, filter repository.ListFilter) ([]models.Resource, error) {
	resources, err := s.resourceRepo.List(ctx, filter.Normalize())
	if err != nil {
		return nil, repoError(err, "Resource")
	}
	return resources, nil
}

func (s *resourceService) UpdateResource(ctx context.Context, user *models.User, resourceID int64, input models.ResourceInput) (*models.Resource, error) {
	resource, err := s.GetResource(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	if err := authorizeMutation(s.policy, user, resource.OwnerID, "resource"); err != nil {
		return nil, err
	}
	if err := requireText("title", input.Title, "context", input.Context, "teachings", input.Teachings, "link", input.Link); err != nil {
		return nil, err
	}

	resource.Title = strings.TrimSpace(input.Title)
	resource.Context = input.Context
	resource.Teachings = input.Teachings
	resource.Link = strings.TrimSpace(input.Link)
	resource.ImageURL = input.ImageURL
	resource.CategoryID = input.CategoryID

	if err := s.resourceRepo.Update(ctx, resource); err != nil {
		return nil, repoError(err, "Resource")
	}

	return s.GetResource(ctx, resourceID)
}

func (s *resourceService) DeleteResource(ctx context.Context, user *models.User, resourceID int64) error {
	resource, err := s.GetResource(ctx, resourceID)
	if err != nil {
		return err
	}

	if err := authorizeMutation(s.policy, user, resource.OwnerID, "resource"); err != nil {
		return err
	}

	if err := s.resourceRepo.Delete(ctx, resourceID); err != nil {
		return repoError(err, "Resource")
	}

	return nil
}
