package handlers

import (
	"github.com/go-playground/validator/v10"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/config"
	"github.com/rider974/CDA-fil-rouge-sub000/internal/models"
	"github.com/rider974/CDA-fil-rouge-sub000/internal/repository"
	"github.com/rider974/CDA-fil-rouge-sub000/internal/service"
)

// HealthChecker reports whether the backing store answers; database.DB
// satisfies it.
type HealthChecker interface {
	HealthCheck() error
}

type Handlers struct {
	DB                 HealthChecker
	AuthService        service.AuthService
	UserService        service.UserService
	UserRepo           repository.UserRepository
	RoleRepo           repository.RoleRepository
	ResourceService    service.ResourceService
	ResourceRepo       repository.ResourceRepository
	ResourceTypeRepo   repository.ResourceTypeRepository
	ResourceStatusRepo repository.ResourceStatusRepository
	TagRepo            repository.TagRepository
	CommentService     service.CommentService
	CommentRepo        repository.CommentRepository
	FollowRepo         repository.FollowRepository
	SessionService     service.SharingSessionService
	SessionRepo        repository.SharingSessionRepository
	HistoryService     service.StatusHistoryService
	Have               service.AssociationService[models.Tag, models.Resource]
	Refer              service.AssociationService[models.Tag, models.SharingSession]
	Reference          service.AssociationService[models.Resource, models.SharingSession]
	TablesService      service.TablesService
	Cfg                *config.Config
	Validate           *validator.Validate
}

func NewHandlers(db HealthChecker, repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		DB:                 db,
		AuthService:        service.Auth,
		UserService:        service.User,
		UserRepo:           repo.User,
		RoleRepo:           repo.Role,
		ResourceService:    service.Resource,
		ResourceRepo:       repo.Resource,
		ResourceTypeRepo:   repo.ResourceType,
		ResourceStatusRepo: repo.ResourceStatus,
		TagRepo:            repo.Tag,
		CommentService:     service.Comment,
		CommentRepo:        repo.Comment,
		FollowRepo:         repo.Follow,
		SessionService:     service.SharingSession,
		SessionRepo:        repo.SharingSession,
		HistoryService:     service.StatusHistory,
		Have:               service.Have,
		Refer:              service.Refer,
		Reference:          service.Reference,
		TablesService:      service.Tables,
		Cfg:                config,
		Validate:           validator.New(),
	}
}
