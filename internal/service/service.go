package service

import (
	"github.com/rider974/CDA-fil-rouge-sub000/internal/config"
	"github.com/rider974/CDA-fil-rouge-sub000/internal/models"
	"github.com/rider974/CDA-fil-rouge-sub000/internal/repository"
	"github.com/rider974/CDA-fil-rouge-sub000/internal/storage"
)

type Service struct {
	Auth           AuthService
	User           UserService
	Resource       ResourceService
	Comment        CommentService
	SharingSession SharingSessionService
	StatusHistory  StatusHistoryService
	Have           AssociationService[models.Tag, models.Resource]
	Refer          AssociationService[models.Tag, models.SharingSession]
	Reference      AssociationService[models.Resource, models.SharingSession]
	Tables         TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:           NewAuthService(rep.User, cfg),
		User:           NewUserService(rep.User, cfg),
		Resource:       NewResourceService(rep.Resource, rep.Attachment, storage, cfg),
		Comment:        NewCommentService(rep.Comment, rep.Resource),
		SharingSession: NewSharingSessionService(rep.SharingSession),
		StatusHistory:  NewStatusHistoryService(rep.StatusHistory, rep.Resource, rep.ResourceStatus),
		Have:           NewAssociationService(rep.Have),
		Refer:          NewAssociationService(rep.Refer),
		Reference:      NewAssociationService(rep.Reference),
		Tables:         NewTablesService(rep.Tables),
	}
}
