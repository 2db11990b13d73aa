package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByUUID(ctx context.Context, userUUID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, userUUID string) error
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
}

type RoleRepository interface {
	Create(ctx context.Context, role *models.Role) error
	GetByUUID(ctx context.Context, roleUUID string) (*models.Role, error)
	GetAll(ctx context.Context) ([]models.Role, error)
	Update(ctx context.Context, role *models.Role) error
	Delete(ctx context.Context, roleUUID string) error
}

type ResourceTypeRepository interface {
	Create(ctx context.Context, resourceType *models.ResourceType) error
	GetByUUID(ctx context.Context, typeUUID string) (*models.ResourceType, error)
	GetAll(ctx context.Context) ([]models.ResourceType, error)
	Update(ctx context.Context, resourceType *models.ResourceType) error
	Delete(ctx context.Context, typeUUID string) error
}

type ResourceStatusRepository interface {
	Create(ctx context.Context, status *models.ResourceStatus) error
	GetByUUID(ctx context.Context, statusUUID string) (*models.ResourceStatus, error)
	GetAll(ctx context.Context) ([]models.ResourceStatus, error)
	Update(ctx context.Context, status *models.ResourceStatus) error
	Delete(ctx context.Context, statusUUID string) error
}

type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetByUUID(ctx context.Context, tagUUID string) (*models.Tag, error)
	GetAll(ctx context.Context) ([]models.Tag, error)
	Update(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, tagUUID string) error
}

type ResourceRepository interface {
	Create(ctx context.Context, resource *models.Resource) error
	GetByUUID(ctx context.Context, resourceUUID string) (*models.Resource, error)
	GetAll(ctx context.Context) ([]models.Resource, error)
	GetByUserUUID(ctx context.Context, userUUID string) ([]models.Resource, error)
	Update(ctx context.Context, resource *models.Resource) error
	Delete(ctx context.Context, resourceUUID string) error
	// UpdateStatus changes the current status of a resource and, when the
	// value actually changes, appends one history row in the same
	// transaction.
	UpdateStatus(ctx context.Context, resourceUUID, newStatusUUID, updatedBy string) (*models.Resource, error)
}

type StatusHistoryRepository interface {
	Create(ctx context.Context, history *models.ResourceStatusHistory) error
	GetByUUID(ctx context.Context, historyUUID string) (*models.ResourceStatusHistory, error)
	GetAll(ctx context.Context) ([]models.ResourceStatusHistory, error)
	GetByResourceUUID(ctx context.Context, resourceUUID string) ([]models.ResourceStatusHistory, error)
	Delete(ctx context.Context, historyUUID string) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByUUID(ctx context.Context, commentUUID string) (*models.Comment, error)
	GetByResourceUUID(ctx context.Context, resourceUUID string) ([]models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, commentUUID string) error
}

type FollowRepository interface {
	Create(ctx context.Context, followedUUID, followerUUID string) error
	Delete(ctx context.Context, followedUUID, followerUUID string) (bool, error)
	GetFollowers(ctx context.Context, followedUUID string) ([]models.User, error)
	GetFollowing(ctx context.Context, followerUUID string) ([]models.User, error)
}

type SharingSessionRepository interface {
	Create(ctx context.Context, session *models.SharingSession) error
	GetByUUID(ctx context.Context, sessionUUID string) (*models.SharingSession, error)
	GetAll(ctx context.Context) ([]models.SharingSession, error)
	Update(ctx context.Context, session *models.SharingSession) error
	Delete(ctx context.Context, sessionUUID string) error
}

// AssociationRepository manages a many-to-many junction between a left and a
// right entity kind. Have, Refer and Reference are the three instantiations.
type AssociationRepository[L any, R any] interface {
	CreatePair(ctx context.Context, leftID, rightID string) error
	// DeletePair reports whether a row was removed; a missing pair is a
	// normal outcome, not an error.
	DeletePair(ctx context.Context, leftID, rightID string) (bool, error)
	RightsByLeft(ctx context.Context, leftID string) ([]R, error)
	LeftsByRight(ctx context.Context, rightID string) ([]L, error)
}

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *models.Attachment) error
	GetByUUID(ctx context.Context, attachmentUUID string) (*models.Attachment, error)
	GetByResourceUUID(ctx context.Context, resourceUUID string) ([]models.Attachment, error)
	Delete(ctx context.Context, attachmentUUID string) error
}

type TablesRepository interface {
	CountTablesDB() (int, error)
}

type Repository struct {
	User           UserRepository
	Role           RoleRepository
	Resource       ResourceRepository
	ResourceType   ResourceTypeRepository
	ResourceStatus ResourceStatusRepository
	StatusHistory  StatusHistoryRepository
	Tag            TagRepository
	Comment        CommentRepository
	Follow         FollowRepository
	SharingSession SharingSessionRepository
	Have           AssociationRepository[models.Tag, models.Resource]
	Refer          AssociationRepository[models.Tag, models.SharingSession]
	Reference      AssociationRepository[models.Resource, models.SharingSession]
	Attachment     AttachmentRepository
	Tables         TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:           NewUserRepository(db),
		Role:           NewRoleRepository(db),
		Resource:       NewResourceRepository(db),
		ResourceType:   NewResourceTypeRepository(db),
		ResourceStatus: NewResourceStatusRepository(db),
		StatusHistory:  NewStatusHistoryRepository(db),
		Tag:            NewTagRepository(db),
		Comment:        NewCommentRepository(db),
		Follow:         NewFollowRepository(db),
		SharingSession: NewSharingSessionRepository(db),
		Have:           NewHaveRepository(db),
		Refer:          NewReferRepository(db),
		Reference:      NewReferenceRepository(db),
		Attachment:     NewAttachmentRepository(db),
		Tables:         NewTablesRepository(db),
	}
}
