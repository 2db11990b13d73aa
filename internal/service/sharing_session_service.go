package service

import (
	"context"
	"time"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/models"
	"github.com/rider974/CDA-fil-rouge-sub000/internal/repository"
)

type CreateSharingSessionRequest struct {
	Title         string    `json:"title" validate:"required,max=255"`
	Description   *string   `json:"description"`
	StartDatetime time.Time `json:"start_datetime" validate:"required"`
	EndDatetime   time.Time `json:"end_datetime" validate:"required"`
	UserUUID      string    `json:"user_uuid" validate:"required,uuid4"`
}

type UpdateSharingSessionRequest struct {
	SharingSessionUUID string    `json:"sharing_session_uuid"`
	Title              string    `json:"title" validate:"required,max=255"`
	Description        *string   `json:"description"`
	StartDatetime      time.Time `json:"start_datetime" validate:"required"`
	EndDatetime        time.Time `json:"end_datetime" validate:"required"`
}

// PatchSharingSessionRequest carries pointer fields: only the ones present
// in the request body are written.
type PatchSharingSessionRequest struct {
	SharingSessionUUID string     `json:"sharing_session_uuid"`
	Title              *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description        *string    `json:"description"`
	StartDatetime      *time.Time `json:"start_datetime"`
	EndDatetime        *time.Time `json:"end_datetime"`
}

type SharingSessionService interface {
	CreateSession(ctx context.Context, req CreateSharingSessionRequest) (*models.SharingSession, error)
	UpdateSession(ctx context.Context, req UpdateSharingSessionRequest) (*models.SharingSession, error)
	PatchSession(ctx context.Context, req PatchSharingSessionRequest) (*models.SharingSession, error)
	DeleteSession(ctx context.Context, sessionUUID string) error
}

type sharingSessionService struct {
	sessionRepo repository.SharingSessionRepository
}

func NewSharingSessionService(sessionRepo repository.SharingSessionRepository) SharingSessionService {
	return &sharingSessionService{sessionRepo: sessionRepo}
}

func (s *sharingSessionService) CreateSession(ctx context.Context, req CreateSharingSessionRequest) (*models.SharingSession, error) {
	if !req.EndDatetime.After(req.StartDatetime) {
		return nil, &ValidationError{Msg: "Session end must be after its start"}
	}

	session := &models.SharingSession{
		Title:         req.Title,
		Description:   req.Description,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		UserUUID:      req.UserUUID,
	}

	err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (s *sharingSessionService) UpdateSession(ctx context.Context, req UpdateSharingSessionRequest) (*models.SharingSession, error) {
	if !req.EndDatetime.After(req.StartDatetime) {
		return nil, &ValidationError{Msg: "Session end must be after its start"}
	}

	session, err := s.sessionRepo.GetByUUID(ctx, req.SharingSessionUUID)
	if err != nil {
		return nil, err
	}

	session.Title = req.Title
	session.Description = req.Description
	session.StartDatetime = req.StartDatetime
	session.EndDatetime = req.EndDatetime

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *sharingSessionService) PatchSession(ctx context.Context, req PatchSharingSessionRequest) (*models.SharingSession, error) {
	session, err := s.sessionRepo.GetByUUID(ctx, req.SharingSessionUUID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		session.Title = *req.Title
	}
	if req.Description != nil {
		session.Description = req.Description
	}
	if req.StartDatetime != nil {
		session.StartDatetime = *req.StartDatetime
	}
	if req.EndDatetime != nil {
		session.EndDatetime = *req.EndDatetime
	}

	// The window is validated on the effective values, so a patch moving
	// only one bound cannot invert the session.
	if !session.EndDatetime.After(session.StartDatetime) {
		return nil, &ValidationError{Msg: "Session end must be after its start"}
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *sharingSessionService) DeleteSession(ctx context.Context, sessionUUID string) error {
	return s.sessionRepo.Delete(ctx, sessionUUID)
}
