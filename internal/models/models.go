package models

import (
	"time"
)

type Role struct {
	RoleUUID  string    `json:"role_uuid" db:"role_uuid"`
	RoleName  string    `json:"role_name" db:"role_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type User struct {
	UserUUID     string    `json:"user_uuid" db:"user_uuid"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	RoleUUID     string    `json:"role_uuid" db:"role_uuid"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type ResourceType struct {
	ResourceTypeUUID string `json:"ressource_type_uuid" db:"ressource_type_uuid"`
	TypeName         string `json:"type_name" db:"type_name"`
}

type ResourceStatus struct {
	ResourceStatusUUID string `json:"ressource_status_uuid" db:"ressource_status_uuid"`
	Name               string `json:"name" db:"name"`
}

type Resource struct {
	ResourceUUID       string    `json:"ressource_uuid" db:"ressource_uuid"`
	Title              string    `json:"title" db:"title"`
	Content            string    `json:"content" db:"content"`
	Summary            *string   `json:"summary" db:"summary"`
	IsReported         bool      `json:"is_reported" db:"is_reported"`
	UserUUID           string    `json:"user_uuid" db:"user_uuid"`
	UpdatedBy          *string   `json:"updated_by" db:"updated_by"`
	ResourceTypeUUID   string    `json:"ressource_type_uuid" db:"ressource_type_uuid"`
	ResourceStatusUUID string    `json:"ressource_status_uuid" db:"ressource_status_uuid"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// ResourceStatusHistory is an append-only audit row: one row per effective
// status transition of a resource. PreviewState holds the status before the
// change, NewState the status after it.
type ResourceStatusHistory struct {
	HistoryUUID  string    `json:"history_uuid" db:"history_uuid"`
	ChangedAt    time.Time `json:"changed_at" db:"changed_at"`
	PreviewState string    `json:"preview_state" db:"preview_state"`
	NewState     string    `json:"new_state" db:"new_state"`
	ResourceUUID string    `json:"ressource_uuid" db:"ressource_uuid"`
}

type Tag struct {
	TagUUID  string `json:"tag_uuid" db:"tag_uuid"`
	TagTitle string `json:"tag_title" db:"tag_title"`
}

type Comment struct {
	CommentUUID  string    `json:"comment_uuid" db:"comment_uuid"`
	Content      string    `json:"content" db:"content"`
	IsReported   bool      `json:"is_reported" db:"is_reported"`
	ParentUUID   *string   `json:"parent_uuid" db:"parent_uuid"`
	UserUUID     string    `json:"user_uuid" db:"user_uuid"`
	ResourceUUID string    `json:"ressource_uuid" db:"ressource_uuid"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Follow is the (followed user, follower) edge between two users.
type Follow struct {
	UserUUID         string    `json:"user_uuid" db:"user_uuid"`
	UserUUIDFollower string    `json:"user_uuid_follower" db:"user_uuid_follower"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

type SharingSession struct {
	SharingSessionUUID string    `json:"sharing_session_uuid" db:"sharing_session_uuid"`
	Title              string    `json:"title" db:"title"`
	Description        *string   `json:"description" db:"description"`
	StartDatetime      time.Time `json:"start_datetime" db:"start_datetime"`
	EndDatetime        time.Time `json:"end_datetime" db:"end_datetime"`
	UserUUID           string    `json:"user_uuid" db:"user_uuid"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// Association records. Each is a bare pair; the composite primary key in the
// schema makes duplicate pairs impossible.

type Have struct {
	TagUUID      string `json:"tag_uuid" db:"tag_uuid"`
	ResourceUUID string `json:"ressource_uuid" db:"ressource_uuid"`
}

type Refer struct {
	TagUUID            string `json:"tag_uuid" db:"tag_uuid"`
	SharingSessionUUID string `json:"sharing_session_uuid" db:"sharing_session_uuid"`
}

type Reference struct {
	ResourceUUID       string `json:"ressource_uuid" db:"ressource_uuid"`
	SharingSessionUUID string `json:"sharing_session_uuid" db:"sharing_session_uuid"`
}

type Attachment struct {
	AttachmentUUID string    `json:"attachment_uuid" db:"attachment_uuid"`
	ResourceUUID   string    `json:"ressource_uuid" db:"ressource_uuid"`
	FileURL        string    `json:"file_url" db:"file_url"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
