package repository

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestTranslatePQErrorForeignKey(t *testing.T) {
	cases := []struct {
		constraint string
		want       string
	}{
		{"comments_ressource_uuid_fkey", "Resource not found"},
		{"comments_parent_uuid_fkey", "Comment not found"},
		{"ressources_ressource_type_uuid_fkey", "Resource type not found"},
		{"ressources_ressource_status_uuid_fkey", "Resource status not found"},
		{"ressources_updated_by_fkey", "User not found"},
		{"users_role_uuid_fkey", "Role not found"},
		{"have_tag_uuid_fkey", "Tag not found"},
		{"reference_sharing_session_uuid_fkey", "Sharing session not found"},
		{"follows_user_uuid_fkey", "User not found"},
		{"ressource_status_history_ressource_uuid_fkey", "Resource not found"},
		{"ressource_status_history_preview_state_fkey", "Resource status not found"},
	}

	for _, tc := range cases {
		t.Run(tc.constraint, func(t *testing.T) {
			err := translatePQError(&pq.Error{Code: "23503", Constraint: tc.constraint}, "Comment", "")

			assert.True(t, IsNotFound(err))
			assert.Equal(t, tc.want, err.Error())
			// The raw constraint identifier never reaches the client.
			assert.NotContains(t, err.Error(), "_fkey")
		})
	}
}

func TestTranslatePQErrorUniqueField(t *testing.T) {
	err := translatePQError(&pq.Error{Code: "23505", Constraint: "users_email_key"}, "User", "username")

	assert.True(t, IsConflict(err))
	assert.Equal(t, "User email must be unique", err.Error())
}
