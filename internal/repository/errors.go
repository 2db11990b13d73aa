package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Typed errors so that handlers can map failures to HTTP statuses without
// string matching: NotFoundError -> 404, ConflictError -> 409, everything
// else -> 500.

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

type ConflictError struct {
	Entity string
	Field  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s must be unique", e.Entity, e.Field)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

// InvalidError marks input a repository rejects before touching the
// database; handlers map it to 400.
type InvalidError struct {
	Msg string
}

func (e *InvalidError) Error() string {
	return e.Msg
}

func IsInvalid(err error) bool {
	var iv *InvalidError
	return errors.As(err, &iv)
}

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// translatePQError maps PostgreSQL constraint violations onto the typed
// errors above, so inserts stay single atomic statements instead of
// check-then-insert pairs with a race window in between.
func translatePQError(err error, entity, uniqueField string) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pqUniqueViolation:
		// Tables with several unique columns (users) report the violated
		// field through the constraint name.
		field := uniqueField
		for _, candidate := range []string{"username", "email", "title", "name"} {
			if strings.Contains(pqErr.Constraint, candidate) {
				field = candidate
				break
			}
		}
		return &ConflictError{Entity: entity, Field: field}
	case pqForeignKeyViolation:
		return &NotFoundError{Entity: referencedEntity(pqErr.Constraint)}
	}

	return err
}

// referencedEntity resolves a foreign key constraint name to the entity it
// points at, so clients never see raw constraint identifiers. Constraints
// follow the default <table>_<column>_fkey naming; more specific column
// names are checked first.
func referencedEntity(constraint string) string {
	for _, mapping := range []struct {
		needle string
		entity string
	}{
		{"_ressource_uuid", "Resource"},
		{"ressource_type", "Resource type"},
		{"ressource_status", "Resource status"},
		{"sharing_session", "Sharing session"},
		{"parent", "Comment"},
		{"role", "Role"},
		{"tag", "Tag"},
		{"updated_by", "User"},
		{"user", "User"},
		{"ressource", "Resource"},
	} {
		if strings.Contains(constraint, mapping.needle) {
			return mapping.entity
		}
	}
	return "Referenced entity"
}
