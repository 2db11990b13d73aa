package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/models"
)

// assocTable describes one junction table: which two tables it joins and
// through which columns. The three instantiations below (have, refer,
// reference) differ only in this description.
type assocTable struct {
	table       string
	leftCol     string
	rightCol    string
	leftTable   string
	leftPK      string
	rightTable  string
	rightPK     string
	leftEntity  string
	rightEntity string
}

type associationRepository[L any, R any] struct {
	db   *sqlx.DB
	meta assocTable
}

func NewHaveRepository(db *sqlx.DB) AssociationRepository[models.Tag, models.Resource] {
	return &associationRepository[models.Tag, models.Resource]{
		db: db,
		meta: assocTable{
			table:       "have",
			leftCol:     "tag_uuid",
			rightCol:    "ressource_uuid",
			leftTable:   "tags",
			leftPK:      "tag_uuid",
			rightTable:  "ressources",
			rightPK:     "ressource_uuid",
			leftEntity:  "Tag",
			rightEntity: "Resource",
		},
	}
}

func NewReferRepository(db *sqlx.DB) AssociationRepository[models.Tag, models.SharingSession] {
	return &associationRepository[models.Tag, models.SharingSession]{
		db: db,
		meta: assocTable{
			table:       "refer",
			leftCol:     "tag_uuid",
			rightCol:    "sharing_session_uuid",
			leftTable:   "tags",
			leftPK:      "tag_uuid",
			rightTable:  "sharing_sessions",
			rightPK:     "sharing_session_uuid",
			leftEntity:  "Tag",
			rightEntity: "Sharing session",
		},
	}
}

func NewReferenceRepository(db *sqlx.DB) AssociationRepository[models.Resource, models.SharingSession] {
	return &associationRepository[models.Resource, models.SharingSession]{
		db: db,
		meta: assocTable{
			table:       "reference",
			leftCol:     "ressource_uuid",
			rightCol:    "sharing_session_uuid",
			leftTable:   "ressources",
			leftPK:      "ressource_uuid",
			rightTable:  "sharing_sessions",
			rightPK:     "sharing_session_uuid",
			leftEntity:  "Resource",
			rightEntity: "Sharing session",
		},
	}
}

// CreatePair verifies both sides exist, then inserts the pair, all in one
// transaction. A pair that already exists is rejected with a conflict.
func (r *associationRepository[L, R]) CreatePair(ctx context.Context, leftID, rightID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := r.checkExists(ctx, tx, r.meta.leftTable, r.meta.leftPK, r.meta.leftEntity, leftID); err != nil {
		return err
	}
	if err := r.checkExists(ctx, tx, r.meta.rightTable, r.meta.rightPK, r.meta.rightEntity, rightID); err != nil {
		return err
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		r.meta.table, r.meta.leftCol, r.meta.rightCol,
	)

	_, err = tx.ExecContext(ctx, query, leftID, rightID)
	if err != nil {
		if translated := translatePQError(err, "Association", "pair"); translated != err {
			return translated
		}
		return fmt.Errorf("failed to create association: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit association: %w", err)
	}

	return nil
}

func (r *associationRepository[L, R]) checkExists(ctx context.Context, tx *sqlx.Tx, table, pk, entity, id string) error {
	var exists bool

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, table, pk)

	if err := tx.GetContext(ctx, &exists, query, id); err != nil {
		return fmt.Errorf("failed to check %s existence: %w", table, err)
	}

	if !exists {
		return &NotFoundError{Entity: entity, ID: id}
	}

	return nil
}

func (r *associationRepository[L, R]) DeletePair(ctx context.Context, leftID, rightID string) (bool, error) {
	query := fmt.Sprintf(
		`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		r.meta.table, r.meta.leftCol, r.meta.rightCol,
	)

	result, err := r.db.ExecContext(ctx, query, leftID, rightID)
	if err != nil {
		return false, fmt.Errorf("failed to delete association: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check deleted rows: %w", err)
	}

	return rowsAffected > 0, nil
}

// RightsByLeft returns every right-side entity associated with leftID. A
// left entity with no associations yields an empty slice; an unknown left
// id yields a not-found error. The two cases are deliberately distinct.
func (r *associationRepository[L, R]) RightsByLeft(ctx context.Context, leftID string) ([]R, error) {
	var rights []R

	query := fmt.Sprintf(
		`SELECT e.* FROM %s e JOIN %s a ON a.%s = e.%s WHERE a.%s = $1`,
		r.meta.rightTable, r.meta.table, r.meta.rightCol, r.meta.rightPK, r.meta.leftCol,
	)

	if err := r.db.SelectContext(ctx, &rights, query, leftID); err != nil {
		return nil, fmt.Errorf("failed to list associations: %w", err)
	}

	if len(rights) == 0 {
		if err := r.checkExistsDB(ctx, r.meta.leftTable, r.meta.leftPK, r.meta.leftEntity, leftID); err != nil {
			return nil, err
		}
		return []R{}, nil
	}

	return rights, nil
}

func (r *associationRepository[L, R]) LeftsByRight(ctx context.Context, rightID string) ([]L, error) {
	var lefts []L

	query := fmt.Sprintf(
		`SELECT e.* FROM %s e JOIN %s a ON a.%s = e.%s WHERE a.%s = $1`,
		r.meta.leftTable, r.meta.table, r.meta.leftCol, r.meta.leftPK, r.meta.rightCol,
	)

	if err := r.db.SelectContext(ctx, &lefts, query, rightID); err != nil {
		return nil, fmt.Errorf("failed to list associations: %w", err)
	}

	if len(lefts) == 0 {
		if err := r.checkExistsDB(ctx, r.meta.rightTable, r.meta.rightPK, r.meta.rightEntity, rightID); err != nil {
			return nil, err
		}
		return []L{}, nil
	}

	return lefts, nil
}

func (r *associationRepository[L, R]) checkExistsDB(ctx context.Context, table, pk, entity, id string) error {
	var exists bool

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, table, pk)

	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return fmt.Errorf("failed to check %s existence: %w", table, err)
	}

	if !exists {
		return &NotFoundError{Entity: entity, ID: id}
	}

	return nil
}
