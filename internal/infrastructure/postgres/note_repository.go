package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/entity"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/repository"
)

var _ repository.NoteRepository = (*NoteRepo)(nil)

// NoteRepo implementación de NoteRepository (usable con pool o tx).
type NoteRepo struct {
	q Querier
}

// NewNoteRepository construye el adaptador.
func NewNoteRepository(q Querier) *NoteRepo {
	return &NoteRepo{q: q}
}

// Create persiste una nueva nota.
func (r *NoteRepo) Create(note *entity.Note) error {
	query := `
		INSERT INTO notes (id, client_id, author_id, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		note.ID, note.ClientID, note.AuthorID, note.Body, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // el cliente o el autor no existen
		}
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// GetByID obtiene una nota por ID.
func (r *NoteRepo) GetByID(id string) (*entity.Note, error) {
	query := `
		SELECT id, client_id, author_id, body, created_at, updated_at
		FROM notes WHERE id = $1`
	var n entity.Note
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.ClientID, &n.AuthorID, &n.Body, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get note: %w", err)
	}
	return &n, nil
}

// ListByClient lista notas de un cliente, más recientes primero.
func (r *NoteRepo) ListByClient(clientID string, limit, offset int) ([]*entity.Note, error) {
	query := `
		SELECT id, client_id, author_id, body, created_at, updated_at
		FROM notes WHERE client_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Note
	for rows.Next() {
		var n entity.Note
		if err := rows.Scan(&n.ID, &n.ClientID, &n.AuthorID, &n.Body, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// Update actualiza el cuerpo de una nota.
func (r *NoteRepo) Update(note *entity.Note) error {
	query := `UPDATE notes SET body = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, note.ID, note.Body, note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

// Delete elimina una nota por ID.
func (r *NoteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
