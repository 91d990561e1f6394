package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements task storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {

	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO tasks (id, title, description, status, user_id)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.Title, task.Description, task.Status, task.UserID).
		Scan(&task.CreatedAt, &task.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// FindByFilter returns all tasks owned by userID matching the filter.
// Status matches exactly; Search is a substring match against title OR
// description. Results are ordered by creation time.
func (r *PostgresRepository) FindByFilter(ctx context.Context, filter models.TaskFilter, userID string) ([]*models.Task, error) {

	var b strings.Builder
	b.WriteString(`SELECT id, title, description, status, user_id, created_at, updated_at FROM tasks WHERE user_id = $1`)

	args := []any{userID}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		b.WriteString(` AND status = $` + strconv.Itoa(len(args)))
	}

	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		n := strconv.Itoa(len(args))
		b.WriteString(` AND (title LIKE $` + n + ` OR description LIKE $` + n + `)`)
	}

	b.WriteString(` ORDER BY created_at`)

	rows, err := r.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select tasks: %w", err)
	}
	defer rows.Close()

	result := []*models.Task{}
	for rows.Next() {
		var item models.Task
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Description, &item.Status, &item.UserID,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID fetches a single task owned by userID. A task owned by someone
// else is indistinguishable from a missing one.
func (r *PostgresRepository) GetByID(ctx context.Context, id string, userID string) (*models.Task, error) {
	query :=
		`SELECT id, title, description, status, user_id, created_at, updated_at FROM tasks
		 WHERE id = $1 AND user_id = $2
		 `

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&task.ID, &task.Title, &task.Description, &task.Status, &task.UserID,
		&task.CreatedAt, &task.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// UpdateStatus sets the status of an owned task and returns the updated row.
// A miss on (id, userID) yields common.ErrorNotFound.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, userID string, status models.TaskStatus) (*models.Task, error) {
	query :=
		`UPDATE tasks SET status = $1, updated_at = now()
		 WHERE id = $2 AND user_id = $3
		 RETURNING id, title, description, status, user_id, created_at, updated_at
		 `

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, status, id, userID).Scan(
		&task.ID, &task.Title, &task.Description, &task.Status, &task.UserID,
		&task.CreatedAt, &task.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// Delete removes an owned task. A miss on (id, userID) yields
// common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, id string, userID string) error {
	query :=
		`DELETE FROM tasks
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
