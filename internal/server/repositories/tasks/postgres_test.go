package tasks

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func taskRows(tasks ...*models.Task) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "title", "description", "status", "user_id", "created_at", "updated_at"})
	for _, task := range tasks {
		rows.AddRow(task.ID, task.Title, task.Description, task.Status, task.UserID, task.CreatedAt, task.UpdatedAt)
	}
	return rows
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+tasks\s*\(id,\s*title,\s*description,\s*status,\s*user_id\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+created_at,\s*updated_at\s*$`

	now := time.Now()
	mock.ExpectQuery(q).
		WithArgs(sqlmock.AnyArg(), "buy milk", "", models.TaskStatusOpen, "u-1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	task := &models.Task{Title: "buy milk", Status: models.TaskStatusOpen, UserID: "u-1"}
	got, err := repo.Create(context.Background(), task)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected generated id, got empty")
	}
}

func TestFindByFilter_NoConstraints(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*title,\s*description,\s*status,\s*user_id,\s*created_at,\s*updated_at\s+FROM\s+tasks\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at$`

	now := time.Now()
	mock.ExpectQuery(q).
		WithArgs("u-1").
		WillReturnRows(taskRows(
			&models.Task{ID: "t-1", Title: "a", Status: models.TaskStatusOpen, UserID: "u-1", CreatedAt: now, UpdatedAt: now},
			&models.Task{ID: "t-2", Title: "b", Status: models.TaskStatusDone, UserID: "u-1", CreatedAt: now, UpdatedAt: now},
		))

	got, err := repo.FindByFilter(context.Background(), models.TaskFilter{}, "u-1")
	if err != nil {
		t.Fatalf("FindByFilter error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "t-1" || got[1].ID != "t-2" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestFindByFilter_StatusAndSearch(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+tasks\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+status\s*=\s*\$2\s+AND\s+\(title\s+LIKE\s+\$3\s+OR\s+description\s+LIKE\s+\$3\)\s+ORDER\s+BY\s+created_at$`

	status := models.TaskStatusOpen
	search := "milk"
	now := time.Now()
	mock.ExpectQuery(q).
		WithArgs("u-1", status, "%milk%").
		WillReturnRows(taskRows(
			&models.Task{ID: "t-1", Title: "buy milk", Status: status, UserID: "u-1", CreatedAt: now, UpdatedAt: now},
		))

	got, err := repo.FindByFilter(context.Background(), models.TaskFilter{Status: &status, Search: &search}, "u-1")
	if err != nil {
		t.Fatalf("FindByFilter error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "buy milk" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestFindByFilter_EmptyResultIsNotAnError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+tasks\s+WHERE\s+user_id\s*=\s*\$1`).
		WithArgs("u-1").
		WillReturnRows(taskRows())

	got, err := repo.FindByFilter(context.Background(), models.TaskFilter{}, "u-1")
	if err != nil {
		t.Fatalf("FindByFilter error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestGetByID_OwnerMiss(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*FROM\s+tasks\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s*$`

	mock.ExpectQuery(q).
		WithArgs("t-1", "u-2").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "t-1", "u-2")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestUpdateStatus_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+tasks\s+SET\s+status\s*=\s*\$1,\s*updated_at\s*=\s*now\(\)\s+WHERE\s+id\s*=\s*\$2\s+AND\s+user_id\s*=\s*\$3\s+RETURNING\s+`

	now := time.Now()
	mock.ExpectQuery(q).
		WithArgs(models.TaskStatusDone, "t-1", "u-1").
		WillReturnRows(taskRows(
			&models.Task{ID: "t-1", Title: "a", Status: models.TaskStatusDone, UserID: "u-1", CreatedAt: now, UpdatedAt: now},
		))

	got, err := repo.UpdateStatus(context.Background(), "t-1", "u-1", models.TaskStatusDone)
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if got.Status != models.TaskStatusDone {
		t.Fatalf("status not updated: %+v", got)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^UPDATE\s+tasks\s+SET\s+status`).
		WithArgs(models.TaskStatusDone, "t-404", "u-1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateStatus(context.Background(), "t-404", "u-1", models.TaskStatusDone)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+tasks\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s*$`

	mock.ExpectExec(q).
		WithArgs("t-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "t-1", "u-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+tasks`).
		WithArgs("t-404", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "t-404", "u-1")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
