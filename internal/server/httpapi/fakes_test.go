package httpapi

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type fakeUsers struct {
	regResp *models.User
	regErr  error

	loginResp string
	loginErr  error

	verifyResp *models.User
	verifyErr  error

	lastToken string
}

func (f *fakeUsers) Register(ctx context.Context, username string, password string) (*models.User, error) {
	return f.regResp, f.regErr
}

func (f *fakeUsers) Login(ctx context.Context, username string, password string) (string, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeUsers) VerifyToken(ctx context.Context, token string) (*models.User, error) {
	f.lastToken = token
	return f.verifyResp, f.verifyErr
}

type fakeTasks struct {
	listResp []*models.Task
	listErr  error

	getResp *models.Task
	getErr  error

	createResp *models.Task
	createErr  error

	updateResp *models.Task
	updateErr  error

	deleteResp *models.Task
	deleteErr  error

	lastFilter models.TaskFilter
	lastID     string
	lastStatus models.TaskStatus
	lastUser   *models.User
}

func (f *fakeTasks) List(ctx context.Context, filter models.TaskFilter, user *models.User) ([]*models.Task, error) {
	f.lastFilter = filter
	f.lastUser = user
	return f.listResp, f.listErr
}

func (f *fakeTasks) Get(ctx context.Context, id string, user *models.User) (*models.Task, error) {
	f.lastID = id
	f.lastUser = user
	return f.getResp, f.getErr
}

func (f *fakeTasks) Create(ctx context.Context, title string, description string, user *models.User) (*models.Task, error) {
	f.lastUser = user
	return f.createResp, f.createErr
}

func (f *fakeTasks) UpdateStatus(ctx context.Context, id string, status models.TaskStatus, user *models.User) (*models.Task, error) {
	f.lastID = id
	f.lastStatus = status
	f.lastUser = user
	return f.updateResp, f.updateErr
}

func (f *fakeTasks) Delete(ctx context.Context, id string, user *models.User) (*models.Task, error) {
	f.lastID = id
	f.lastUser = user
	return f.deleteResp, f.deleteErr
}
