package http

import (
	"context"

	"github.com/seong-ho-y/bitrogue-project/internal/logger"
	"github.com/seong-ho-y/bitrogue-project/internal/service"
	"github.com/seong-ho-y/bitrogue-project/models"
)

// Hand-written service doubles with overridable behaviour per test case.

type mockAuthService struct {
	registerUserFunc func(ctx context.Context, user models.User) (models.User, error)
	loginFunc        func(ctx context.Context, user models.User) (models.User, error)
	highScoreFunc    func(ctx context.Context, userID int64) (int64, error)
	createTokenFunc  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFunc   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFunc(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFunc(ctx, user)
}

func (m *mockAuthService) HighScore(ctx context.Context, userID int64) (int64, error) {
	return m.highScoreFunc(ctx, userID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFunc == nil {
		return models.Token{SignedString: "test-token"}, nil
	}
	return m.createTokenFunc(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFunc(ctx, tokenString)
}

type mockScoreService struct {
	submitScoreFunc func(ctx context.Context, userID int64, req models.SubmitScoreRequest) (models.Score, error)
	topScoresFunc   func(ctx context.Context, limit uint64) ([]models.Score, error)
}

func (m *mockScoreService) SubmitScore(ctx context.Context, userID int64, req models.SubmitScoreRequest) (models.Score, error) {
	return m.submitScoreFunc(ctx, userID, req)
}

func (m *mockScoreService) TopScores(ctx context.Context, limit uint64) ([]models.Score, error) {
	return m.topScoresFunc(ctx, limit)
}

type mockPickupService struct {
	logPickupFunc func(ctx context.Context, req models.LogPickupRequest) (models.PickupLog, error)
}

func (m *mockPickupService) LogPickup(ctx context.Context, req models.LogPickupRequest) (models.PickupLog, error) {
	return m.logPickupFunc(ctx, req)
}

type mockCodexService struct {
	addItemFunc   func(ctx context.Context, item models.Item, notice *models.LogPickupRequest) (models.Item, error)
	getItemFunc   func(ctx context.Context, code string) (models.Item, error)
	listItemsFunc func(ctx context.Context) ([]models.Item, error)
	seedFunc      func(ctx context.Context) error
}

func (m *mockCodexService) AddItem(ctx context.Context, item models.Item, notice *models.LogPickupRequest) (models.Item, error) {
	return m.addItemFunc(ctx, item, notice)
}

func (m *mockCodexService) GetItem(ctx context.Context, code string) (models.Item, error) {
	return m.getItemFunc(ctx, code)
}

func (m *mockCodexService) ListItems(ctx context.Context) ([]models.Item, error) {
	return m.listItemsFunc(ctx)
}

func (m *mockCodexService) Seed(ctx context.Context) error {
	return m.seedFunc(ctx)
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, logger.Nop())
}
