package service

import (
	"context"

	"github.com/seong-ho-y/bitrogue-project/models"
)

// Hand-written repository doubles with overridable behaviour per test case.

type mockUserRepository struct {
	createUserFunc         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFunc func(ctx context.Context, username string) (models.User, error)
	getUserByIDFunc        func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFunc(ctx, user)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsernameFunc(ctx, username)
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserByIDFunc(ctx, userID)
}

type mockScoreRepository struct {
	submitFunc    func(ctx context.Context, score models.Score) (models.Score, error)
	topScoresFunc func(ctx context.Context, limit uint64) ([]models.Score, error)
}

func (m *mockScoreRepository) Submit(ctx context.Context, score models.Score) (models.Score, error) {
	return m.submitFunc(ctx, score)
}

func (m *mockScoreRepository) TopScores(ctx context.Context, limit uint64) ([]models.Score, error) {
	return m.topScoresFunc(ctx, limit)
}

type mockPickupLogRepository struct {
	insertFunc func(ctx context.Context, pickup models.PickupLog) (models.PickupLog, error)
}

func (m *mockPickupLogRepository) Insert(ctx context.Context, pickup models.PickupLog) (models.PickupLog, error) {
	return m.insertFunc(ctx, pickup)
}

type mockItemRepository struct {
	createItemFunc func(ctx context.Context, item models.Item) (models.Item, error)
	getItemFunc    func(ctx context.Context, code string) (models.Item, error)
	listItemsFunc  func(ctx context.Context) ([]models.Item, error)
}

func (m *mockItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	return m.createItemFunc(ctx, item)
}

func (m *mockItemRepository) GetItem(ctx context.Context, code string) (models.Item, error) {
	return m.getItemFunc(ctx, code)
}

func (m *mockItemRepository) ListItems(ctx context.Context) ([]models.Item, error) {
	return m.listItemsFunc(ctx)
}

type mockPickupNotifier struct {
	notifyPickupFunc func(ctx context.Context, req models.LogPickupRequest) error
}

func (m *mockPickupNotifier) NotifyPickup(ctx context.Context, req models.LogPickupRequest) error {
	return m.notifyPickupFunc(ctx, req)
}
