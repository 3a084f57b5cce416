package usecases

import (
	"context"

	"mangedesk/internal/domain/asset"
	"mangedesk/internal/shared/logger"
)

type mockAssetRepository struct {
	SaveFunc       func(ctx context.Context, a *asset.Asset) error
	UpdateFunc     func(ctx context.Context, a *asset.Asset) error
	FindByIDFunc   func(ctx context.Context, id uint) (*asset.Asset, error)
	FindByCodeFunc func(ctx context.Context, code string) (*asset.Asset, error)
	ListFunc       func(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error)
	DeleteFunc     func(ctx context.Context, id uint) error
}

func (m *mockAssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) FindByID(ctx context.Context, id uint) (*asset.Asset, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAssetRepository) FindByCode(ctx context.Context, code string) (*asset.Asset, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockAssetRepository) List(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockAssetRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockAssetHistoryRepository struct {
	AppendFunc      func(ctx context.Context, entry *asset.HistoryEntry) error
	ListByAssetFunc func(ctx context.Context, assetID uint) ([]*asset.HistoryEntry, error)
}

func (m *mockAssetHistoryRepository) Append(ctx context.Context, entry *asset.HistoryEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	return nil
}

func (m *mockAssetHistoryRepository) ListByAsset(ctx context.Context, assetID uint) ([]*asset.HistoryEntry, error) {
	if m.ListByAssetFunc != nil {
		return m.ListByAssetFunc(ctx, assetID)
	}
	return nil, nil
}

type fakeTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (f *fakeTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.RunFunc != nil {
		return f.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
