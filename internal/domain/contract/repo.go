package contract

import "context"

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Settings() SettingsRepo
}

// SettingsRepo is the key-value persistence collaborator
type SettingsRepo interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
	Remove(key string) error
	RemovePrefix(prefix string) (int64, error)
}
