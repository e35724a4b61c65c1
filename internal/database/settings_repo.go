package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/diegoclair/slack-break-bot/internal/domain/contract"
)

type settingsRepository struct {
	db dbConn
}

func newSettingsRepository(db dbConn) contract.SettingsRepo {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return value, true, nil
}

func (r *settingsRepository) Set(key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}

func (r *settingsRepository) Remove(key string) error {
	if _, err := r.db.Exec(`DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to remove setting %s: %w", key, err)
	}
	return nil
}

// RemovePrefix deletes every key starting with prefix. LIKE wildcards in the
// prefix are escaped so they match literally.
func (r *settingsRepository) RemovePrefix(prefix string) (int64, error) {
	escaper := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	result, err := r.db.Exec(`DELETE FROM settings WHERE key LIKE ? ESCAPE '\'`, escaper.Replace(prefix)+"%")
	if err != nil {
		return 0, fmt.Errorf("failed to remove settings with prefix %s: %w", prefix, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
