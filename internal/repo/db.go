package repo

import (
	"StationAdmin/internal/model"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// InitDB открывает подключение к БД по DSN.
// Пустой DSN значит, что источник данных не настроен: возвращается nil без ошибки,
// а репозитории в этом случае отвечают ErrNoDataSource.
func InitDB(dsn string) (*gorm.DB, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, nil
	}

	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	if isSQLiteDSN(dsn) {
		db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, cfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// локальная база: таблицу Stations создаём сами
		if err := db.AutoMigrate(&model.User{}, &model.Station{}); err != nil {
			return nil, fmt.Errorf("automigrate sqlite: %w", err)
		}
		return db, nil
	}

	db, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	// Stations принадлежит внешней схеме, мигрируем только пользователей
	if err := db.AutoMigrate(&model.User{}); err != nil {
		return nil, fmt.Errorf("automigrate postgres: %w", err)
	}
	return db, nil
}

func isSQLiteDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "file:") ||
		strings.HasSuffix(dsn, ".db") ||
		strings.HasSuffix(dsn, ".sqlite") ||
		dsn == ":memory:"
}
