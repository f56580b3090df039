/*
Copyright © 2026 masteryyh <yyh991013@163.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package conn

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/masteryyh/tablekit/pkg/config"
	"github.com/masteryyh/tablekit/pkg/models"
	"github.com/masteryyh/tablekit/pkg/utils"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	db     *gorm.DB
	dbOnce sync.Once
)

const (
	connectAttempts = 5
	connectDelay    = 500 * time.Millisecond
)

func dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		path, err := utils.GetCleanPath(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("invalid sqlite path: %w", err)
		}
		if err := utils.EnsureParentDir(path); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
		return sqlite.Open(path), nil
	case config.DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database)
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver '%s'", cfg.Driver)
	}
}

// Connect opens the database, retrying while it is unreachable, then migrates
// and optionally seeds the demo data.
func Connect(ctx context.Context, cfg *config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	dbConn, err := retry.DoWithData(
		func() (*gorm.DB, error) {
			conn, err := gorm.Open(dial, &gorm.Config{
				Logger: logger.Default.LogMode(logLevel),
			})
			if err != nil {
				return nil, err
			}
			sqlDB, err := conn.DB()
			if err != nil {
				return nil, err
			}
			if err := sqlDB.PingContext(timeoutCtx); err != nil {
				return nil, err
			}
			return conn, nil
		},
		retry.Context(timeoutCtx),
		retry.Attempts(connectAttempts),
		retry.Delay(connectDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.WarnContext(ctx, "database not reachable, retrying", "attempt", n+1, "driver", cfg.Driver, "error", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbConn.WithContext(timeoutCtx).AutoMigrate(&models.Contact{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if cfg.Seed {
		if err := seedContacts(timeoutCtx, dbConn); err != nil {
			return nil, err
		}
	}
	return dbConn, nil
}

func InitDB(ctx context.Context, cfg *config.DatabaseConfig, debug bool) error {
	var err error
	dbOnce.Do(func() {
		dbConn, connErr := Connect(ctx, cfg, debug)
		if connErr != nil {
			err = connErr
			return
		}
		db = dbConn
	})
	return err
}

func GetDB() *gorm.DB {
	if db == nil {
		panic("database not initialized, call InitDB first")
	}
	return db
}
