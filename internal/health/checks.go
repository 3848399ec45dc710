package health

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const componentName = "smart-shop-assistant"

// Version is reported by the health endpoint.
var Version = "1.0.0"

type Endpoints struct {
	DB *sql.DB
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    componentName,
			Version: Version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "database",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: postgres.New(postgres.Config{
					DSN: cfg.Database.GetDSN(),
				}),
			},
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(
					healthRedis.Config{
						DSN: cfg.RedisConnect.GetDSN(),
					},
				),
			},
			// An empty catalog leaves the assistant answering with the
			// fallback only, so it degrades instead of failing.
			health.Config{
				Name:      "catalog",
				Timeout:   2 * time.Second,
				SkipOnErr: true,
				Check:     CatalogCheck(endpoints.DB),
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

// CatalogCheck fails when the products table cannot be read through the
// application pool or holds no rows.
func CatalogCheck(db *sql.DB) health.CheckFunc {
	return func(ctx context.Context) error {
		if db == nil {
			return fmt.Errorf("database pool is not initialized")
		}

		var count int64

		if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
			return fmt.Errorf("failed to count products: %w", err)
		}

		if count == 0 {
			return fmt.Errorf("catalog is empty")
		}

		return nil
	}
}
