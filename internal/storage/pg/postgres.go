package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"payflow/internal/domain"
	"payflow/internal/storage/redis"
	"payflow/pkg/e"
)

const createTableQuery = `
CREATE TABLE IF NOT EXISTS payment_responses (
	id              TEXT PRIMARY KEY,
	flow_type       TEXT NOT NULL,
	outcome         TEXT NOT NULL,
	currency        TEXT NOT NULL,
	total_requested BIGINT NOT NULL,
	total_processed BIGINT NOT NULL,
	payload         JSONB NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`

type Postgres struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
	cache  *redis.Redis
}

func NewPostgres(ctx context.Context, logger *slog.Logger, url string, cache *redis.Redis) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("storage.pg.NewPostgres: failed to create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage.pg.NewPostgres: ping failed: %w", err)
	}

	if _, err := pool.Exec(ctx, createTableQuery); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage.pg.NewPostgres: failed to ensure schema: %w", err)
	}

	return &Postgres{
		pool:   pool,
		logger: logger,
		cache:  cache,
	}, nil
}

// SavePaymentResponse stores the settlement record and writes through
// to the cache.
func (p *Postgres) SavePaymentResponse(ctx context.Context, response domain.PaymentResponse) (string, error) {
	payload, err := json.Marshal(response)
	if err != nil {
		return "", e.Wrap("storage.pg.SavePaymentResponse: marshal", err)
	}

	query := `
		INSERT INTO payment_responses (id, flow_type, outcome, currency, total_requested, total_processed, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET outcome = EXCLUDED.outcome,
		    total_processed = EXCLUDED.total_processed,
		    payload = EXCLUDED.payload`

	_, err = p.pool.Exec(ctx, query,
		response.ID,
		response.Payment.FlowType,
		string(response.Outcome),
		response.TotalAmountsRequested.Currency,
		response.TotalAmountsRequested.Total(),
		response.TotalAmountsProcessed.Total(),
		payload,
		response.CreatedAt,
	)
	if err != nil {
		return "", e.Wrap("storage.pg.SavePaymentResponse", err)
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, response.ID, response, 15*time.Minute); err != nil {
			p.logger.Warn("failed to cache payment response", slog.String("id", response.ID), slog.String("error", err.Error()))
		}
	}

	return response.ID, nil
}

func (p *Postgres) GetByID(ctx context.Context, id string) (domain.PaymentResponse, error) {
	if p.cache != nil {
		var cached domain.PaymentResponse
		if _, err := p.cache.Get(ctx, id, &cached); err == nil {
			return cached, nil
		}
	}

	var payload []byte
	err := p.pool.QueryRow(ctx, `SELECT payload FROM payment_responses WHERE id = $1`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PaymentResponse{}, e.ErrNotFound
		}
		return domain.PaymentResponse{}, e.Wrap("storage.pg.GetByID", err)
	}

	var response domain.PaymentResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		return domain.PaymentResponse{}, e.Wrap("storage.pg.GetByID: unmarshal", err)
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, id, response, 15*time.Minute); err != nil {
			p.logger.Warn("failed to cache payment response", slog.String("id", id), slog.String("error", err.Error()))
		}
	}

	return response, nil
}

func (p *Postgres) ListPaymentResponses(ctx context.Context) ([]domain.PaymentResponse, error) {
	rows, err := p.pool.Query(ctx, `SELECT payload FROM payment_responses ORDER BY created_at DESC`)
	if err != nil {
		return nil, e.Wrap("storage.pg.ListPaymentResponses", err)
	}
	defer rows.Close()

	var responses []domain.PaymentResponse
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, e.Wrap("storage.pg.ListPaymentResponses: scan", err)
		}
		var response domain.PaymentResponse
		if err := json.Unmarshal(payload, &response); err != nil {
			return nil, e.Wrap("storage.pg.ListPaymentResponses: unmarshal", err)
		}
		responses = append(responses, response)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap("storage.pg.ListPaymentResponses: rows", err)
	}

	return responses, nil
}

func (p *Postgres) CloseConnection() {
	p.pool.Close()
}
