package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"payflow/internal/domain"
	"payflow/pkg/e"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type DB interface {
	GetByID(ctx context.Context, id string) (domain.PaymentResponse, error)
	SavePaymentResponse(ctx context.Context, response domain.PaymentResponse) (string, error)
	ListPaymentResponses(ctx context.Context) ([]domain.PaymentResponse, error)
}

type Cache interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string, value *domain.PaymentResponse) (string, error)
}

// Service is the settlement records layer: completed payment
// responses come in from the message bus or the REST port, get
// persisted, and are served back out.
type Service struct {
	db             DB
	cache          Cache
	logger         *slog.Logger
	retainDeclined bool
}

func NewService(logger *slog.Logger, db DB, cache Cache, retainDeclined bool) *Service {
	return &Service{
		db:             db,
		cache:          cache,
		logger:         logger,
		retainDeclined: retainDeclined,
	}
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.PaymentResponse, error) {
	response, err := s.db.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to perform GetByID", slog.String("error", err.Error()))
		return domain.PaymentResponse{}, e.Wrap("service.GetByID", err)
	}

	return response, nil
}

// RecordPaymentResponse persists a completed payment response. Failed
// flows are skipped when the service is configured not to retain them.
func (s *Service) RecordPaymentResponse(ctx context.Context, response domain.PaymentResponse) (string, error) {
	if !s.retainDeclined && response.Outcome == domain.PaymentFailed {
		s.logger.Info("skipping failed payment response", slog.String("id", response.ID))
		return response.ID, nil
	}

	id, err := s.db.SavePaymentResponse(ctx, response)
	if err != nil {
		s.logger.Error("failed to record payment response", slog.String("error", err.Error()))
		return "", e.Wrap("service.RecordPaymentResponse", err)
	}

	return id, nil
}

// SettleFlow folds the accumulated transactions of a completed flow
// into the final payment response and records it.
func (s *Service) SettleFlow(ctx context.Context, payment domain.Payment, requested domain.Amounts, transactions []*domain.Transaction) (domain.PaymentResponse, error) {
	response := domain.AssemblePaymentResponse(payment, requested, transactions)

	if _, err := s.RecordPaymentResponse(ctx, response); err != nil {
		return domain.PaymentResponse{}, e.Wrap("service.SettleFlow", err)
	}

	s.logger.Info("flow settled",
		slog.String("id", response.ID),
		slog.String("outcome", string(response.Outcome)),
		slog.Int64("requested", response.TotalAmountsRequested.Total()),
		slog.Int64("processed", response.TotalAmountsProcessed.Total()),
	)

	return response, nil
}

func (s *Service) GetPaymentResponseJSON(ctx context.Context, response domain.PaymentResponse) (string, error) {
	data, err := json.Marshal(response)
	if err != nil {
		return "", e.Wrap("service.GetPaymentResponseJSON", err)
	}

	return string(data), nil
}

func (s *Service) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return s.cache.Set(ctx, key, value, exp)
}

func (s *Service) Get(ctx context.Context, key string, value *domain.PaymentResponse) (string, error) {
	return s.cache.Get(ctx, key, value)
}

func (s *Service) ListPaymentResponses(ctx context.Context) ([]domain.PaymentResponse, error) {
	return s.db.ListPaymentResponses(ctx)
}
