package storemetrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore"
)

// Store обёртка над kvstore.Store, собирающая метрики операций хранилища.
// Поведение оборачиваемого хранилища не меняется: ошибки и данные
// проходят насквозь.
type Store struct {
	inner kvstore.Store

	opsTotal   *prometheus.CounterVec
	opDuration *prometheus.HistogramVec
}

// Wrap оборачивает хранилище и регистрирует метрики в default registry
func Wrap(inner kvstore.Store, serviceName string) *Store {
	labels := prometheus.Labels{"service": serviceName}

	return &Store{
		inner: inner,
		opsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "kvstore_operations_total",
				Help:        "Total number of key-value store operations",
				ConstLabels: labels,
			},
			[]string{"op", "outcome"},
		),
		opDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "kvstore_operation_duration_seconds",
				Help:        "Key-value store operation duration in seconds",
				ConstLabels: labels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"op"},
		),
	}
}

// Load читает blob по ключу, фиксируя длительность и исход операции
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	data, err := s.inner.Load(ctx, key)
	s.observe("load", start, err)
	return data, err
}

// Save записывает blob по ключу, фиксируя длительность и исход операции
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	start := time.Now()
	err := s.inner.Save(ctx, key, data)
	s.observe("save", start, err)
	return err
}

// Delete удаляет ключ, фиксируя длительность и исход операции
func (s *Store) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.inner.Delete(ctx, key)
	s.observe("delete", start, err)
	return err
}

func (s *Store) observe(op string, start time.Time, err error) {
	outcome := "ok"
	switch {
	case errors.Is(err, kvstore.ErrKeyNotFound):
		outcome = "miss"
	case err != nil:
		outcome = "error"
	}

	s.opsTotal.WithLabelValues(op, outcome).Inc()
	s.opDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
