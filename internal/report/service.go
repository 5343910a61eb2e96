package report

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/nghetinhport/tos-bigdata-api/pkg/util"
)

// Querier is the external query-execution collaborator: it runs a read-only
// statement with positional parameters and returns rows as column-name→value
// maps. Connection management, pooling and timeouts live behind it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) ([]map[string]any, error)
}

// Service is the query gateway. Every resource handler goes through the same
// template: build the statement, execute via the collaborator, map rows to
// the resource DTO. The service holds no per-request state; calls are
// independently parallel.
type Service struct {
	db  Querier
	log *zap.Logger
	now func() time.Time
}

// NewService builds the gateway.
func NewService(db Querier, logger *zap.Logger) *Service {
	return &Service{db: db, log: logger, now: time.Now}
}

// PageFilter carries pagination for listings without optional predicates.
type PageFilter struct {
	Page  int
	Limit int
}

func (s *Service) reportDate() string {
	return s.now().Format("2006-01-02")
}

// listRows executes a list statement and maps every row. Collaborator
// failures are logged with the statement text and surfaced as a sanitized
// data-access error.
func listRows[T any](ctx context.Context, s *Service, query string, args []any, mapRow func(Row) T) ([]T, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		s.log.Error("query failed", zap.Error(err), zap.String("query", query))
		return nil, apperrors.NewDataAccess(err)
	}
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapRow(Row(r)))
	}
	return out, nil
}

// getRow executes a by-id statement; zero rows is a domain not-found, never
// conflated with collaborator failure.
func getRow[T any](ctx context.Context, s *Service, query string, args []any, mapRow func(Row) T, notFoundMsg string) (T, error) {
	var zero T
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		s.log.Error("query failed", zap.Error(err), zap.String("query", query))
		return zero, apperrors.NewDataAccess(err)
	}
	if len(rows) == 0 {
		return zero, apperrors.NewNotFound(notFoundMsg)
	}
	return mapRow(Row(rows[0])), nil
}
