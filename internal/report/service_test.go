package report

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/nghetinhport/tos-bigdata-api/pkg/util"
)

// fakeQuerier records the last statement and arguments and plays back canned
// rows.
type fakeQuerier struct {
	query string
	args  []any
	rows  []map[string]any
	err   error
}

func (f *fakeQuerier) Query(ctx context.Context, sql string, args ...any) ([]map[string]any, error) {
	f.query = sql
	f.args = args
	return f.rows, f.err
}

var testDay = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func newTestService(fq *fakeQuerier) *Service {
	return &Service{db: fq, log: zap.NewNop(), now: func() time.Time { return testDay }}
}

func TestListRowsSanitizesFailure(t *testing.T) {
	fq := &fakeQuerier{err: errors.New("dial tcp: connect: connection refused")}
	s := newTestService(fq)

	_, err := s.ListCustomers(context.Background(), CustomerFilter{Page: 1, Limit: 50})
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
	assert.Equal(t, "0", domainErr.EnvelopeCode)
	assert.Equal(t, "Lỗi lấy dữ liệu", domainErr.Message)
	assert.NotContains(t, domainErr.Message, "connection refused")
}

func TestGetRowDistinguishesNotFoundFromFailure(t *testing.T) {
	fq := &fakeQuerier{rows: nil}
	s := newTestService(fq)

	_, err := s.GetCustomer(context.Background(), "KH001")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)

	fq.err = errors.New("boom")
	_, err = s.GetCustomer(context.Background(), "KH001")
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperrors.ToDomainError(err).HTTPStatus)
}

func TestListRowsEmptyResultIsNotAnError(t *testing.T) {
	fq := &fakeQuerier{rows: []map[string]any{}}
	s := newTestService(fq)

	customers, err := s.ListCustomers(context.Background(), CustomerFilter{Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.NotNil(t, customers)
	assert.Empty(t, customers)
}
