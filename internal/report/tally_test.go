package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/nghetinhport/tos-bigdata-api/pkg/util"
)

func TestListHandlingMethods(t *testing.T) {
	fq := &fakeQuerier{rows: []map[string]any{{
		"jobMethodCode": "TAU-BAI",
		"jobMethodName": "Tàu - Bãi",
		"createTime":    time.Date(2023, 3, 1, 8, 0, 0, 0, time.UTC),
	}}}
	s := newTestService(fq)

	methods, err := s.ListHandlingMethods(context.Background(), PageFilter{Page: 1, Limit: 20})
	require.NoError(t, err)

	assert.Contains(t, fq.query, "FROM dbo.vwTallyShiftAll")
	assert.Contains(t, fq.query, "WHERE rowDeleted IS NULL")
	assert.Contains(t, fq.query, "GROUP BY jobMethodCode, jobMethodName")
	assert.Contains(t, fq.query, "ORDER BY jobMethodCode OFFSET $1 LIMIT $2")
	assert.Equal(t, []any{0, 20}, fq.args)

	require.Len(t, methods, 1)
	assert.Equal(t, "TAU-BAI", methods[0].HandlingMethodID)
	assert.Equal(t, "Tàu - Bãi", methods[0].HandlingMethodName)
	require.NotNil(t, methods[0].CreatedDate)
	assert.Equal(t, "2023-03-01T08:00:00", *methods[0].CreatedDate)
}

func TestGetHandlingMethodNotFound(t *testing.T) {
	fq := &fakeQuerier{}
	s := newTestService(fq)

	_, err := s.GetHandlingMethod(context.Background(), "NOPE")
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 404, domainErr.HTTPStatus)
	assert.Equal(t, "Không tìm thấy phương án tác nghiệp", domainErr.Message)
	assert.Contains(t, fq.query, "WHERE rowDeleted IS NULL AND jobMethodCode = $1")
	assert.Equal(t, []any{"NOPE"}, fq.args)
}

func TestListClasses(t *testing.T) {
	fq := &fakeQuerier{}
	s := newTestService(fq)

	_, err := s.ListClasses(context.Background(), PageFilter{Page: 2, Limit: 5})
	require.NoError(t, err)

	assert.Contains(t, fq.query, "GROUP BY cargoDirectCode, cargoDirectName")
	assert.Equal(t, []any{5, 5}, fq.args)
}

func TestGetClass(t *testing.T) {
	fq := &fakeQuerier{rows: []map[string]any{{
		"cargoDirectCode": "XK",
		"cargoDirectName": "Xuất khẩu",
	}}}
	s := newTestService(fq)

	class, err := s.GetClass(context.Background(), "XK")
	require.NoError(t, err)
	assert.Equal(t, "XK", class.ClassID)
	assert.Equal(t, "Xuất khẩu", class.ClassName)
	assert.Equal(t, "2024-06-15", class.ReportDate)
	assert.Nil(t, class.CreatedDate)
}

func TestGetClassNotFound(t *testing.T) {
	fq := &fakeQuerier{}
	s := newTestService(fq)

	_, err := s.GetClass(context.Background(), "NOPE")
	require.Error(t, err)
	assert.Equal(t, "Không tìm thấy hướng tàu", apperrors.ToDomainError(err).Message)
}
