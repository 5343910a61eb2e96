package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nghetinhport/tos-bigdata-api/internal/api/http/handlers"
	"github.com/nghetinhport/tos-bigdata-api/internal/auth"
	"github.com/nghetinhport/tos-bigdata-api/internal/config"
	"github.com/nghetinhport/tos-bigdata-api/internal/observability"
	"github.com/nghetinhport/tos-bigdata-api/internal/persistence"
	"github.com/nghetinhport/tos-bigdata-api/internal/report"
	"github.com/nghetinhport/tos-bigdata-api/internal/repository"
	"github.com/nghetinhport/tos-bigdata-api/internal/service"
)

const legacyCredential = "6504E4EF9274BDE48162B6F2BE0FDF0"

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

func newTestApp(t *testing.T, fq *fakeQuerier) (*fiber.App, *service.AuthService, *observability.Metrics) {
	t.Helper()

	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	users := repository.NewStaticUserRepository(repository.DefaultUsers())
	authSvc := service.NewAuthService(config.AuthConfig{
		JWTSecret:           "test-secret",
		JWTAlgorithm:        "HS256",
		AccessTokenTTLHours: 8,
	}, users, nil, logger)
	reports := report.NewService(fq, logger)

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("tos-bigdata-api", "test", &persistence.Postgres{}, &persistence.Redis{}),
		Auth:           handlers.NewAuthHandler(authSvc),
		Catalog:        handlers.NewCatalogHandler(reports),
		Volumes:        handlers.NewVolumesHandler(reports),
		AuthMiddleware: auth.NewMiddleware(authSvc.TokenManager()),
	})
	return app, authSvc, metrics
}

func bearerToken(t *testing.T, authSvc *service.AuthService) string {
	t.Helper()
	token, _, err := authSvc.Login(context.Background(), "abc", legacyCredential)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, int(5*time.Second/time.Millisecond))
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

func TestLoginSuccess(t *testing.T) {
	app, _, _ := newTestApp(t, &fakeQuerier{})

	resp, body := doJSON(t, app, http.MethodPost, "/api/login", "", map[string]string{
		"Username": "abc",
		"Password": legacyCredential,
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1", body["Code"])
	assert.Equal(t, "Login thành công", body["Message"])
	assert.Equal(t, "8h", body["ExpireIn"])
	assert.NotEmpty(t, body["AccessToken"])
}

func TestLoginWrongPassword(t *testing.T) {
	app, _, _ := newTestApp(t, &fakeQuerier{})

	resp, body := doJSON(t, app, http.MethodPost, "/api/login", "", map[string]string{
		"Username": "abc",
		"Password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "0", body["Code"])
	assert.Equal(t, "Tên đăng nhập hoặc mật khẩu không đúng", body["Message"])
}

func TestLoginMissingFields(t *testing.T) {
	app, _, _ := newTestApp(t, &fakeQuerier{})

	resp, _ := doJSON(t, app, http.MethodPost, "/api/login", "", map[string]string{
		"Password": legacyCredential,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// A missing password is a malformed request, not a credential failure.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/login", "", map[string]string{
		"Username": "abc",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestProtectedRoutesRequireBearer(t *testing.T) {
	app, _, _ := newTestApp(t, &fakeQuerier{})

	resp, body := doJSON(t, app, http.MethodGet, "/api/customers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "0", body["code"])
	assert.Equal(t, "Invalid authentication credentials", body["message"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/customers", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedSmokeRoute(t *testing.T) {
	app, authSvc, _ := newTestApp(t, &fakeQuerier{})
	token := bearerToken(t, authSvc)

	resp, body := doJSON(t, app, http.MethodGet, "/api/protected", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc", body["user"])
}

func TestListCustomersEnvelope(t *testing.T) {
	fq := &fakeQuerier{rows: []map[string]any{{
		"partnerCode":     "KH001",
		"partnerFullName": "Công ty TNHH ACME",
		"rowDeleted":      int64(0),
	}}}
	app, authSvc, _ := newTestApp(t, fq)
	token := bearerToken(t, authSvc)

	resp, body := doJSON(t, app, http.MethodGet, "/api/customers", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1", body["code"])
	assert.Equal(t, "Lấy dữ liệu thành công", body["message"])

	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)
	first := data[0].(map[string]any)
	assert.Equal(t, "KH001", first["customerCode"])
	assert.Equal(t, "Công ty TNHH ACME", first["customerNameVN"])
}

func TestListCustomersEmptyIsNotAnError(t *testing.T) {
	app, authSvc, _ := newTestApp(t, &fakeQuerier{})
	token := bearerToken(t, authSvc)

	resp, body := doJSON(t, app, http.MethodGet, "/api/customers", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1", body["code"])
	assert.Equal(t, "Không có dữ liệu", body["message"])

	data, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Empty(t, data)
}

func TestGetCargoCategoryNotFound(t *testing.T) {
	app, authSvc, _ := newTestApp(t, &fakeQuerier{})
	token := bearerToken(t, authSvc)

	resp, body := doJSON(t, app, http.MethodGet, "/api/cargoCategory/999999", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "0", body["code"])
	assert.Equal(t, "Không tìm thấy nhóm hàng hóa", body["message"])
}

func TestGetCargoCategoryRejectsNonNumericID(t *testing.T) {
	app, authSvc, _ := newTestApp(t, &fakeQuerier{})
	token := bearerToken(t, authSvc)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/cargoCategory/abc", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestPaginationValidation(t *testing.T) {
	fq := &fakeQuerier{}
	app, authSvc, _ := newTestApp(t, fq)
	token := bearerToken(t, authSvc)

	for _, target := range []string{
		"/api/customers?limit=0",
		"/api/customers?limit=101",
		"/api/customers?page=0",
		"/api/customers?page=abc",
	} {
		resp, body := doJSON(t, app, http.MethodGet, target, token, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, target)
		assert.Equal(t, "0", body["code"], target)
	}
	// Rejected before any statement runs.
	assert.Empty(t, fq.query)
}

func TestQueryFailureIsSanitized(t *testing.T) {
	fq := &fakeQuerier{err: context.DeadlineExceeded}
	app, authSvc, _ := newTestApp(t, fq)
	token := bearerToken(t, authSvc)

	resp, body := doJSON(t, app, http.MethodGet, "/api/shipDetails", token, nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "0", body["code"])
	assert.Equal(t, "Lỗi lấy dữ liệu", body["message"])
}

func TestVolumeFiltersReachTheQuery(t *testing.T) {
	fq := &fakeQuerier{}
	app, authSvc, _ := newTestApp(t, fq)
	token := bearerToken(t, authSvc)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/bulkQuayVolumesCB?shipId=9&companyId=77", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, fq.args, "9")
	assert.Contains(t, fq.args, "77")

	// The gate resource never accepts shipId.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/bulkGateVolumesCB?shipId=9", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, fq.query, "t.vesselId =")
}

func TestRequestMetricsSeeMappedStatus(t *testing.T) {
	app, authSvc, metrics := newTestApp(t, &fakeQuerier{})

	resp, _ := doJSON(t, app, http.MethodGet, "/api/customers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int64(1), metrics.RequestCount("/api/customers", http.MethodGet, http.StatusUnauthorized))
	assert.Equal(t, int64(0), metrics.RequestCount("/api/customers", http.MethodGet, http.StatusOK))

	token := bearerToken(t, authSvc)
	resp, _ = doJSON(t, app, http.MethodGet, "/api/cargoCategory/999999", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int64(1), metrics.RequestCount("/api/cargoCategory/999999", http.MethodGet, http.StatusNotFound))

	resp, _ = doJSON(t, app, http.MethodGet, "/api/customers", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), metrics.RequestCount("/api/customers", http.MethodGet, http.StatusOK))
}

func TestReadinessWithoutDatabase(t *testing.T) {
	app, _, _ := newTestApp(t, &fakeQuerier{})

	resp, body := doJSON(t, app, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "unavailable", body["status"])
}

func TestRootAndLiveness(t *testing.T) {
	app, _, _ := newTestApp(t, &fakeQuerier{})

	resp, body := doJSON(t, app, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "tos-bigdata-api", body["message"])

	resp, body = doJSON(t, app, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "alive", body["status"])
}
