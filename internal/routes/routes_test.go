package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"kiro/commons/error_handler"
	"kiro/commons/routes"
	"kiro/internal/dto"
	"kiro/internal/handler"
	"kiro/internal/logger"

	commonHandler "kiro/commons/handler"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	log, err := logger.NewZapLoggerForDev()
	require.NoError(t, err)

	deps := routes.RouteDependencies{Logger: log}
	router := routes.NewRouter(routes.RouterConfig{
		ServiceName:    "Kiro AI Service",
		AllowedOrigins: []string{"https://localhost:3000", "https://localhost:4000"},
	}, deps)

	InitRootRoutes(router, handler.NewRootHandler(log, "Kiro AI Service"), deps)
	InitHealthRoutes(router, handler.NewHealthHandler(log, "kiro-ai"), deps)

	return router
}

func doRequest(router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRootEndpoint(t *testing.T) {
	router := setupRouter(t)

	// Repeated calls must be identical: the endpoint is pure
	for i := 0; i < 3; i++ {
		w := doRequest(router, http.MethodGet, "/", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message": "Kiro AI Service is running"}`, w.Body.String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status": "ok", "service": "kiro-ai"}`, w.Body.String())
}

func TestNonGetMethodsRejected(t *testing.T) {
	router := setupRouter(t)

	methods := []string{
		http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
	}

	for _, path := range []string{"/", "/health"} {
		for _, method := range methods {
			t.Run(method+" "+path, func(t *testing.T) {
				w := doRequest(router, method, path, nil)

				assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
				assert.NotEqual(t, http.StatusOK, w.Code)
			})
		}
	}
}

func TestUnknownRouteReturns404(t *testing.T) {
	router := setupRouter(t)

	for _, path := range []string{"/nope", "/health/extra", "/api/v1/health"} {
		w := doRequest(router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, "path %s", path)
	}
}

func TestCORSAllowedOrigin(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/health", map[string]string{
		"Origin": "https://localhost:3000",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSDisallowedOrigin(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/health", map[string]string{
		"Origin": "https://evil.example",
	})

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSPreflight(t *testing.T) {
	router := setupRouter(t)

	t.Run("allowed origin", func(t *testing.T) {
		w := doRequest(router, http.MethodOptions, "/health", map[string]string{
			"Origin":                        "https://localhost:4000",
			"Access-Control-Request-Method": http.MethodGet,
		})

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://localhost:4000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
	})

	t.Run("disallowed origin", func(t *testing.T) {
		w := doRequest(router, http.MethodOptions, "/health", map[string]string{
			"Origin":                        "https://evil.example",
			"Access-Control-Request-Method": http.MethodGet,
		})

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEqual(t, http.StatusOK, w.Code)
	})
}

func TestRequestWithoutOriginGetsNoCORSHeaders(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDPropagation(t *testing.T) {
	router := setupRouter(t)

	t.Run("generated when absent", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/health", nil)

		reqID := w.Header().Get(commonHandler.RequestIDHeader)
		require.NotEmpty(t, reqID)
		_, err := uuid.Parse(reqID)
		assert.NoError(t, err)
	})

	t.Run("echoed when supplied", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/health", map[string]string{
			commonHandler.RequestIDHeader: "test-request-id",
		})

		assert.Equal(t, "test-request-id", w.Header().Get(commonHandler.RequestIDHeader))
	})
}

func TestHandlerPanicReturns500(t *testing.T) {
	router := setupRouter(t)

	log, err := logger.NewZapLoggerForDev()
	require.NoError(t, err)
	deps := routes.RouteDependencies{Logger: log}

	routes.RegisterRoute(
		router,
		deps,
		routes.RouteOptions[dto.HealthCheckRequest, dto.HealthCheckResponse]{
			Path:   "/boom",
			Method: http.MethodGet,
			ServiceFunc: func(
				ctx context.Context,
				ioutil *commonHandler.RequestIo[dto.HealthCheckRequest],
			) (dto.HealthCheckResponse, *error_handler.ErrorCollection) {
				panic("boom")
			},
		},
	)

	w := doRequest(router, http.MethodGet, "/boom", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "goroutine")
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestConcurrentHealthRequests(t *testing.T) {
	router := setupRouter(t)

	const n = 200

	var wg sync.WaitGroup
	codes := make([]int, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := doRequest(router, http.MethodGet, "/health", nil)
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		require.Equal(t, http.StatusOK, code, "request %d", i)
	}
}
