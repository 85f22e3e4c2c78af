package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tastoria/internal/chat/intent"
	"tastoria/internal/user/repository/signup"
	"tastoria/pkg/encrypter"
	"tastoria/pkg/log"
	"tastoria/pkg/mailer"
	"tastoria/pkg/scope"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestConfig(t *testing.T) (Config, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	jwt, err := scope.New("test-secret", time.Hour)
	require.NoError(t, err)

	l := log.NewNop()
	return Config{
		Logger:      l,
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "development",
		PostgresDB:  db,
		JWTManager:  jwt,
		Mailer:      mailer.NewLog(l),
		Encrypter:   encrypter.New(bcrypt.MinCost),
		Intents:     intent.Default(),
		SignupStore: signup.NewMemory(100, time.Minute),
	}, mock
}

func newTestServer(t *testing.T, cfg Config) *HTTPServer {
	t.Helper()
	srv, err := New(cfg.Logger, cfg)
	require.NoError(t, err)
	require.NoError(t, srv.mapHandlers())
	return srv
}

func serve(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"port", func(c *Config) { c.Port = 0 }},
		{"mode", func(c *Config) { c.Mode = "" }},
		{"db", func(c *Config) { c.PostgresDB = nil }},
		{"jwt", func(c *Config) { c.JWTManager = nil }},
		{"mailer", func(c *Config) { c.Mailer = nil }},
		{"signup store", func(c *Config) { c.SignupStore = nil }},
		{"intents", func(c *Config) { c.Intents = intent.Table{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _ := newTestConfig(t)
			tt.mutate(&cfg)
			_, err := New(cfg.Logger, cfg)
			assert.Error(t, err)
		})
	}
}

func TestNewRejectsBadTrustedProxy(t *testing.T) {
	cfg, _ := newTestConfig(t)
	cfg.TrustedProxies = []string{"not-an-ip"}
	_, err := New(cfg.Logger, cfg)
	assert.Error(t, err)
}

func TestChatLimitKeyedOnPeer(t *testing.T) {
	cfg, _ := newTestConfig(t)
	cfg.RateLimitPerMin = 10
	srv := newTestServer(t, cfg)

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, http.StatusOK, codes[0])
	for _, c := range codes[1:] {
		assert.Equal(t, http.StatusTooManyRequests, c)
	}
}

func TestSystemRoutes(t *testing.T) {
	cfg, _ := newTestConfig(t)
	srv := newTestServer(t, cfg)

	for _, path := range []string{"/health", "/live", "/metrics"} {
		w := serve(srv, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := serve(srv, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())

	w = serve(srv, http.MethodGet, "/health", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestReadyCheck(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		cfg, mock := newTestConfig(t)
		mr := miniredis.RunT(t)
		cfg.Redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})
		srv := newTestServer(t, cfg)

		mock.ExpectPing()
		w := serve(srv, http.MethodGet, "/ready", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"redis":"ok"`)
	})

	t.Run("postgres down", func(t *testing.T) {
		cfg, mock := newTestConfig(t)
		srv := newTestServer(t, cfg)

		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		w := serve(srv, http.MethodGet, "/ready", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"postgres":"unreachable"`)
	})
}

func TestChatRouteWired(t *testing.T) {
	cfg, _ := newTestConfig(t)
	srv := newTestServer(t, cfg)

	w := serve(srv, http.MethodPost, "/api/chat", `{"message":"Show me the HANGOUT menu"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"action":"navigate"`)
	assert.Contains(t, w.Body.String(), `"cafeId":"hangout-cafe"`)

	w = serve(srv, http.MethodPost, "/api/chat", `{"message":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Message cannot be empty"}`, w.Body.String())
}

func TestProtectedRoutesWired(t *testing.T) {
	cfg, _ := newTestConfig(t)
	srv := newTestServer(t, cfg)

	for _, path := range []string{"/api/profile/me", "/api/bookings/mine"} {
		w := serve(srv, http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
	w := serve(srv, http.MethodPost, "/api/menu", `{}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRunShutsDownOnCancel(t *testing.T) {
	cfg, _ := newTestConfig(t)
	cfg.Port = 18089
	srv, err := New(cfg.Logger, cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
