package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tastoria/internal/chat"
	"tastoria/internal/chat/intent"
	"tastoria/internal/chat/usecase"
	"tastoria/internal/middleware"
	"tastoria/pkg/log"

	"github.com/gin-gonic/gin"
)

type mockUseCase struct {
	out   chat.RespondOutput
	err   error
	panic bool
}

func (m mockUseCase) Respond(ctx context.Context, input chat.RespondInput) (chat.RespondOutput, error) {
	if m.panic {
		panic("boom")
	}
	return m.out, m.err
}

func newRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), uc), middleware.New(log.NewNop(), nil), 0)
	return r
}

func post(r *gin.Engine, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var got map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	return w, got
}

func TestRespond(t *testing.T) {
	r := newRouter(usecase.New(intent.Default(), log.NewNop()))

	tests := []struct {
		name     string
		body     string
		wantCode int
		want     map[string]any
	}{
		{
			name:     "slot navigation",
			body:     `{"message":"I want to book a slot"}`,
			wantCode: http.StatusOK,
			want: map[string]any{
				"message": "I'll take you to the slot booking page right away!",
				"action":  "navigate",
				"cafeId":  "ttmm-slot",
			},
		},
		{
			name:     "venue navigation",
			body:     `{"message":"hangout menu please"}`,
			wantCode: http.StatusOK,
			want: map[string]any{
				"message":      "I'll show you Hangout Cafe's menu!",
				"action":       "navigate",
				"cafeId":       "hangout-cafe",
				"requiresAuth": true,
			},
		},
		{
			name:     "informational",
			body:     `{"message":"can I reserve a table"}`,
			wantCode: http.StatusOK,
			want: map[string]any{
				"message": "I can help you book a table. Which cafe would you like to make a reservation at?",
			},
		},
		{
			name:     "empty",
			body:     `{"message":"   "}`,
			wantCode: http.StatusBadRequest,
			want:     map[string]any{"message": "Message cannot be empty"},
		},
		{
			name:     "missing field",
			body:     `{}`,
			wantCode: http.StatusBadRequest,
			want:     map[string]any{"message": "Message cannot be empty"},
		},
		{
			name:     "malformed",
			body:     `{"message":`,
			wantCode: http.StatusBadRequest,
			want:     map[string]any{"message": "Invalid request body"},
		},
		{
			name:     "number message",
			body:     `{"message":42}`,
			wantCode: http.StatusInternalServerError,
			want:     map[string]any{"message": "Sorry, there was an error processing your request."},
		},
		{
			name:     "array message",
			body:     `{"message":["hi"]}`,
			wantCode: http.StatusInternalServerError,
			want:     map[string]any{"message": "Sorry, there was an error processing your request."},
		},
		{
			name:     "object message",
			body:     `{"message":{"a":1}}`,
			wantCode: http.StatusInternalServerError,
			want:     map[string]any{"message": "Sorry, there was an error processing your request."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, got := post(r, tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("code = %d, want %d (body %s)", w.Code, tt.wantCode, w.Body.String())
			}
			if len(got) != len(tt.want) {
				t.Errorf("body = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("%s = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestRespondInternalError(t *testing.T) {
	for name, uc := range map[string]chat.UseCase{
		"error": mockUseCase{err: errors.New("db down")},
		"panic": mockUseCase{panic: true},
	} {
		t.Run(name, func(t *testing.T) {
			w, got := post(newRouter(uc), `{"message":"hi"}`)
			if w.Code != http.StatusInternalServerError {
				t.Fatalf("code = %d, want 500", w.Code)
			}
			if got["message"] != "Sorry, there was an error processing your request." {
				t.Errorf("message = %v", got["message"])
			}
		})
	}
}
