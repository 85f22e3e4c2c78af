package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tastoria/internal/menu"
	"tastoria/internal/middleware"
	"tastoria/internal/model"
	"tastoria/internal/profile"
	"tastoria/internal/user"
	"tastoria/pkg/log"
	"tastoria/pkg/response"
	"tastoria/pkg/scope"

	"github.com/gin-gonic/gin"
)

type mockUseCase struct {
	sc       model.Scope
	updateIn profile.UpdateInput
	err      error
}

func (m *mockUseCase) Me(ctx context.Context, sc model.Scope) (user.User, error) {
	m.sc = sc
	return user.User{ID: sc.UserID, Name: "Asha", PasswordHash: "secret-hash"}, m.err
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, in profile.UpdateInput) (user.User, error) {
	m.updateIn = in
	return user.User{ID: sc.UserID, Name: in.Name, Bio: in.Bio}, m.err
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope) error { return m.err }

func (m *mockUseCase) ListFavorites(ctx context.Context, sc model.Scope) ([]profile.Favorite, error) {
	return []profile.Favorite{{Item: menu.Item{ID: "item-1", Name: "Masala Dosa"}, SavedAt: time.Now()}}, m.err
}

func (m *mockUseCase) AddFavorite(ctx context.Context, sc model.Scope, itemID string) (profile.Favorite, error) {
	if m.err != nil {
		return profile.Favorite{}, m.err
	}
	return profile.Favorite{Item: menu.Item{ID: itemID}}, nil
}

func (m *mockUseCase) RemoveFavorite(ctx context.Context, sc model.Scope, itemID string) error {
	return m.err
}

type testServer struct {
	r     *gin.Engine
	token string
}

func newTestServer(t *testing.T, uc profile.UseCase) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwt, err := scope.New("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("scope.New: %v", err)
	}
	token, err := jwt.CreateToken("u-1", "asha@example.com", false)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	r := gin.New()
	RegisterRoutes(r.Group("/api/profile"), New(log.NewNop(), uc), middleware.New(log.NewNop(), jwt))
	return testServer{r: r, token: token}
}

func (s testServer) do(method, path, body string, auth bool) (*httptest.ResponseRecorder, response.Resp) {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/api/profile"+path, rd)
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.r.ServeHTTP(w, req)

	var resp response.Resp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestRoutesRequireToken(t *testing.T) {
	s := newTestServer(t, &mockUseCase{})
	routes := []struct{ method, path string }{
		{http.MethodGet, "/me"},
		{http.MethodPut, ""},
		{http.MethodDelete, ""},
		{http.MethodGet, "/favorites"},
		{http.MethodPost, "/favorites/item-1"},
		{http.MethodDelete, "/favorites/item-1"},
	}
	for _, rt := range routes {
		if w, _ := s.do(rt.method, rt.path, "", false); w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: code = %d, want 401", rt.method, rt.path, w.Code)
		}
	}
}

func TestMe(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		uc := &mockUseCase{}
		w, _ := newTestServer(t, uc).do(http.MethodGet, "/me", "", true)
		if w.Code != http.StatusOK {
			t.Fatalf("code = %d", w.Code)
		}
		if uc.sc.UserID != "u-1" {
			t.Errorf("scope = %+v", uc.sc)
		}
		if strings.Contains(w.Body.String(), "secret-hash") {
			t.Error("password hash leaked")
		}
	})

	t.Run("user gone", func(t *testing.T) {
		w, resp := newTestServer(t, &mockUseCase{err: profile.ErrProfileNotFound}).do(http.MethodGet, "/me", "", true)
		if w.Code != http.StatusNotFound || resp.Message != "User not found" {
			t.Errorf("code = %d message = %q", w.Code, resp.Message)
		}
	})
}

func TestUpdate(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		uc := &mockUseCase{}
		body := `{"name":" Asha R ","bio":"likes filter coffee","phoneNumber":"+91 9876543210","preferences":{"dietary":{"vegan":true}}}`
		w, _ := newTestServer(t, uc).do(http.MethodPut, "", body, true)
		if w.Code != http.StatusOK {
			t.Fatalf("code = %d body=%s", w.Code, w.Body.String())
		}
		if uc.updateIn.Name != "Asha R" {
			t.Errorf("name = %q", uc.updateIn.Name)
		}
		if uc.updateIn.Preferences == nil || !uc.updateIn.Preferences.Dietary.Vegan {
			t.Errorf("preferences = %+v", uc.updateIn.Preferences)
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{"bio too long", `{"bio":"` + strings.Repeat("a", 501) + `"}`},
		{"bad phone", `{"phoneNumber":"12345"}`},
		{"malformed", `{"name":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w, _ := newTestServer(t, &mockUseCase{}).do(http.MethodPut, "", tt.body, true); w.Code != http.StatusBadRequest {
				t.Errorf("code = %d, want 400", w.Code)
			}
		})
	}
}

func TestFavorites(t *testing.T) {
	s := newTestServer(t, &mockUseCase{})

	w, resp := s.do(http.MethodGet, "/favorites", "", true)
	if w.Code != http.StatusOK {
		t.Fatalf("list: code = %d", w.Code)
	}
	if items, _ := resp.Data.([]any); len(items) != 1 {
		t.Errorf("list: data = %v", resp.Data)
	}

	if w, _ := s.do(http.MethodPost, "/favorites/item-1", "", true); w.Code != http.StatusOK {
		t.Errorf("add: code = %d", w.Code)
	}
	if w, _ := s.do(http.MethodDelete, "/favorites/item-1", "", true); w.Code != http.StatusOK {
		t.Errorf("remove: code = %d", w.Code)
	}

	missing := newTestServer(t, &mockUseCase{err: profile.ErrItemNotFound})
	if w, resp := missing.do(http.MethodPost, "/favorites/nope", "", true); w.Code != http.StatusNotFound || resp.Message != "Menu item not found" {
		t.Errorf("unknown item: code = %d message = %q", w.Code, resp.Message)
	}
}
