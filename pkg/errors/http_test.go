package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "tastoria/pkg/errors"
)

func TestStatusOf(t *testing.T) {
	t.Run("HTTPError", func(t *testing.T) {
		err := pkgErrors.NewHTTPError(http.StatusConflict, "exists")
		if got := pkgErrors.StatusOf(err); got != http.StatusConflict {
			t.Errorf("expected 409, got %d", got)
		}
	})

	t.Run("Wrapped HTTPError", func(t *testing.T) {
		err := fmt.Errorf("ctx: %w", pkgErrors.ErrUnauthorized)
		if got := pkgErrors.StatusOf(err); got != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", got)
		}
	})

	t.Run("Plain error", func(t *testing.T) {
		if got := pkgErrors.StatusOf(errors.New("boom")); got != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", got)
		}
	})
}
