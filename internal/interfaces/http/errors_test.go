package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetcarepro/vetstock-api/internal/domain"
)

// Tabla de mapeo error de dominio → status HTTP. Stock insuficiente es 400,
// no 409: la petición es inválida dado el saldo actual.
func TestRespondError_MapeoDeStatus(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		{"insufficient stock", domain.ErrInsufficientStock, http.StatusBadRequest, "INSUFFICIENT_STOCK"},
		{"not found", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"user not found", domain.ErrUserNotFound, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"duplicate", domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{"email exists", domain.ErrEmailAlreadyExists, http.StatusConflict, "EMAIL_EXISTS"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/boom", func(c *fiber.Ctx) error {
				return respondError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), tc.wantCode)
		})
	}
}
