package utils_test

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasajes-microservice/internal/pkg/errors"
	"github.com/pasajes-microservice/internal/pkg/utils"
)

func errorBody(t *testing.T, err error) (int, map[string]string) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return utils.SendError(c, err)
	})

	resp, testErr := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, testErr)
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestSendError(t *testing.T) {
	t.Run("app error with cause", func(t *testing.T) {
		status, body := errorBody(t, errors.ErrRouteNotFound.Wrapf("Ruta %d no encontrada", 7))
		assert.Equal(t, 500, status)
		assert.Equal(t, "Ruta 7 no encontrada", body["error"])
	})

	t.Run("connection failure", func(t *testing.T) {
		status, body := errorBody(t, errors.ErrDatabaseUnavailable.Wrap(stderrors.New("refused")))
		assert.Equal(t, 500, status)
		assert.Equal(t, "Database connection failed", body["error"])
	})

	t.Run("plain error", func(t *testing.T) {
		status, body := errorBody(t, stderrors.New("something broke"))
		assert.Equal(t, 500, status)
		assert.Equal(t, "something broke", body["error"])
	})
}
