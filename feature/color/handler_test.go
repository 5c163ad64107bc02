package color

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"

	"toolbox/core/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(entropy io.Reader) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(entropy, zap.NewNop(), metrics.New())).RegisterRoutes(app)
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (int, State) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var out State
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestHandleConvert(t *testing.T) {
	app := setupTestApp(nil)

	code, s := post(t, app, "/color/hex", `{"value":"FF8000"}`)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "255,128,0", s.RGB)

	code, s = post(t, app, "/color/rgb", `{"state":{"hex":"FF8000","rgb":"255,128,0","cmyk":"0.0,0.4980392,1.0,0.0"},"value":"255,128"}`)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, State{Hex: "FF8000", RGB: "255,128", CMYK: "0.0,0.4980392,1.0,0.0"}, s)

	code, _ = post(t, app, "/color/hsl", `{"value":"1"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = post(t, app, "/color/hex", `{"value":`)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestHandleAction(t *testing.T) {
	app := setupTestApp(nil)

	code, s := post(t, app, "/color/darker", `{"state":{"hex":"FF8000"}}`)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "BF6000", s.Hex)

	code, s = post(t, app, "/color/complement", `{"state":{"hex":"FF8000"}}`)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "007FFF", s.Hex)

	code, s = post(t, app, "/color/lighter", `{"state":{"hex":"nope"}}`)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, State{Hex: "nope"}, s)
}

func TestHandleAction_Random(t *testing.T) {
	app := setupTestApp(bytes.NewReader([]byte{0xAB, 0xCD, 0xEF}))

	code, s := post(t, app, "/color/random", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "ABCDEF", s.Hex)
	assert.Equal(t, "171,205,239", s.RGB)
}

func TestHandleAction_RandomEntropyFailure(t *testing.T) {
	app := setupTestApp(iotest.ErrReader(io.ErrClosedPipe))

	code, _ := post(t, app, "/color/random", `{"state":{}}`)
	assert.Equal(t, fiber.StatusInternalServerError, code)
}

func TestLoader(t *testing.T) {
	feature := NewFeature(nil, zap.NewNop(), nil)

	assert.Equal(t, "color", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
