package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/flowbaker/ticket-classifier/internal/controllers"
	"github.com/flowbaker/ticket-classifier/pkg/classifier"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServer_Routes(t *testing.T) {
	logger := zerolog.Nop()
	c := classifier.New(classifier.ClassifierDependencies{
		Credentials: classifier.StaticCredentials{},
		Logger:      &logger,
	})

	app := NewHTTPServer(HTTPServerDependencies{
		ClassifyController: controllers.NewClassifyController(controllers.ClassifyControllerDependencies{
			Classifier: c,
		}),
		DisableRequestLog: true,
	})

	t.Run("health", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "ticket-classifier", body["service"])
	})

	t.Run("classify without credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/tickets/classify/", strings.NewReader(`{"description":"The app keeps crashing, this is urgent"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result classifier.Result
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, classifier.Result{
			SuggestedCategory: classifier.CategoryTechnical,
			SuggestedPriority: classifier.PriorityCritical,
		}, result)
	})

	t.Run("classify rejects get", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/tickets/classify/", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}
