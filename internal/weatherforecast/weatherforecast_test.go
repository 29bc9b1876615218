package weatherforecast

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/mateusmacedo/go-todo/internal/weatherforecast/domain"
	"github.com/mateusmacedo/go-todo/internal/weatherforecast/infrastructure"
	zapAdapter "github.com/mateusmacedo/go-todo/pkg/infrastructure/zaplogger/adapter"
)

func TestWeatherForecastSliceRoutes(t *testing.T) {
	logger, _ := zapAdapter.NewObservedAppLogger(zapcore.InfoLevel)
	slice := NewWeatherForecastSlice(infrastructure.NewRandomForecastSource(42), logger, time.Second)

	router := chi.NewRouter()
	slice.RegisterRoutes(router)

	tests := []struct {
		name   string
		query  string
		status int
		count  int
	}{
		{name: "default days", query: "", status: http.StatusOK, count: 5},
		{name: "explicit days", query: "?days=7", status: http.StatusOK, count: 7},
		{name: "non numeric days", query: "?days=abc", status: http.StatusBadRequest},
		{name: "too many days", query: "?days=30", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/weatherforecasts"+tt.query, nil))

			require.Equal(t, tt.status, rec.Code)
			if tt.status != http.StatusOK {
				return
			}

			var forecasts []domain.WeatherForecast
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&forecasts))
			assert.Len(t, forecasts, tt.count)
		})
	}
}
