package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mateusmacedo/go-todo/internal/weatherforecast/application"
	pkgApp "github.com/mateusmacedo/go-todo/pkg/application"
)

type WeatherForecastHTTPHandler struct {
	bus            application.GetWeatherForecastsBus
	requestTimeout time.Duration
	logger         pkgApp.AppLogger
}

func NewWeatherForecastHTTPHandler(bus application.GetWeatherForecastsBus, requestTimeout time.Duration, logger pkgApp.AppLogger) *WeatherForecastHTTPHandler {
	return &WeatherForecastHTTPHandler{
		bus:            bus,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}

func (h *WeatherForecastHTTPHandler) HandleGetWeatherForecasts(w http.ResponseWriter, r *http.Request) {
	var data application.GetWeatherForecastsData
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid days", http.StatusBadRequest)
			return
		}
		data.Days = days
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	forecasts, err := h.bus.Dispatch(ctx, application.NewGetWeatherForecastsQuery(data))
	if err != nil {
		if errors.Is(err, application.ErrInvalidForecastRequest) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		pkgApp.LogError(ctx, h.logger, "request failed", err, nil)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(forecasts)
}

func (h *WeatherForecastHTTPHandler) RegisterRoutes(router chi.Router) {
	router.Get("/api/weatherforecasts", h.HandleGetWeatherForecasts)
}
