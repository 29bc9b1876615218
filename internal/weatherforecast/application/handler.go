package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mateusmacedo/go-todo/internal/weatherforecast/domain"
	pkgApp "github.com/mateusmacedo/go-todo/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-todo/pkg/domain"
)

var ErrInvalidForecastRequest = errors.New("invalid forecast request")

var validate = validator.New()

type GetWeatherForecastsBus = pkgApp.QueryBus[pkgDomain.Query[GetWeatherForecastsData], GetWeatherForecastsData, []domain.WeatherForecast]

type getWeatherForecastsHandler struct {
	source domain.ForecastSource
	logger pkgApp.AppLogger
	now    func() time.Time
}

func (h *getWeatherForecastsHandler) Handle(ctx context.Context, query pkgDomain.Query[GetWeatherForecastsData]) ([]domain.WeatherForecast, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data := query.Payload()
	if err := validate.Struct(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForecastRequest, err)
	}

	days := data.Days
	if days == 0 {
		days = DefaultForecastDays
	}

	from := h.now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	forecasts, err := h.source.Forecasts(ctx, from, days)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "failed to produce forecasts", err, map[string]interface{}{
			"days": days,
		})
		return nil, err
	}

	pkgApp.LogDebug(ctx, h.logger, "forecasts produced", map[string]interface{}{
		"days": days,
	})
	return forecasts, nil
}

func NewGetWeatherForecastsHandler(source domain.ForecastSource, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[GetWeatherForecastsData], GetWeatherForecastsData, []domain.WeatherForecast] {
	return newGetWeatherForecastsHandler(source, logger, time.Now)
}

func newGetWeatherForecastsHandler(source domain.ForecastSource, logger pkgApp.AppLogger, now func() time.Time) *getWeatherForecastsHandler {
	return &getWeatherForecastsHandler{
		source: source,
		logger: logger,
		now:    now,
	}
}
