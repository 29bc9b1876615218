package weatherforecast

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mateusmacedo/go-todo/internal/weatherforecast/application"
	"github.com/mateusmacedo/go-todo/internal/weatherforecast/domain"
	"github.com/mateusmacedo/go-todo/internal/weatherforecast/infrastructure"
	pkgApp "github.com/mateusmacedo/go-todo/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-todo/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-todo/pkg/infrastructure"
)

type WeatherForecastSlice struct {
	bus         application.GetWeatherForecastsBus
	httpHandler *infrastructure.WeatherForecastHTTPHandler
}

func NewWeatherForecastSlice(source domain.ForecastSource, logger pkgApp.AppLogger, requestTimeout time.Duration) *WeatherForecastSlice {
	bus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.GetWeatherForecastsData], application.GetWeatherForecastsData, []domain.WeatherForecast](logger)
	bus.RegisterHandler(application.GetWeatherForecastsQueryName, application.NewGetWeatherForecastsHandler(source, logger))

	return &WeatherForecastSlice{
		bus:         bus,
		httpHandler: infrastructure.NewWeatherForecastHTTPHandler(bus, requestTimeout, logger),
	}
}

func (s *WeatherForecastSlice) Bus() application.GetWeatherForecastsBus {
	return s.bus
}

func (s *WeatherForecastSlice) RegisterRoutes(router chi.Router) {
	s.httpHandler.RegisterRoutes(router)
}
