package infrastructure

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/mateusmacedo/go-todo/internal/weatherforecast/domain"
)

const (
	minTemperatureC = -20
	maxTemperatureC = 55
)

// RandomForecastSource sorteia temperatura e resumo para cada dia.
type RandomForecastSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomForecastSource(seed int64) *RandomForecastSource {
	return &RandomForecastSource{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

func (s *RandomForecastSource) Forecasts(ctx context.Context, from time.Time, days int) ([]domain.WeatherForecast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	forecasts := make([]domain.WeatherForecast, 0, days)
	for i := 0; i < days; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		temperatureC := minTemperatureC + s.rnd.Intn(maxTemperatureC-minTemperatureC)
		summary := domain.Summaries[s.rnd.Intn(len(domain.Summaries))]
		forecasts = append(forecasts, domain.NewWeatherForecast(from.AddDate(0, 0, i), temperatureC, summary))
	}

	return forecasts, nil
}
