package domain

import (
	"context"
	"time"
)

var Summaries = []string{
	"Freezing", "Bracing", "Chilly", "Cool", "Mild", "Warm", "Balmy", "Hot", "Sweltering", "Scorching",
}

// WeatherForecast representa a previsão de um dia.
type WeatherForecast struct {
	Date         time.Time `json:"date"`
	TemperatureC int       `json:"temperatureC"`
	TemperatureF int       `json:"temperatureF"`
	Summary      string    `json:"summary"`
}

func NewWeatherForecast(date time.Time, temperatureC int, summary string) WeatherForecast {
	return WeatherForecast{
		Date:         date,
		TemperatureC: temperatureC,
		TemperatureF: ToFahrenheit(temperatureC),
		Summary:      summary,
	}
}

func ToFahrenheit(celsius int) int {
	return 32 + int(float64(celsius)/0.5556)
}

// ForecastSource produz previsões a partir de from, um dia por entrada.
type ForecastSource interface {
	Forecasts(ctx context.Context, from time.Time, days int) ([]WeatherForecast, error)
}
