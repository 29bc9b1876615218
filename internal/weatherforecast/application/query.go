package application

import (
	"github.com/mateusmacedo/go-todo/pkg/domain"
)

const (
	GetWeatherForecastsQueryName = "GetWeatherForecasts"

	DefaultForecastDays = 5
)

// GetWeatherForecastsData pede Days previsões a partir de hoje; zero usa DefaultForecastDays.
type GetWeatherForecastsData struct {
	Days int `json:"days" validate:"gte=0,lte=14"`
}

type getWeatherForecastsQuery struct {
	data GetWeatherForecastsData
}

func (q getWeatherForecastsQuery) QueryName() string {
	return GetWeatherForecastsQueryName
}

func (q getWeatherForecastsQuery) Payload() GetWeatherForecastsData {
	return q.data
}

func NewGetWeatherForecastsQuery(data GetWeatherForecastsData) domain.Query[GetWeatherForecastsData] {
	return getWeatherForecastsQuery{data: data}
}
