package handlers_test

import (
	"net/http"
	"net/url"

	"github.com/stretchr/testify/mock"
	"ulascansenturk/weather-glass/internal/weatherstack"
)

func (s *WeatherHandlerTestSuite) TestHistoricalWeatherSuccess() {
	body := []byte(`{"request":{"type":"City"},"historical":{"2015-01-21":{"date":"2015-01-21","hourly":[]}}}`)

	s.mockClient.On("Fetch", mock.Anything, weatherstack.EndpointHistorical, withParams(map[string]string{
		"query":           "New York",
		"historical_date": "2015-01-21",
		"hourly":          "1",
		"interval":        "1",
		"units":           "m",
	})).Return(&weatherstack.Response{StatusCode: http.StatusOK, Body: body}, nil)

	recorder := s.get(s.handler.GetHistoricalWeather,
		"/api/historical?query=New%20York&historical_date=2015-01-21&hourly=true&interval=1")

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal(string(body), recorder.Body.String())
}

func (s *WeatherHandlerTestSuite) TestHistoricalHourlyFlag() {
	cases := map[string]string{
		"true":  "1",
		"1":     "1",
		"false": "0",
		"yes":   "0",
		"":      "0",
	}

	for raw, want := range cases {
		s.Run(raw, func() {
			s.SetupTest()
			s.mockClient.On("Fetch", mock.Anything, weatherstack.EndpointHistorical, withParams(map[string]string{
				"hourly": want,
			})).Return(&weatherstack.Response{StatusCode: http.StatusOK, Body: []byte(`{}`)}, nil).Once()

			recorder := s.get(s.handler.GetHistoricalWeather,
				"/api/historical?query=London&historical_date=2020-05-05&hourly="+raw)
			s.Equal(http.StatusOK, recorder.Code)
		})
	}
}

func (s *WeatherHandlerTestSuite) TestHistoricalOmitsAbsentOptionals() {
	s.mockClient.On("Fetch", mock.Anything, weatherstack.EndpointHistorical, mock.MatchedBy(func(params url.Values) bool {
		_, hourly := params["hourly"]
		_, interval := params["interval"]
		return !hourly && !interval
	})).Return(&weatherstack.Response{StatusCode: http.StatusOK, Body: []byte(`{}`)}, nil)

	recorder := s.get(s.handler.GetHistoricalWeather, "/api/historical?query=London&historical_date=2020-05-05")
	s.Equal(http.StatusOK, recorder.Code)
}

func (s *WeatherHandlerTestSuite) TestHistoricalMissingParams() {
	cases := map[string]string{
		"/api/historical?historical_date=2015-01-21":       `Missing or invalid "query" parameter`,
		"/api/historical?query=London":                     `Missing or invalid "historical_date" parameter (format: YYYY-MM-DD)`,
		"/api/historical?query=London&historical_date=%20": `Missing or invalid "historical_date" parameter (format: YYYY-MM-DD)`,
	}

	for target, message := range cases {
		recorder := s.get(s.handler.GetHistoricalWeather, target)

		s.Equal(http.StatusBadRequest, recorder.Code, target)
		s.Equal(message, s.decodeError(recorder).Error, target)
	}
	s.mockClient.AssertNotCalled(s.T(), "Fetch", mock.Anything, mock.Anything, mock.Anything)
}

func (s *WeatherHandlerTestSuite) TestHistoricalTransportFailureMessage() {
	s.mockClient.On("Fetch", mock.Anything, weatherstack.EndpointHistorical, mock.Anything).
		Return(nil, errTransport)

	recorder := s.get(s.handler.GetHistoricalWeather, "/api/historical?query=London&historical_date=2015-01-21")

	s.Equal(http.StatusInternalServerError, recorder.Code)
	s.Equal("Failed to fetch historical weather data", s.decodeError(recorder).Error)
}
