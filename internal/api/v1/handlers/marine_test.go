package handlers_test

import (
	"errors"
	"net/http"

	"github.com/stretchr/testify/mock"
	"ulascansenturk/weather-glass/internal/weatherstack"
)

var errTransport = errors.New("weatherstack request failed: dial tcp: i/o timeout")

func (s *WeatherHandlerTestSuite) TestMarineWeatherFromCoordinates() {
	body := []byte(`{"request":{"type":"LatLon","query":"Lat 36.78 and Lon -119.42"},"marine":{}}`)

	s.mockClient.On("Fetch", mock.Anything, weatherstack.EndpointMarine, withParams(map[string]string{
		"query": "36.7783,-119.4179",
		"units": "m",
	})).Return(&weatherstack.Response{StatusCode: http.StatusOK, Body: body}, nil)

	recorder := s.get(s.handler.GetMarineWeather, "/api/marine?lat=36.7783&lon=-119.4179")

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal(string(body), recorder.Body.String())
}

func (s *WeatherHandlerTestSuite) TestMarineQueryWinsOverCoordinates() {
	s.mockClient.On("Fetch", mock.Anything, weatherstack.EndpointMarine, withParams(map[string]string{
		"query": "45,10",
		"tide":  "1",
	})).Return(&weatherstack.Response{StatusCode: http.StatusOK, Body: []byte(`{}`)}, nil)

	recorder := s.get(s.handler.GetMarineWeather, "/api/marine?query=45,10&lat=1&lon=2&tide=1")
	s.Equal(http.StatusOK, recorder.Code)
}

func (s *WeatherHandlerTestSuite) TestMarineMissingLocation() {
	for _, target := range []string{
		"/api/marine",
		"/api/marine?lat=36.7783",
		"/api/marine?lon=-119.4179",
		"/api/marine?query=%20&lat=1&lon=2",
		"/api/marine?lat=%20&lon=%20",
		"/api/marine?lat=36.7783&lon=%20",
	} {
		recorder := s.get(s.handler.GetMarineWeather, target)

		s.Equal(http.StatusBadRequest, recorder.Code, target)
		s.Equal(`Missing or invalid "query" parameter (or provide both "lat" and "lon")`, s.decodeError(recorder).Error, target)
	}
	s.mockClient.AssertNotCalled(s.T(), "Fetch", mock.Anything, mock.Anything, mock.Anything)
}

func (s *WeatherHandlerTestSuite) TestMarinePlanLimitationRelayed() {
	envelope := `{"success":false,"error":{"code":105,"type":"function_access_restricted","info":"Access to marine data is not supported on your current subscription plan."}}`

	s.mockClient.On("Fetch", mock.Anything, weatherstack.EndpointMarine, mock.Anything).
		Return(&weatherstack.Response{StatusCode: http.StatusOK, Body: []byte(envelope)}, nil)

	recorder := s.get(s.handler.GetMarineWeather, "/api/marine?lat=45&lon=10")

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.JSONEq(envelope, recorder.Body.String())
}

func (s *WeatherHandlerTestSuite) TestMarineTransportFailureMessage() {
	s.mockClient.On("Fetch", mock.Anything, weatherstack.EndpointMarine, mock.Anything).
		Return(nil, errTransport)

	recorder := s.get(s.handler.GetMarineWeather, "/api/marine?lat=45&lon=10")

	s.Equal(http.StatusInternalServerError, recorder.Code)
	s.Equal("Failed to fetch marine weather data", s.decodeError(recorder).Error)
}
