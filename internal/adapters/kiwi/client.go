// Package kiwi implements the flight provider port against the Tequila API:
// a location lookup endpoint and an itinerary search endpoint. Both are
// authenticated with an API key and return JSON.
package kiwi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"flightdealclub/internal/domain"
)

const dateFormat = "02/01/2006"

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient returns a provider client for the API at baseURL.
func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, baseURL: baseURL, apiKey: apiKey}
}

var _ domain.FlightProvider = (*Client)(nil)

type locationsResponse struct {
	Locations []struct {
		Code string `json:"code"`
		Name string `json:"name"`
	} `json:"locations"`
}

type searchResponse struct {
	Data []struct {
		Price          float64 `json:"price"`
		CityFrom       string  `json:"cityFrom"`
		FlyFrom        string  `json:"flyFrom"`
		CityTo         string  `json:"cityTo"`
		FlyTo          string  `json:"flyTo"`
		LocalDeparture string  `json:"local_departure"`
		Route          []struct {
			CityTo         string `json:"cityTo"`
			LocalDeparture string `json:"local_departure"`
		} `json:"route"`
	} `json:"data"`
}

func (c *Client) QueryLocations(ctx context.Context, term string) ([]domain.Location, error) {
	params := url.Values{}
	params.Set("term", term)

	var body locationsResponse
	if err := c.get(ctx, "/locations/query", params, &body); err != nil {
		return nil, fmt.Errorf("query locations: %w", err)
	}
	locations := make([]domain.Location, 0, len(body.Locations))
	for _, l := range body.Locations {
		locations = append(locations, domain.Location{Code: l.Code, Name: l.Name})
	}
	return locations, nil
}

func (c *Client) QueryFlights(ctx context.Context, q domain.FlightQuery) ([]domain.FlightOption, error) {
	params := url.Values{}
	params.Set("fly_from", q.FlyFrom)
	params.Set("fly_to", q.FlyTo)
	params.Set("date_from", q.DateFrom.Format(dateFormat))
	params.Set("date_to", q.DateTo.Format(dateFormat))
	params.Set("nights_in_dst_from", strconv.Itoa(q.NightsFrom))
	params.Set("nights_in_dst_to", strconv.Itoa(q.NightsTo))
	params.Set("flight_type", q.FlightType)
	params.Set("curr", q.Currency)
	params.Set("max_stopovers", strconv.Itoa(q.MaxStopovers))

	var body searchResponse
	if err := c.get(ctx, "/v2/search", params, &body); err != nil {
		return nil, fmt.Errorf("query flights: %w", err)
	}
	options := make([]domain.FlightOption, 0, len(body.Data))
	for _, d := range body.Data {
		option := domain.FlightOption{
			Price:          d.Price,
			CityFrom:       d.CityFrom,
			FlyFrom:        d.FlyFrom,
			CityTo:         d.CityTo,
			FlyTo:          d.FlyTo,
			LocalDeparture: d.LocalDeparture,
		}
		for _, leg := range d.Route {
			option.Route = append(option.Route, domain.RouteLeg{CityTo: leg.CityTo, LocalDeparture: leg.LocalDeparture})
		}
		options = append(options, option)
	}
	return options, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch from provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider api returned status: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}
