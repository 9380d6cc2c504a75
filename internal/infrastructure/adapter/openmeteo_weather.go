package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/infrastructure/config"
)

// coordinates of the Kerala district headquarters. Districts outside this
// table fall back to the geocoding API.
var keralaDistricts = map[string]location{
	"thiruvananthapuram": {8.5241, 76.9366},
	"kollam":             {8.8932, 76.6141},
	"pathanamthitta":     {9.2648, 76.7870},
	"alappuzha":          {9.4981, 76.3388},
	"kottayam":           {9.5916, 76.5222},
	"idukki":             {9.8436, 76.9720},
	"ernakulam":          {9.9816, 76.2999},
	"thrissur":           {10.5276, 76.2144},
	"palakkad":           {10.7867, 76.6548},
	"malappuram":         {11.0510, 76.0711},
	"kozhikode":          {11.2588, 75.7804},
	"wayanad":            {11.6854, 76.1320},
	"kannur":             {11.8745, 75.3704},
	"kasaragod":          {12.4996, 74.9869},
}

type location struct {
	Lat float64
	Lon float64
}

// OpenMeteoWeather implements port.WeatherClient against the Open-Meteo
// forecast and geocoding APIs. Geocoded locations are cached for the
// lifetime of the process.
type OpenMeteoWeather struct {
	cfg    config.WeatherConfig
	client *http.Client

	mu    sync.Mutex
	cache map[string]location
}

// NewOpenMeteoWeather creates a weather client with a 10 second timeout.
func NewOpenMeteoWeather(cfg config.WeatherConfig) *OpenMeteoWeather {
	return &OpenMeteoWeather{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		cache:  make(map[string]location),
	}
}

// CurrentConditions fetches the current weather for a district.
func (w *OpenMeteoWeather) CurrentConditions(ctx context.Context, district string) (port.WeatherSnapshot, error) {
	if district == "" {
		return port.WeatherSnapshot{}, fmt.Errorf("district is required")
	}

	loc, err := w.locate(ctx, district)
	if err != nil {
		return port.WeatherSnapshot{}, err
	}

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", loc.Lat))
	q.Set("longitude", fmt.Sprintf("%.4f", loc.Lon))
	q.Set("current", "temperature_2m,relative_humidity_2m,precipitation,wind_speed_10m")

	var payload struct {
		Current struct {
			Temperature   float64 `json:"temperature_2m"`
			Humidity      float64 `json:"relative_humidity_2m"`
			Precipitation float64 `json:"precipitation"`
			WindSpeed     float64 `json:"wind_speed_10m"`
		} `json:"current"`
	}
	if err := w.getJSON(ctx, w.cfg.BaseURL+"?"+q.Encode(), &payload); err != nil {
		return port.WeatherSnapshot{}, fmt.Errorf("fetch forecast for %s: %w", district, err)
	}

	return port.WeatherSnapshot{
		District:     district,
		TempC:        payload.Current.Temperature,
		HumidityPct:  payload.Current.Humidity,
		RainfallMM:   payload.Current.Precipitation,
		WindSpeedKmh: payload.Current.WindSpeed,
		FetchedAt:    time.Now().UTC(),
	}, nil
}

func (w *OpenMeteoWeather) locate(ctx context.Context, district string) (location, error) {
	key := strings.ToLower(strings.TrimSpace(district))
	if loc, ok := keralaDistricts[key]; ok {
		return loc, nil
	}

	w.mu.Lock()
	loc, ok := w.cache[key]
	w.mu.Unlock()
	if ok {
		return loc, nil
	}

	q := url.Values{}
	q.Set("name", district)
	q.Set("count", "1")

	var payload struct {
		Results []struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}
	if err := w.getJSON(ctx, w.cfg.GeocodeURL+"?"+q.Encode(), &payload); err != nil {
		return location{}, fmt.Errorf("geocode %s: %w", district, err)
	}
	if len(payload.Results) == 0 {
		return location{}, fmt.Errorf("geocode %s: no results", district)
	}

	loc = location{Lat: payload.Results[0].Latitude, Lon: payload.Results[0].Longitude}
	w.mu.Lock()
	w.cache[key] = loc
	w.mu.Unlock()
	return loc, nil
}

func (w *OpenMeteoWeather) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
