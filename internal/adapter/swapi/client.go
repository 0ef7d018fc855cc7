// internal/adapter/swapi/client.go
package swapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/GoArmGo/StarWarsAPI/internal/config"
	"github.com/GoArmGo/StarWarsAPI/internal/domain"
	"github.com/goccy/go-json"
)

// Client загружает персонажей, планеты и транспорт из публичного Star Wars API.
// Реализует ports.DatasetSource.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxPages   int
	logger     *slog.Logger
}

// NewClient создает новый экземпляр Client.
// maxPages ограничивает число страниц каждого ресурса, 0 означает без ограничения.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(cfg.Seed.SwapiBaseURL, "/"),
		maxPages:   cfg.Seed.SwapiMaxPages,
		logger:     logger,
	}
}

// fetchAll проходит по страницам ресурса, следуя полю next
func fetchAll[T any](ctx context.Context, c *Client, resource string) ([]T, error) {
	start := time.Now()
	next := fmt.Sprintf("%s/%s/", c.baseURL, resource)
	items := make([]T, 0)

	for pages := 0; next != "" && (c.maxPages <= 0 || pages < c.maxPages); pages++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, next, nil)
		if err != nil {
			return nil, fmt.Errorf("create SWAPI request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request SWAPI %s: %w", resource, err)
		}

		var p page[T]
		err = func() error {
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
				return fmt.Errorf("SWAPI %s returned status %d: %s", resource, resp.StatusCode, string(body))
			}
			if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
				return fmt.Errorf("decode SWAPI %s page: %w", resource, err)
			}
			return nil
		}()
		if err != nil {
			return nil, err
		}

		items = append(items, p.Results...)
		next = ""
		if p.Next != nil {
			next = *p.Next
		}
	}

	c.logger.Info("fetched SWAPI resource",
		"resource", resource,
		"count", len(items),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return items, nil
}

// LoadDataset собирает набор данных без пользователей и избранного
func (c *Client) LoadDataset(ctx context.Context) (*domain.Dataset, error) {
	people, err := fetchAll[PersonResponse](ctx, c, "people")
	if err != nil {
		return nil, err
	}
	planets, err := fetchAll[PlanetResponse](ctx, c, "planets")
	if err != nil {
		return nil, err
	}
	vehicles, err := fetchAll[VehicleResponse](ctx, c, "vehicles")
	if err != nil {
		return nil, err
	}

	ds := &domain.Dataset{
		Characters: make([]domain.Character, 0, len(people)),
		Planets:    make([]domain.Planet, 0, len(planets)),
		Vehicles:   make([]domain.Vehicle, 0, len(vehicles)),
	}
	for _, p := range people {
		ds.Characters = append(ds.Characters, mapPerson(p))
	}
	for _, p := range planets {
		ds.Planets = append(ds.Planets, mapPlanet(p))
	}
	for _, v := range vehicles {
		ds.Vehicles = append(ds.Vehicles, mapVehicle(v))
	}
	return ds, nil
}

func mapPerson(p PersonResponse) domain.Character {
	return domain.Character{
		ID:        resourceID(p.URL),
		Name:      p.Name,
		Height:    int(parseNumber(p.Height)),
		Mass:      int(parseNumber(p.Mass)),
		HairColor: p.HairColor,
		SkinColor: p.SkinColor,
		EyeColor:  p.EyeColor,
		Gender:    p.Gender,
	}
}

func mapPlanet(p PlanetResponse) domain.Planet {
	return domain.Planet{
		ID:             resourceID(p.URL),
		Name:           p.Name,
		Climate:        p.Climate,
		Diameter:       int(parseNumber(p.Diameter)),
		Gravity:        int(parseNumber(p.Gravity)),
		OrbitalPeriod:  int(parseNumber(p.OrbitalPeriod)),
		Population:     parseNumber(p.Population),
		RotationPeriod: int(parseNumber(p.RotationPeriod)),
		SurfaceWater:   int(parseNumber(p.SurfaceWater)),
		Terrain:        p.Terrain,
	}
}

func mapVehicle(v VehicleResponse) domain.Vehicle {
	return domain.Vehicle{
		ID:            resourceID(v.URL),
		Name:          v.Name,
		Model:         v.Model,
		CargoCapacity: parseNumber(v.CargoCapacity),
		Consumables:   v.Consumables,
		CostInCredits: parseNumber(v.CostInCredits),
		VehicleClass:  v.VehicleClass,
		Manufacturer:  v.Manufacturer,
		Passengers:    int(parseNumber(v.Passengers)),
	}
}

// parseNumber берет ведущие цифры, игнорируя запятые:
// "1,000" -> 1000, "1 standard" -> 1, "unknown" -> 0
func parseNumber(s string) int64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// resourceID извлекает id из url ресурса: https://swapi.dev/api/people/1/ -> 1
func resourceID(url string) uint {
	parts := strings.Split(strings.TrimRight(url, "/"), "/")
	id, err := strconv.ParseUint(parts[len(parts)-1], 10, 0)
	if err != nil {
		return 0
	}
	return uint(id)
}
