package swapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GoArmGo/StarWarsAPI/internal/config"
	"github.com/GoArmGo/StarWarsAPI/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := map[string]int64{
		"172":           172,
		"1,000":         1000,
		"1 standard":    1,
		"2000000000":    2000000000,
		"1000000000000": 1000000000000,
		"unknown":       0,
		"n/a":           0,
		"":              0,
		"0.9":           0,
		"30-165":        30,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseNumber(in), in)
	}
}

func TestResourceID(t *testing.T) {
	assert.Equal(t, uint(1), resourceID("https://swapi.dev/api/people/1/"))
	assert.Equal(t, uint(14), resourceID("https://swapi.dev/api/vehicles/14"))
	assert.Equal(t, uint(0), resourceID(""))
}

// newSWAPI отдает по две страницы каждого ресурса
func newSWAPI(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	hits := 0
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		second := r.URL.Query().Get("page") == "2"
		next := fmt.Sprintf(`"%s%s?page=2"`, srv.URL, r.URL.Path)
		if second {
			next = "null"
		}

		switch r.URL.Path {
		case "/api/people/":
			name := "Luke Skywalker"
			if second {
				name = "Biggs Darklighter"
			}
			fmt.Fprintf(w, `{"count":2,"next":%s,"results":[{"name":%q,"height":"172","mass":"1,358","hair_color":"blond","skin_color":"fair","eye_color":"blue","gender":"male","url":"%s/api/people/1/"}]}`, next, name, srv.URL)
		case "/api/planets/":
			fmt.Fprintf(w, `{"count":2,"next":%s,"results":[{"name":"Tatooine","climate":"arid","diameter":"10465","gravity":"1 standard","orbital_period":"304","population":"200000","rotation_period":"23","surface_water":"1","terrain":"desert","url":"%s/api/planets/1/"}]}`, next, srv.URL)
		case "/api/vehicles/":
			fmt.Fprintf(w, `{"count":2,"next":%s,"results":[{"name":"Sand Crawler","model":"Digger Crawler","cargo_capacity":"50000","consumables":"2 months","cost_in_credits":"unknown","vehicle_class":"wheeled","manufacturer":"Corellia Mining Corporation","passengers":"30","url":"%s/api/vehicles/4/"}]}`, next, srv.URL)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func newTestClient(baseURL string, maxPages int) *Client {
	cfg := &config.Config{}
	cfg.Seed.SwapiBaseURL = baseURL + "/"
	cfg.Seed.SwapiMaxPages = maxPages
	return NewClient(cfg, logger.Discard())
}

func TestLoadDataset_RespectsMaxPages(t *testing.T) {
	srv, hits := newSWAPI(t)

	ds, err := newTestClient(srv.URL+"/api", 1).LoadDataset(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, *hits)
	require.Len(t, ds.Characters, 1)
	assert.Equal(t, "Luke Skywalker", ds.Characters[0].Name)
	assert.Equal(t, 1358, ds.Characters[0].Mass)
	assert.Equal(t, uint(1), ds.Characters[0].ID)

	require.Len(t, ds.Planets, 1)
	assert.Equal(t, 1, ds.Planets[0].Gravity)
	assert.Equal(t, int64(200000), ds.Planets[0].Population)

	require.Len(t, ds.Vehicles, 1)
	assert.Equal(t, int64(0), ds.Vehicles[0].CostInCredits)
	assert.Equal(t, 30, ds.Vehicles[0].Passengers)

	assert.Empty(t, ds.Users)
	assert.Empty(t, ds.FavoriteCharacters)
}

func TestLoadDataset_FollowsNextUntilNull(t *testing.T) {
	srv, hits := newSWAPI(t)

	ds, err := newTestClient(srv.URL+"/api", 0).LoadDataset(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, *hits)
	require.Len(t, ds.Characters, 2)
	assert.Equal(t, "Biggs Darklighter", ds.Characters[1].Name)
	assert.Len(t, ds.Planets, 2)
	assert.Len(t, ds.Vehicles, 2)
}

func TestLoadDataset_ErrorStatus(t *testing.T) {
	srv, _ := newSWAPI(t)

	_, err := newTestClient(srv.URL+"/missing", 1).LoadDataset(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}
