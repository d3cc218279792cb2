package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/unifydesk/internal/lookup/entity"
	"github.com/shandysiswandi/unifydesk/internal/pkg/goerror"
	"github.com/shandysiswandi/unifydesk/internal/pkg/instrument"
	"github.com/shandysiswandi/unifydesk/internal/pkg/validator"
)

type fakeCache struct {
	states    []entity.State
	cities    map[string][]string
	statesTTL time.Duration
	citiesTTL time.Duration
}

func newFakeCache() *fakeCache {
	return &fakeCache{cities: map[string][]string{}}
}

func (f *fakeCache) GetStates(context.Context) ([]entity.State, error) {
	if len(f.states) == 0 {
		return nil, goerror.ErrNotFound
	}
	return f.states, nil
}

func (f *fakeCache) SetStates(_ context.Context, states []entity.State, ttl time.Duration) error {
	f.states = states
	f.statesTTL = ttl
	return nil
}

func (f *fakeCache) GetCities(_ context.Context, state string) ([]string, error) {
	cities, ok := f.cities[state]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return cities, nil
}

func (f *fakeCache) SetCities(_ context.Context, state string, cities []string, ttl time.Duration) error {
	f.cities[state] = cities
	f.citiesTTL = ttl
	return nil
}

type fakeUpstream struct {
	states []entity.State
	cities map[string][]string
	err    error
	calls  int
}

func (f *fakeUpstream) States(context.Context) ([]entity.State, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.states, nil
}

func (f *fakeUpstream) Cities(_ context.Context, state string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.cities[state], nil
}

func newTestUsecase(t *testing.T, c *fakeCache, up *fakeUpstream, ttl time.Duration) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	return New(Dependency{
		RepoCache:    c,
		RepoUpstream: up,
		Validator:    v,
		CacheTTL:     ttl,
		Instrument:   instrument.NewNoop(),
	})
}

func TestStatesCachesUpstreamResult(t *testing.T) {
	c := newFakeCache()
	up := &fakeUpstream{states: []entity.State{{Name: "Karnataka", Code: "KA"}}}
	uc := newTestUsecase(t, c, up, 24*time.Hour)

	states, err := uc.States(t.Context())
	if err != nil {
		t.Fatalf("states: %v", err)
	}
	if len(states) != 1 || states[0].Code != "KA" {
		t.Fatalf("unexpected states: %+v", states)
	}
	if c.statesTTL != 24*time.Hour {
		t.Fatalf("cache ttl = %v, want 24h", c.statesTTL)
	}

	// Second call is served from cache.
	if _, err := uc.States(t.Context()); err != nil {
		t.Fatalf("states: %v", err)
	}
	if up.calls != 1 {
		t.Fatalf("upstream calls = %d, want 1", up.calls)
	}
}

func TestStatesFallbackWhenUpstreamDown(t *testing.T) {
	c := newFakeCache()
	up := &fakeUpstream{err: errors.New("upstream down")}
	uc := newTestUsecase(t, c, up, time.Hour)

	states, err := uc.States(t.Context())
	if err != nil {
		t.Fatalf("states: %v", err)
	}
	if len(states) != len(fallbackStates) {
		t.Fatalf("got %d states, want fallback list of %d", len(states), len(fallbackStates))
	}
	if len(c.states) != 0 {
		t.Fatal("fallback data must not be cached")
	}
}

func TestCitiesNormalizesAndCaches(t *testing.T) {
	c := newFakeCache()
	up := &fakeUpstream{cities: map[string][]string{"KA": {"Bengaluru", "Mysuru"}}}
	uc := newTestUsecase(t, c, up, time.Hour)

	cities, err := uc.Cities(t.Context(), CitiesInput{State: " ka "})
	if err != nil {
		t.Fatalf("cities: %v", err)
	}
	if len(cities) != 2 {
		t.Fatalf("unexpected cities: %v", cities)
	}
	if _, ok := c.cities["KA"]; !ok {
		t.Fatal("cities not cached under the upper cased code")
	}
}

func TestCitiesFallback(t *testing.T) {
	up := &fakeUpstream{err: errors.New("upstream down")}
	uc := newTestUsecase(t, newFakeCache(), up, time.Hour)

	cities, err := uc.Cities(t.Context(), CitiesInput{State: "KA"})
	if err != nil {
		t.Fatalf("cities: %v", err)
	}
	if len(cities) == 0 {
		t.Fatal("expected fallback cities for KA")
	}

	_, err = uc.Cities(t.Context(), CitiesInput{State: "ZZ"})

	var gerr *goerror.Error
	if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeNotFound {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestCitiesValidation(t *testing.T) {
	uc := newTestUsecase(t, newFakeCache(), &fakeUpstream{}, time.Hour)

	_, err := uc.Cities(t.Context(), CitiesInput{State: ""})

	var gerr *goerror.Error
	if !errors.As(err, &gerr) || gerr.Type() != goerror.TypeValidation {
		t.Fatalf("err = %v, want validation error", err)
	}
}
