package csc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/samber/lo"
	"github.com/sethvargo/go-retry"
	"github.com/shandysiswandi/unifydesk/internal/lookup/entity"
	"github.com/shandysiswandi/unifydesk/internal/pkg/instrument"
	"go.opentelemetry.io/otel/trace"
)

const countryCode = "IN"

// Client talks to the countrystatecity.in lookup API.
type Client struct {
	baseURL string
	apiKey  string
	hc      *http.Client
	ins     instrument.Instrumentation
}

func NewClient(baseURL, apiKey string, timeout time.Duration, ins instrument.Instrumentation) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		hc:      &http.Client{Timeout: timeout},
		ins:     ins,
	}
}

func (c *Client) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return c.ins.Tracer("lookup.outbound.csc").Start(ctx, name)
}

type stateItem struct {
	Name string `json:"name"`
	Iso2 string `json:"iso2"`
}

type cityItem struct {
	Name string `json:"name"`
}

func (c *Client) States(ctx context.Context) ([]entity.State, error) {
	ctx, span := c.startSpan(ctx, "States")
	defer span.End()

	var items []stateItem
	url := fmt.Sprintf("%s/v1/countries/%s/states", c.baseURL, countryCode)
	if err := c.getJSON(ctx, url, &items); err != nil {
		return nil, err
	}

	return lo.Map(items, func(it stateItem, _ int) entity.State {
		return entity.State{Name: it.Name, Code: it.Iso2}
	}), nil
}

func (c *Client) Cities(ctx context.Context, state string) ([]string, error) {
	ctx, span := c.startSpan(ctx, "Cities")
	defer span.End()

	var items []cityItem
	url := fmt.Sprintf("%s/v1/countries/%s/states/%s/cities", c.baseURL, countryCode, state)
	if err := c.getJSON(ctx, url, &items); err != nil {
		return nil, err
	}

	return lo.Map(items, func(it cityItem, _ int) string { return it.Name }), nil
}

// getJSON fetches url and decodes the body, retrying transport errors and
// 5xx responses with capped backoff. 4xx responses are not retried.
func (c *Client) getJSON(ctx context.Context, url string, dst any) error {
	b := retry.WithMaxRetries(3, retry.WithCappedDuration(2*time.Second, retry.NewFibonacci(200*time.Millisecond)))

	return retry.Do(ctx, b, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("X-CSCAPI-KEY", c.apiKey)

		resp, err := c.hc.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			io.Copy(io.Discard, resp.Body)
			return retry.RetryableError(fmt.Errorf("lookup upstream returned %s", resp.Status))
		}
		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, resp.Body)
			return fmt.Errorf("lookup upstream returned %s", resp.Status)
		}

		return json.NewDecoder(resp.Body).Decode(dst)
	})
}
