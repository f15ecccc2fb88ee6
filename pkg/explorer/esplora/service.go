package esplora

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bitsend-network/bitsend-daemon/pkg/circuitbreaker"
	"github.com/bitsend-network/bitsend-daemon/pkg/explorer"
	"github.com/bitsend-network/bitsend-daemon/pkg/util"
	"github.com/sony/gobreaker"
	"go.uber.org/ratelimit"
)

var (
	// ErrNullAPIURL ...
	ErrNullAPIURL = errors.New("explorer api url must not be null")
	// ErrInvalidRequestsPerSecond ...
	ErrInvalidRequestsPerSecond = errors.New(
		"requests per second must be a positive number",
	)
)

type esplora struct {
	apiURL  string
	limiter ratelimit.Limiter
	breaker *gobreaker.CircuitBreaker
}

// ServiceOpts is the struct given to the NewService factory.
type ServiceOpts struct {
	APIURL string
	// RequestsPerSecond caps the frequency of the outbound calls to respect
	// the remote provider's rate limit. Zero disables the cap.
	RequestsPerSecond int
	// Limiter, when set, takes precedence over RequestsPerSecond. Useful to
	// inject an unlimited limiter in tests.
	Limiter ratelimit.Limiter
}

func (o ServiceOpts) validate() error {
	if len(o.APIURL) <= 0 {
		return ErrNullAPIURL
	}
	if o.RequestsPerSecond < 0 {
		return ErrInvalidRequestsPerSecond
	}
	return nil
}

func (o ServiceOpts) limiterOrDefault() ratelimit.Limiter {
	if o.Limiter != nil {
		return o.Limiter
	}
	if o.RequestsPerSecond > 0 {
		// WithoutSlack enforces a minimum spacing between any two calls
		// instead of allowing an initial burst.
		return ratelimit.New(o.RequestsPerSecond, ratelimit.WithoutSlack)
	}
	return ratelimit.NewUnlimited()
}

// NewService returns a new esplora service as an explorer.Service interface.
func NewService(opts ServiceOpts) (explorer.Service, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	service := &esplora{
		apiURL:  opts.APIURL,
		limiter: opts.limiterOrDefault(),
		breaker: circuitbreaker.NewCircuitBreaker("esplora"),
	}

	if err := service.healthCheck(); err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}

	return service, nil
}

func (e *esplora) healthCheck() error {
	url := fmt.Sprintf("%s/blocks/tip/height", e.apiURL)
	status, resp, err := e.doRequest(
		context.Background(), http.MethodGet, url, "", nil,
	)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return errors.New(resp)
	}
	return nil
}

// doRequest funnels every outbound call through the rate limiter and the
// circuit breaker.
func (e *esplora) doRequest(
	ctx context.Context,
	method, url, body string,
	headers map[string]string,
) (int, string, error) {
	e.limiter.Take()

	type response struct {
		status int
		body   string
	}
	iResp, err := e.breaker.Execute(func() (interface{}, error) {
		status, resp, err := util.NewHTTPRequest(ctx, method, url, body, headers)
		if err != nil {
			return nil, err
		}
		return response{status, resp}, nil
	})
	if err != nil {
		return 0, "", err
	}

	resp := iResp.(response)
	return resp.status, resp.body, nil
}
