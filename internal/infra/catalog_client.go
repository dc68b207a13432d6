package infra

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Dany1912-dev/ProyectoMetodologia/internal/logger"
	"github.com/Dany1912-dev/ProyectoMetodologia/internal/metrics"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProductInfo is the catalog's view of a product at lookup time.
type ProductInfo struct {
	ID       uint64          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category,omitempty"`
}

// CatalogClient talks to the remote product catalog over HTTP, behind a
// circuit breaker so a failing catalog cannot drag order traffic down
// with it.
type CatalogClient struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
}

const catalogFanOutLimit = 8

func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "catalog",
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			state := float64(0)
			switch to {
			case gobreaker.StateOpen:
				state = 1
			case gobreaker.StateHalfOpen:
				state = 2
			}
			metrics.CatalogBreakerState.Set(state)
			logger.Log.Info("catalog circuit breaker state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &CatalogClient{
		client:  resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
		breaker: breaker,
	}
}

// FindProductsByIDs resolves the given ids against the catalog in one
// batch. Unknown products are simply missing from the result; transport
// failures and an open breaker surface as errors.
func (c *CatalogClient) FindProductsByIDs(ctx context.Context, ids []uint64) (map[uint64]ProductInfo, error) {
	found := make(map[uint64]ProductInfo, len(ids))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(catalogFanOutLimit)

	seen := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		id := id
		g.Go(func() error {
			p, err := c.fetchProduct(ctx, id)
			if err != nil {
				return err
			}
			if p == nil {
				return nil
			}
			mu.Lock()
			found[id] = *p
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return found, nil
}

// fetchProduct returns (nil, nil) when the catalog does not know the id.
func (c *CatalogClient) fetchProduct(ctx context.Context, id uint64) (*ProductInfo, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		var p ProductInfo
		resp, err := c.client.R().
			SetContext(ctx).
			SetResult(&p).
			Get(fmt.Sprintf("/products/%d", id))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode() == http.StatusNotFound {
			return nil, nil
		}
		if resp.IsError() {
			return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode())
		}
		return &p, nil
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	return result.(*ProductInfo), nil
}
