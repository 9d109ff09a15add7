package policy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eliksir/quote-service/internal/domain/models"
	"github.com/eliksir/quote-service/pkg/clients/backend"
)

var (
	// ErrUnavailable indicates the backend could not provide a policy.
	ErrUnavailable = errors.New("pricing policy unavailable")
	// ErrIncompletePolicy indicates a policy missing one of its top-level sections.
	ErrIncompletePolicy = errors.New("pricing policy incomplete")
)

// requiredSections are the top-level keys a usable policy must carry.
var requiredSections = []string{"addons", "shoppingList", "pricePerExtraGuest"}

// Source provides a pricing policy.
type Source interface {
	Fetch(ctx context.Context) (models.PricingPolicy, error)
}

// ConfigFetcher retrieves the raw calculator configuration envelope.
type ConfigFetcher interface {
	CalculatorConfig(ctx context.Context) (*backend.CalculatorConfigResponse, error)
}

// RemoteSource reads the policy from the site backend.
type RemoteSource struct {
	fetcher ConfigFetcher
}

// NewRemoteSource wraps a backend client as a policy Source.
func NewRemoteSource(fetcher ConfigFetcher) *RemoteSource {
	return &RemoteSource{fetcher: fetcher}
}

// Fetch downloads the policy and checks its top-level shape. Value ranges are not
// checked; the policy is returned as the backend sent it.
func (s *RemoteSource) Fetch(ctx context.Context) (models.PricingPolicy, error) {
	resp, err := s.fetcher.CalculatorConfig(ctx)
	if err != nil {
		return models.PricingPolicy{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if !resp.Success {
		return models.PricingPolicy{}, fmt.Errorf("%w: backend reported failure: %s", ErrUnavailable, resp.Error)
	}

	return DecodePolicy(resp.Config)
}

// DecodePolicy parses a policy document, rejecting documents without the
// addons, shoppingList or pricePerExtraGuest sections.
func DecodePolicy(raw json.RawMessage) (models.PricingPolicy, error) {
	if isNull(raw) {
		return models.PricingPolicy{}, fmt.Errorf("%w: missing config", ErrIncompletePolicy)
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sections); err != nil {
		return models.PricingPolicy{}, fmt.Errorf("%w: decode config: %w", ErrUnavailable, err)
	}
	for _, key := range requiredSections {
		if isNull(sections[key]) {
			return models.PricingPolicy{}, fmt.Errorf("%w: missing %q", ErrIncompletePolicy, key)
		}
	}

	var policy models.PricingPolicy
	if err := json.Unmarshal(raw, &policy); err != nil {
		return models.PricingPolicy{}, fmt.Errorf("%w: decode config: %w", ErrUnavailable, err)
	}
	return policy, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// StaticSource always yields the same policy.
type StaticSource struct {
	policy models.PricingPolicy
}

// NewStaticSource returns a Source serving the given policy.
func NewStaticSource(policy models.PricingPolicy) *StaticSource {
	return &StaticSource{policy: policy}
}

// NewDefaultSource returns a Source serving DefaultPolicy.
func NewDefaultSource() *StaticSource {
	return NewStaticSource(DefaultPolicy())
}

// Fetch returns a copy of the configured policy.
func (s *StaticSource) Fetch(context.Context) (models.PricingPolicy, error) {
	out := s.policy
	if s.policy.PricePerExtraGuest != nil {
		out.PricePerExtraGuest = make(map[models.OfferID]int, len(s.policy.PricePerExtraGuest))
		for id, price := range s.policy.PricePerExtraGuest {
			out.PricePerExtraGuest[id] = price
		}
	}
	return out, nil
}
