package quote

import (
	"errors"
	"testing"

	"github.com/eliksir/quote-service/internal/catalog"
	"github.com/eliksir/quote-service/internal/domain/models"
)

type fixedPolicy struct {
	policy models.PricingPolicy
	ready  bool
}

func (f fixedPolicy) Current() (models.PricingPolicy, bool) {
	return f.policy, f.ready
}

type countingRecorder struct {
	computed int
	rejected []string
}

func (r *countingRecorder) QuoteComputed(models.OfferID) { r.computed++ }
func (r *countingRecorder) QuoteRejected(reason string)  { r.rejected = append(r.rejected, reason) }

func TestServiceQuotePending(t *testing.T) {
	rec := &countingRecorder{}
	svc := NewService(catalog.NewStatic(familyOffer()), fixedPolicy{}, rec, nil)

	_, err := svc.Quote(models.QuoteRequest{OfferID: models.OfferFamily, Guests: 50})
	if !errors.Is(err, ErrPolicyPending) {
		t.Fatalf("expected ErrPolicyPending, got %v", err)
	}
	if len(rec.rejected) != 1 || rec.rejected[0] != "pending" {
		t.Fatalf("expected one pending rejection, got %v", rec.rejected)
	}
}

func TestServiceQuoteUnknownOffer(t *testing.T) {
	svc := NewService(catalog.NewStatic(familyOffer()), fixedPolicy{policy: testPolicy(), ready: true}, nil, nil)

	_, err := svc.Quote(models.QuoteRequest{OfferID: models.OfferExclusive, Guests: 50})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !errors.Is(err, catalog.ErrUnknownOffer) {
		t.Fatalf("expected wrapped ErrUnknownOffer, got %v", err)
	}
}

func TestServiceQuoteClampsWhenAsked(t *testing.T) {
	rec := &countingRecorder{}
	svc := NewService(catalog.NewStatic(familyOffer()), fixedPolicy{policy: testPolicy(), ready: true}, rec, nil)

	result, err := svc.Quote(models.QuoteRequest{OfferID: models.OfferFamily, Guests: 2, ClampGuests: true})
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	if result.Guests != familyOffer().MinGuests {
		t.Fatalf("expected guests clamped to %d, got %d", familyOffer().MinGuests, result.Guests)
	}
	if rec.computed != 1 {
		t.Fatalf("expected one computed quote, got %d", rec.computed)
	}
}

func TestServiceQuoteRejectsZeroGuests(t *testing.T) {
	rec := &countingRecorder{}
	svc := NewService(catalog.NewStatic(familyOffer()), fixedPolicy{policy: testPolicy(), ready: true}, rec, nil)

	_, err := svc.Quote(models.QuoteRequest{OfferID: models.OfferFamily, Guests: 0})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(rec.rejected) != 1 || rec.rejected[0] != "invalid_input" {
		t.Fatalf("expected invalid_input rejection, got %v", rec.rejected)
	}
}
