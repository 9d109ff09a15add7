package quote

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/eliksir/quote-service/internal/catalog"
	"github.com/eliksir/quote-service/internal/domain/models"
)

// ErrPolicyPending indicates no pricing policy has been loaded yet; callers should
// show a pending state instead of a price.
var ErrPolicyPending = errors.New("pricing policy not loaded yet")

// PolicyProvider exposes the policy currently in force.
type PolicyProvider interface {
	Current() (models.PricingPolicy, bool)
}

// Recorder receives quote outcomes for observability.
type Recorder interface {
	QuoteComputed(offer models.OfferID)
	QuoteRejected(reason string)
}

// Service prices calculator selections against the catalog and the current policy.
type Service struct {
	catalog  catalog.Catalog
	policies PolicyProvider
	recorder Recorder
	logger   *zap.Logger
}

// NewService wires a quote service. recorder may be nil.
func NewService(offers catalog.Catalog, policies PolicyProvider, recorder Recorder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		catalog:  offers,
		policies: policies,
		recorder: recorder,
		logger:   logger,
	}
}

// Quote resolves the offer, optionally clamps the guest count and computes the quote.
func (s *Service) Quote(req models.QuoteRequest) (models.QuoteResult, error) {
	policy, ok := s.policies.Current()
	if !ok {
		s.recorder.QuoteRejected("pending")
		return models.QuoteResult{}, ErrPolicyPending
	}

	offer, err := s.catalog.Offer(req.OfferID)
	if err != nil {
		s.recorder.QuoteRejected("unknown_offer")
		return models.QuoteResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	guests := req.Guests
	if req.ClampGuests {
		guests = ClampGuests(offer, guests)
	}

	result, err := Compute(policy, offer, guests, req.Addons)
	if err != nil {
		s.recorder.QuoteRejected("invalid_input")
		s.logger.Debug("quote rejected", zap.String("offer", string(req.OfferID)), zap.Int("guests", guests), zap.Error(err))
		return models.QuoteResult{}, err
	}

	s.recorder.QuoteComputed(offer.ID)
	return result, nil
}

// Offers lists the catalog for the calculator's package picker.
func (s *Service) Offers() []models.PackageOffer {
	return s.catalog.Offers()
}

type nopRecorder struct{}

func (nopRecorder) QuoteComputed(models.OfferID) {}
func (nopRecorder) QuoteRejected(string)         {}
