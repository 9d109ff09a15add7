package inquiry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eliksir/quote-service/internal/domain/models"
)

const (
	MinGuestCount = 10
	MaxGuestCount = 400
)

var (
	// ErrInvalidInquiry marks contact submissions rejected by validation.
	ErrInvalidInquiry = errors.New("invalid inquiry")
	// ErrDeliveryFailed means the inquiry reached none of the configured sinks.
	ErrDeliveryFailed = errors.New("inquiry could not be delivered")
)

// Store persists inquiries. It is the primary sink when configured.
type Store interface {
	SaveInquiry(ctx context.Context, inquiry models.Inquiry) error
}

// Publisher forwards an inquiry to a secondary channel (spreadsheet, messenger).
type Publisher interface {
	Name() string
	Publish(ctx context.Context, inquiry models.Inquiry) error
}

// QuoteProvider recomputes the calculator snapshot attached to an inquiry.
type QuoteProvider interface {
	Quote(req models.QuoteRequest) (models.QuoteResult, error)
}

// Recorder receives inquiry outcomes.
type Recorder interface {
	InquiryHandled(outcome string)
}

// Service validates contact requests and fans them out to the configured sinks.
type Service struct {
	store      Store
	publishers []Publisher
	quotes     QuoteProvider
	recorder   Recorder
	validate   *validator.Validate
	logger     *zap.Logger
	now        func() time.Time
	newID      func() string
}

// NewService wires the inquiry service. store, quotes and recorder may be nil.
func NewService(store Store, quotes QuoteProvider, recorder Recorder, logger *zap.Logger, publishers ...Publisher) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		store:      store,
		publishers: publishers,
		quotes:     quotes,
		recorder:   recorder,
		validate:   validator.New(),
		logger:     logger,
		now:        time.Now,
		newID:      func() string { return uuid.NewString() },
	}
}

// Submit validates the request, attaches a server-side quote and delivers the inquiry.
// Publisher failures are logged and do not fail the submission once the inquiry
// reached at least one sink.
func (s *Service) Submit(ctx context.Context, req models.InquiryRequest) (models.Inquiry, error) {
	inquiry, err := s.build(req)
	if err != nil {
		s.recorder.InquiryHandled("invalid")
		return models.Inquiry{}, err
	}

	sinks, delivered := 0, 0
	if s.store != nil {
		sinks++
		if err := s.store.SaveInquiry(ctx, inquiry); err != nil {
			s.recorder.InquiryHandled("failed")
			s.logger.Error("failed to store inquiry", zap.String("id", inquiry.ID), zap.Error(err))
			return models.Inquiry{}, fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
		}
		delivered++
	}

	for _, p := range s.publishers {
		sinks++
		if err := p.Publish(ctx, inquiry); err != nil {
			s.logger.Warn("failed to publish inquiry",
				zap.String("publisher", p.Name()),
				zap.String("id", inquiry.ID),
				zap.Error(err))
			continue
		}
		delivered++
	}

	if sinks > 0 && delivered == 0 {
		s.recorder.InquiryHandled("failed")
		return models.Inquiry{}, ErrDeliveryFailed
	}
	if sinks == 0 {
		s.logger.Warn("no inquiry sink configured, inquiry only logged",
			zap.String("id", inquiry.ID),
			zap.String("email", inquiry.Email))
	}

	s.recorder.InquiryHandled("stored")
	s.logger.Info("inquiry accepted", zap.String("id", inquiry.ID), zap.Int("delivered", delivered))
	return inquiry, nil
}

func (s *Service) build(req models.InquiryRequest) (models.Inquiry, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)

	switch {
	case name == "":
		return models.Inquiry{}, fmt.Errorf("%w: name is required", ErrInvalidInquiry)
	case email == "":
		return models.Inquiry{}, fmt.Errorf("%w: email is required", ErrInvalidInquiry)
	case message == "":
		return models.Inquiry{}, fmt.Errorf("%w: message is required", ErrInvalidInquiry)
	}

	if err := s.validate.Var(email, "email"); err != nil {
		return models.Inquiry{}, fmt.Errorf("%w: email is malformed", ErrInvalidInquiry)
	}

	inquiry := models.Inquiry{
		ID:        s.newID(),
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		Message:   message,
		EventType: strings.TrimSpace(req.EventType),
		EventDate: strings.TrimSpace(req.EventDate),
		CreatedAt: s.now().UTC(),
	}

	if req.GuestCount != nil {
		if *req.GuestCount < MinGuestCount || *req.GuestCount > MaxGuestCount {
			return models.Inquiry{}, fmt.Errorf("%w: guestCount must be between %d and %d", ErrInvalidInquiry, MinGuestCount, MaxGuestCount)
		}
		inquiry.GuestCount = *req.GuestCount
	}

	if req.Calculator != nil && s.quotes != nil {
		result, err := s.quotes.Quote(*req.Calculator)
		if err != nil {
			// The inquiry still goes through; the owner prices it by hand.
			s.logger.Warn("calculator snapshot dropped",
				zap.String("offer", string(req.Calculator.OfferID)),
				zap.Error(err))
		} else {
			inquiry.Quote = &result
		}
	}

	return inquiry, nil
}

type nopRecorder struct{}

func (nopRecorder) InquiryHandled(string) {}
