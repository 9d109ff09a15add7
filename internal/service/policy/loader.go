package policy

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/eliksir/quote-service/internal/domain/models"
)

// Origin tells where a loaded policy came from.
type Origin string

const (
	OriginRemote  Origin = "remote"
	OriginDefault Origin = "default"
)

// LoadResult is the outcome of one load. Err carries the primary failure when the
// fallback was used and is informational only.
type LoadResult struct {
	Policy   models.PricingPolicy
	Origin   Origin
	Err      error
	LoadedAt time.Time
}

// Loader always resolves to a usable policy.
type Loader interface {
	Load(ctx context.Context) LoadResult
}

// Recorder receives load outcomes for observability.
type Recorder interface {
	PolicyLoaded(origin string)
}

// FallbackLoader tries the primary source and falls back to a secondary one.
type FallbackLoader struct {
	primary  Source
	fallback Source
	recorder Recorder
	logger   *zap.Logger
	now      func() time.Time
}

// NewFallbackLoader composes a loader. recorder may be nil.
func NewFallbackLoader(primary, fallback Source, recorder Recorder, logger *zap.Logger) *FallbackLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FallbackLoader{
		primary:  primary,
		fallback: fallback,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// Load returns the primary policy, or the fallback policy when the primary fails.
func (l *FallbackLoader) Load(ctx context.Context) LoadResult {
	policy, err := l.primary.Fetch(ctx)
	if err == nil {
		l.record(OriginRemote)
		return LoadResult{Policy: policy, Origin: OriginRemote, LoadedAt: l.now()}
	}

	l.logger.Warn("pricing policy unavailable, using default", zap.Error(err))

	fallback, fbErr := l.fallback.Fetch(ctx)
	if fbErr != nil {
		// The fallback source is expected to be static; never leave callers empty-handed.
		l.logger.Error("fallback pricing policy failed, using built-in default", zap.Error(fbErr))
		fallback = DefaultPolicy()
	}

	l.record(OriginDefault)
	return LoadResult{Policy: fallback, Origin: OriginDefault, Err: err, LoadedAt: l.now()}
}

func (l *FallbackLoader) record(origin Origin) {
	if l.recorder != nil {
		l.recorder.PolicyLoaded(string(origin))
	}
}
