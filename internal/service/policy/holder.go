package policy

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/eliksir/quote-service/internal/domain/models"
)

// Status describes the policy currently held.
type Status struct {
	Ready     bool      `json:"ready"`
	Origin    Origin    `json:"origin,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
	LastError string    `json:"lastError,omitempty"`
}

// Holder keeps the policy in force. Every Store replaces the previous policy
// wholesale; the last store wins.
type Holder struct {
	mu     sync.RWMutex
	policy models.PricingPolicy
	status Status
}

// NewHolder returns an empty holder; Current reports not ready until the first Store.
func NewHolder() *Holder {
	return &Holder{}
}

// Current returns the held policy and whether one has been loaded.
func (h *Holder) Current() (models.PricingPolicy, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.policy, h.status.Ready
}

// Status returns metadata about the held policy.
func (h *Holder) Status() Status {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

// Store replaces the held policy with the loaded one.
func (h *Holder) Store(result LoadResult) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.policy = result.Policy
	h.status = Status{
		Ready:     true,
		Origin:    result.Origin,
		UpdatedAt: result.LoadedAt,
	}
	if result.Err != nil {
		h.status.LastError = result.Err.Error()
	}
}

// Refresher loads a policy and publishes it to a Holder.
type Refresher struct {
	loader Loader
	holder *Holder
	logger *zap.Logger
}

// NewRefresher wires a refresher.
func NewRefresher(loader Loader, holder *Holder, logger *zap.Logger) *Refresher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Refresher{loader: loader, holder: holder, logger: logger}
}

// Refresh loads the policy and stores it, whichever source it came from. A load
// interrupted by ctx cancellation is discarded.
func (r *Refresher) Refresh(ctx context.Context) LoadResult {
	result := r.loader.Load(ctx)
	if ctx.Err() != nil {
		r.logger.Debug("pricing policy refresh cancelled", zap.Error(ctx.Err()))
		return result
	}
	r.holder.Store(result)
	r.logger.Debug("pricing policy refreshed", zap.String("origin", string(result.Origin)))
	return result
}
