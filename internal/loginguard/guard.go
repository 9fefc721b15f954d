// Package loginguard rate-limits failed login attempts per identity over a
// sliding window.
package loginguard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/prepdeck/prepdeck/internal/metrics"
)

const (
	// Window is the default sliding window over which failed attempts count.
	Window = 15 * time.Minute

	// MaxAttempts is the default number of failed attempts allowed within
	// the window.
	MaxAttempts = 5
)

// Policy holds the sliding-window parameters.
type Policy struct {
	Window      time.Duration
	MaxAttempts int
}

// DefaultPolicy returns the standard policy: 5 attempts per 15 minutes.
func DefaultPolicy() Policy {
	return Policy{Window: Window, MaxAttempts: MaxAttempts}
}

// Decision is the outcome of a rate-limit check.
type Decision struct {
	Allowed   bool
	Remaining int
	ResetAt   *time.Time
}

// NormalizeIdentity canonicalizes an identity for storage and lookup.
// Email identities are matched case-insensitively.
func NormalizeIdentity(identity string) string {
	return strings.ToLower(strings.TrimSpace(identity))
}

// Check evaluates the sliding-window limit against an attempt history.
// It is pure: pruning the persisted history is the repository's concern.
// An attempt exactly Window old is expired; only strictly newer ones count.
func (p Policy) Check(now time.Time, history []time.Time) Decision {
	var live []time.Time
	for _, at := range history {
		if at.After(now) {
			continue
		}
		if now.Sub(at) < p.Window {
			live = append(live, at)
		}
	}

	if len(live) >= p.MaxAttempts {
		oldest := live[0]
		for _, at := range live[1:] {
			if at.Before(oldest) {
				oldest = at
			}
		}
		resetAt := oldest.Add(p.Window)
		return Decision{Allowed: false, Remaining: 0, ResetAt: &resetAt}
	}

	return Decision{Allowed: true, Remaining: p.MaxAttempts - len(live)}
}

// CheckLimit evaluates the default policy against an attempt history.
func CheckLimit(now time.Time, history []time.Time) Decision {
	return DefaultPolicy().Check(now, history)
}

// AttemptRepository defines persistence operations for attempt histories.
type AttemptRepository interface {
	History(ctx context.Context, identity string) ([]time.Time, error)
	Append(ctx context.Context, identity string, at time.Time) error
	Clear(ctx context.Context, identity string) error
}

// Guard applies the sliding-window limit on top of an AttemptRepository.
type Guard struct {
	repo     AttemptRepository
	policy   Policy
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewGuard creates a Guard. now may be nil, in which case time.Now is used.
func NewGuard(repo AttemptRepository, policy Policy, recorder *metrics.Recorder, logger *slog.Logger, now func() time.Time) *Guard {
	if policy.Window <= 0 || policy.MaxAttempts <= 0 {
		policy = DefaultPolicy()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Guard{
		repo:     repo,
		policy:   policy,
		recorder: recorder,
		logger:   logger,
		now:      now,
	}
}

// Check decides whether a login attempt for the identity is allowed.
// If the attempt history cannot be read the guard fails open: locking out
// legitimate users during a storage outage is worse than letting a few
// extra attempts through.
func (g *Guard) Check(ctx context.Context, identity string) Decision {
	normalized := NormalizeIdentity(identity)

	history, err := g.repo.History(ctx, normalized)
	if err != nil {
		g.logger.Warn("login attempt history unavailable, failing open",
			"identity", normalized, "error", err)
		if g.recorder != nil {
			g.recorder.Incr("loginguard.fail_open")
		}
		return Decision{Allowed: true, Remaining: g.policy.MaxAttempts}
	}

	decision := g.policy.Check(g.now(), history)
	if !decision.Allowed && g.recorder != nil {
		g.recorder.Incr("loginguard.blocked")
	}
	return decision
}

// RecordFailure records a failed login attempt for the identity.
func (g *Guard) RecordFailure(ctx context.Context, identity string) error {
	normalized := NormalizeIdentity(identity)
	if err := g.repo.Append(ctx, normalized, g.now()); err != nil {
		return fmt.Errorf("repo.Append(%s) > %w", normalized, err)
	}
	return nil
}

// Reset clears the attempt history for the identity. Called after a
// successful authentication.
func (g *Guard) Reset(ctx context.Context, identity string) error {
	normalized := NormalizeIdentity(identity)
	if err := g.repo.Clear(ctx, normalized); err != nil {
		return fmt.Errorf("repo.Clear(%s) > %w", normalized, err)
	}
	return nil
}
