package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-content/internal/models"
)

// txRunner runs the unit of work in place and counts how often it was asked to.
type txRunner struct {
	calls atomic.Int64
}

func (r *txRunner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	r.calls.Add(1)
	return fn(ctx)
}

var testTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string {
	return &s
}

func newActor(username string) models.Actor {
	return models.Actor{UserID: uuid.New(), Username: username}
}
