package services

import (
	"context"
	"log"
	"time"

	"placement-backend/internal/syncer"
)

const pushTimeout = 20 * time.Second

// pushAsync fires one best-effort push on its own goroutine. There is
// deliberately no queue and no ordering between pushes: a fast series
// of edits produces concurrent pushes and the last response to land
// wins on the remote side. Failures are logged and abandoned; the
// optimistic local write stands either way.
func pushAsync(g *syncer.Gateway, collection string, data any) {
	if g == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()
		if err := g.Push(ctx, collection, data); err != nil {
			log.Printf("sync: push %s failed: %v", collection, err)
		}
	}()
}
