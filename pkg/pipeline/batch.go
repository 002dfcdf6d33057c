// batch.go fans independent documents out over a worker pool. Documents share
// the immutable rule set and config but nothing mutable, so the only
// synchronization is starting and joining the batch.
package pipeline

import (
	"context"
	"runtime"
	"sync"

	"github.com/copyops/copycheck/pkg/doc"
	"github.com/copyops/copycheck/pkg/rules"
)

// ProcessBatch processes documents concurrently and returns results in input
// order. Cancellation is coarse-grained: a document's pipeline either runs to
// completion or is never started, so no partially rewritten paragraph can
// escape. Results for unstarted documents are nil, and the context error is
// returned alongside the partial results.
func ProcessBatch(ctx context.Context, docs []*doc.Document, rs *rules.RuleSet, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(docs))
	if len(docs) == 0 {
		return results, ctx.Err()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(docs) {
		workers = len(docs)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					return
				}
				results[i] = Process(docs[i], rs, cfg)
			}
		}()
	}

feed:
	for i := range docs {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results, ctx.Err()
}
