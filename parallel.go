package lexiloc

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// GenerateAll localizes doc for every target language concurrently. The
// automaton is immutable after construction, so it is shared across
// goroutines; each language gets its own translation map and output buffer
// and needs no locking.
//
// Languages whose stored source hash matches the current document are
// skipped and absent from the result map. The first error cancels the
// remaining generations.
func (l *Localizer) GenerateAll(ctx context.Context, doc string, targets []Target) (map[string]*LocalizedPage, error) {
	g, ctx := errgroup.WithContext(ctx)
	pages := make([]*LocalizedPage, len(targets))

	for i, tgt := range targets {
		i, tgt := i, tgt
		g.Go(func() error {
			if !l.NeedsUpdate(tgt.Lang, doc) {
				return nil
			}

			dict := tgt.Dict
			if l.filler != nil {
				filled, err := l.FillGaps(ctx, tgt.Lang, dict)
				if err != nil {
					return fmt.Errorf("filling gaps for %s: %w", tgt.Lang, err)
				}
				dict = filled
			}

			page, err := l.LocalizePage(dict, doc)
			if err != nil {
				return fmt.Errorf("localizing %s: %w", tgt.Lang, err)
			}
			pages[i] = page

			_ = l.MarkGenerated(tgt.Lang, doc) // Ignore cache set errors
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*LocalizedPage, len(targets))
	for i, tgt := range targets {
		if pages[i] != nil {
			out[tgt.Lang] = pages[i]
		}
	}
	return out, nil
}
