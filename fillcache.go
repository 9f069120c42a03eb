package lexiloc

import "context"

// CachedFiller wraps a GapFiller with per-phrase result caching. Each
// translated phrase is stored under CacheKey(HashText(phrase), targetLang),
// so repeated runs only send phrases the cache has never seen to the backend.
type CachedFiller struct {
	filler GapFiller
	cache  PageCache
}

// NewCachedFiller creates a gap filler that consults cache before delegating.
func NewCachedFiller(filler GapFiller, cache PageCache) *CachedFiller {
	return &CachedFiller{
		filler: filler,
		cache:  cache,
	}
}

// Fill returns cached translations where available and delegates the rest to
// the wrapped filler in a single batch, preserving request order. Fresh
// results are written back to the cache; cache write errors are ignored.
func (f *CachedFiller) Fill(ctx context.Context, req FillRequest) ([]string, error) {
	results := make([]string, len(req.Phrases))

	var missing []string
	var missingIdx []int
	for i, phrase := range req.Phrases {
		if v, ok := f.cache.Get(CacheKey(HashText(phrase), req.TargetLang)); ok && v != "" {
			results[i] = v
			continue
		}
		missing = append(missing, phrase)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		return results, nil
	}

	filled, err := f.filler.Fill(ctx, FillRequest{
		Phrases:    missing,
		TargetLang: req.TargetLang,
		SourceLang: req.SourceLang,
	})
	if err != nil {
		return nil, err
	}
	if len(filled) != len(missing) {
		return nil, &CountMismatchError{Expected: len(missing), Got: len(filled)}
	}

	for j, i := range missingIdx {
		results[i] = filled[j]
		_ = f.cache.Set(CacheKey(HashText(req.Phrases[i]), req.TargetLang), filled[j])
	}
	return results, nil
}

// Verify CachedFiller implements GapFiller
var _ GapFiller = (*CachedFiller)(nil)
