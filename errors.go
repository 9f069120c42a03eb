package lexiloc

import "fmt"

// DictionaryError indicates a dictionary that could not be read or parsed.
type DictionaryError struct {
	Path    string
	Message string
	Cause   error
}

func (e *DictionaryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dictionary %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("dictionary %s: %s", e.Path, e.Message)
}

func (e *DictionaryError) Unwrap() error {
	return e.Cause
}

// FetchError indicates a source document that could not be retrieved.
type FetchError struct {
	URL        string
	StatusCode int
	Cause      error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a page cache operation failure.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// FillError indicates a gap-fill backend failure (API error, rate limit, etc.).
type FillError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *FillError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fill error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("fill error: %s", e.Message)
}

func (e *FillError) Unwrap() error {
	return e.Cause
}

// CountMismatchError indicates a gap-fill backend returned a different number
// of translations than phrases requested.
type CountMismatchError struct {
	Expected int
	Got      int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("fill count mismatch: expected %d, got %d", e.Expected, e.Got)
}
