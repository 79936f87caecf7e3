package codec

import "sync/atomic"

// CancelToken is cooperative cancellation threaded explicitly through codec
// calls (REDESIGN FLAGS, spec §9), replacing a bare global stopExecution()
// poll with an object callers construct and pass in.
type CancelToken struct {
	flag atomic.Bool
}

// NewCancelToken returns a token in the not-cancelled state.
func NewCancelToken() *CancelToken { return &CancelToken{} }

// Cancel requests cancellation. Safe to call from any goroutine.
func (c *CancelToken) Cancel() {
	if c != nil {
		c.flag.Store(true)
	}
}

// Cancelled reports whether cancellation has been requested. A nil token is
// never cancelled, so codecs can accept nil for "run to completion".
func (c *CancelToken) Cancelled() bool {
	return c != nil && c.flag.Load()
}
