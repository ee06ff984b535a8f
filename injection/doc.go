// Package injection provides a minimal typed injection registry.
//
// A Key carries a value type and a default value. Values is a small
// value-semantics container that maps keys to overrides; reading a key that
// has no override yields the key's default. Consumers that hold a Values can
// expose read-only Injection bindings that re-resolve on every read.
//
// # Keys
//
//	var Timeout = injection.NewKey("timeout", 30*time.Second)
//	var Now = injection.NewComputedKey("now", time.Now)
//
// # Overrides
//
//	values := injection.New()
//	injection.Set(&values, Timeout, 5*time.Second)
//	injection.SetFunc(&values, Now, fixedClock)
//	timeout := injection.Get(values, Timeout)
//	injection.ResetToDefault(&values, Timeout)
//
// # Bindings
//
//	type Client struct {
//	    injection injection.Values
//	}
//
//	func (c *Client) Injection() injection.Values { return c.injection }
//
//	var clientTimeout = injection.Inject(Timeout)
//
//	func (c *Client) Timeout() time.Duration { return clientTimeout.Get(c) }
//
// Values is copied on assignment. Mutating a copy never affects the original
// and the other way round, so handing a copy to a new owner isolates it.
// Values performs no locking; callers sharing one Values across goroutines
// must synchronize Set and ResetToDefault themselves.
package injection
