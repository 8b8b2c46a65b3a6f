package resilience

import "sync"

// SingleFlight deduplicates concurrent calls for the same key: callers that
// arrive while a call is running wait for it and share its result.
type SingleFlight struct {
	mu    sync.Mutex
	calls map[string]*call
}

type call struct {
	wg   sync.WaitGroup
	val  any
	err  error
	dups int
}

func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call)
	}

	if c, ok := g.calls[key]; ok {
		c.dups++
		g.mu.Unlock()
		c.wg.Wait()
		return c.val, c.err, true
	}

	c := &call{}
	c.wg.Add(1)
	g.calls[key] = c
	g.mu.Unlock()

	g.run(key, c, fn)

	return c.val, c.err, c.dups > 0
}

// Forget drops an in-flight key so the next Do starts a fresh call. Used after
// writes so a load that started before the write is not handed to new callers.
func (g *SingleFlight) Forget(key string) {
	g.mu.Lock()
	delete(g.calls, key)
	g.mu.Unlock()
}

func (g *SingleFlight) run(key string, c *call, fn func() (any, error)) {
	defer func() {
		g.mu.Lock()
		if g.calls[key] == c {
			delete(g.calls, key)
		}
		g.mu.Unlock()
		c.wg.Done()
	}()

	c.val, c.err = fn()
}
