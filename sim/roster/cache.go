package roster

// Cache memoizes resolved leagues by spec path. It replaces module-level
// load memoization with an object that has an explicit lifecycle: construct
// one per process (or per test) and never share it implicitly.
//
// Thread-safety: NOT thread-safe, matching the single-threaded simulation
// core it feeds.
type Cache struct {
	leagues map[string]*League
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{leagues: make(map[string]*League)}
}

// Load returns the resolved league for a spec path, loading and resolving
// it on first use. Repeated calls with the same path return the identical
// *League.
func (c *Cache) Load(path string) (*League, error) {
	if league, ok := c.leagues[path]; ok {
		return league, nil
	}
	spec, err := LoadLeagueSpec(path)
	if err != nil {
		return nil, err
	}
	league, err := Resolve(spec)
	if err != nil {
		return nil, err
	}
	c.leagues[path] = league
	return league, nil
}

// Invalidate drops a cached entry so the next Load re-reads the file.
func (c *Cache) Invalidate(path string) {
	delete(c.leagues, path)
}
