package sanitizer

import (
	"sort"
	"strings"
	"sync"
)

// Registry holds named rules and memoizes resolved rule sets. It is safe for
// concurrent use; any mutation invalidates the compiled-set cache.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
	order []string
	cache map[string][]Rule
}

// NewRegistry returns a registry seeded with the built-in rule set.
func NewRegistry() *Registry {
	r := &Registry{
		rules: make(map[string]Rule),
		cache: make(map[string][]Rule),
	}
	for _, rule := range builtinRules() {
		r.register(rule)
	}
	return r
}

// Register inserts the rule, overwriting any existing rule with the same name.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.register(rule)
	r.cache = make(map[string][]Rule)
}

func (r *Registry) register(rule Rule) {
	if _, exists := r.rules[rule.Name]; !exists {
		r.order = append(r.order, rule.Name)
	}
	r.rules[rule.Name] = rule
}

// Unregister removes the named rule. Removing an unknown name is a no-op.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rules[name]; !exists {
		return
	}
	delete(r.rules, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.cache = make(map[string][]Rule)
}

// Resolve looks up rules in the requested order, silently dropping unknown
// names. Results are memoized by the sorted name list, so the first requested
// order wins for a given name combination until the registry changes.
func (r *Registry) Resolve(names []string) []Rule {
	key := cacheKey(names)

	r.mu.RLock()
	if cached, ok := r.cache[key]; ok {
		r.mu.RUnlock()
		return cached
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	resolved := make([]Rule, 0, len(names))
	for _, name := range names {
		if rule, ok := r.rules[name]; ok {
			resolved = append(resolved, rule)
		}
	}
	r.cache[key] = resolved
	return resolved
}

// ListAll returns every registered rule in registration order.
func (r *Registry) ListAll() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rules := make([]Rule, 0, len(r.order))
	for _, name := range r.order {
		rules = append(rules, r.rules[name])
	}
	return rules
}

// ValidateNames reports every requested name missing from the registry.
// Unlike Resolve it is strict: configuration typos should fail loudly at
// startup instead of silently weakening the rule set.
func (r *Registry) ValidateNames(names []string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var missing []string
	for _, name := range names {
		if _, ok := r.rules[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

func cacheKey(names []string) string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}
