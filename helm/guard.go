package helm

import (
	"slices"
	"strconv"
	"strings"
)

const (
	// EnvDepth holds the dependency nesting depth of the current process.
	EnvDepth = "HELM_GIT_DEPENDENCY_DEPTH"

	// EnvMaxDepth holds the deepest nesting at which dependencies are updated.
	EnvMaxDepth = "HELM_GIT_DEPENDENCY_MAX_DEPTH"

	// EnvChain holds the comma-separated request keys being resolved by
	// parent processes.
	EnvChain = "HELM_GIT_DEPENDENCY_CHAIN"

	// DefaultMaxDepth allows dependency updates in the top-level request only.
	DefaultMaxDepth = 1
)

// Guard decides whether a dependency update may run.
type Guard struct {
	// Depth is the number of dependency updates above this process.
	Depth int

	// Max is the depth at which dependency updates stop.
	Max int

	// Chain holds the request keys of the URIs being resolved above this
	// process.
	Chain []string
}

// NewGuard builds a Guard from its environment representation.
func NewGuard(depth, max int, chain string) Guard {
	return Guard{Depth: depth, Max: max, Chain: ParseChain(chain)}
}

// ParseChain splits a comma-separated chain, dropping empty elements.
func ParseChain(chain string) []string {
	var keys []string
	for _, k := range strings.Split(chain, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// Allow reports whether the request identified by key may update its
// dependencies. It denies once Max is reached and when key is already being
// resolved further up the chain.
func (g Guard) Allow(key string) bool {
	if g.Depth >= g.Max {
		return false
	}
	return !slices.Contains(g.Chain, key)
}

// Child returns the guard handed to processes started while resolving key.
func (g Guard) Child(key string) Guard {
	chain := slices.Clone(g.Chain)
	if key != "" && !slices.Contains(chain, key) {
		chain = append(chain, key)
	}
	return Guard{Depth: g.Depth + 1, Max: g.Max, Chain: chain}
}

// Env returns the environment that carries the guard to a child process.
func (g Guard) Env() map[string]string {
	return map[string]string{
		EnvDepth:    strconv.Itoa(g.Depth),
		EnvMaxDepth: strconv.Itoa(g.Max),
		EnvChain:    strings.Join(g.Chain, ","),
	}
}
