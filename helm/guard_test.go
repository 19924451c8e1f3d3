package helm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuard_Allow(t *testing.T) {
	tests := []struct {
		name  string
		guard Guard
		key   string
		want  bool
	}{
		{"top level", Guard{Depth: 0, Max: 1}, "a", true},
		{"at max depth", Guard{Depth: 1, Max: 1}, "b", false},
		{"beyond max depth", Guard{Depth: 3, Max: 2}, "b", false},
		{"disabled", Guard{Depth: 0, Max: 0}, "a", false},
		{"cycle", Guard{Depth: 1, Max: 5, Chain: []string{"a", "b"}}, "a", false},
		{"deeper allowed", Guard{Depth: 1, Max: 5, Chain: []string{"a"}}, "b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.guard.Allow(tt.key))
		})
	}
}

func TestGuard_Child(t *testing.T) {
	parent := Guard{Depth: 0, Max: 3, Chain: []string{"a"}}

	child := parent.Child("b")
	assert.Equal(t, Guard{Depth: 1, Max: 3, Chain: []string{"a", "b"}}, child)
	assert.Equal(t, []string{"a"}, parent.Chain, "parent chain must not change")

	again := child.Child("b")
	assert.Equal(t, []string{"a", "b"}, again.Chain)
	assert.Equal(t, 2, again.Depth)
}

func TestGuard_EnvRoundTrip(t *testing.T) {
	g := Guard{Depth: 2, Max: 4, Chain: []string{"k1", "k2"}}

	env := g.Env()
	assert.Equal(t, map[string]string{
		EnvDepth:    "2",
		EnvMaxDepth: "4",
		EnvChain:    "k1,k2",
	}, env)

	assert.Equal(t, g, NewGuard(2, 4, env[EnvChain]))
}

func TestParseChain(t *testing.T) {
	assert.Nil(t, ParseChain(""))
	assert.Equal(t, []string{"a", "b"}, ParseChain(" a,,b ,"))
}

func TestGuard_NestedProcessesStopAtMax(t *testing.T) {
	top := NewGuard(0, DefaultMaxDepth, "")
	assert.True(t, top.Allow("root"))

	nested := top.Child("root")
	assert.False(t, nested.Allow("dep"), "default max allows one level")
	assert.False(t, nested.Allow("root"))
}
