package shared

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInList(t *testing.T) {
	assert.True(t, IsInList("markdown", []string{"markdown", "sarif"}))
	assert.False(t, IsInList("html", []string{"markdown", "sarif"}))
	assert.False(t, IsInList("markdown", nil))
}

func TestForEveryWithBoundedGoroutines(t *testing.T) {
	values := make([]int, 100)
	for i := range values {
		values[i] = i
	}

	var mu sync.Mutex
	seen := map[int]bool{}

	ForEveryWithBoundedGoroutines(5, values, func(i int, value int) {
		mu.Lock()
		defer mu.Unlock()
		seen[value] = true
	})

	assert.Len(t, seen, 100)
}

func TestForEveryWithBoundedGoroutinesEmptyInput(t *testing.T) {
	called := false
	ForEveryWithBoundedGoroutines(3, nil, func(i int, value string) {
		called = true
	})
	assert.False(t, called)
}
