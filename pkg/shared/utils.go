package shared

import (
	"github.com/spf13/pflag"
)

// HasFlags reports whether any flag in the set was explicitly changed on the command line.
func HasFlags(flags *pflag.FlagSet) bool {
	changed := false
	flags.Visit(func(f *pflag.Flag) {
		changed = true
	})
	return changed
}

// IsInList checks if a value is present in a list of strings.
func IsInList(value string, list []string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// ForEveryWithBoundedGoroutines runs f for every value with at most limit
// goroutines in flight and waits for all of them to finish.
func ForEveryWithBoundedGoroutines[T any](limit int, values []T, f func(i int, value T)) {
	if limit < 1 {
		limit = 1
	}
	guard := make(chan struct{}, limit)
	done := make(chan struct{})
	for i, value := range values {
		guard <- struct{}{} // would block if guard channel is already filled
		go func(i int, value T) {
			f(i, value)
			<-guard
			done <- struct{}{}
		}(i, value)
	}
	for range values {
		<-done
	}
}
