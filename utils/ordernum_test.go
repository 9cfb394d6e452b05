package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^TX-\d{6}-\d{4}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, GenerateOrderNumber())
	}
}

func TestGenerateOrderNumberVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[GenerateOrderNumber()] = true
	}
	// The random suffix alone gives 10000 values; 50 draws colliding
	// down to a handful would mean the generator is broken.
	assert.Greater(t, len(seen), 40)
}
