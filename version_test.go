package barter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	defer func(c string) { GitCommit = c }(GitCommit)

	GitCommit = ""
	assert.Equal(t, "v0.1.0-dev", Version())

	GitCommit = "4a5f2e1"
	assert.Equal(t, "v0.1.0-dev 4a5f2e1", Version())
}
