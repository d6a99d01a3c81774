package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionString_LinkerValues(t *testing.T) {
	origVersion, origCommit := version, commit
	t.Cleanup(func() { version, commit = origVersion, origCommit })

	version, commit = "v1.2.3", "0123456789abcdef"
	assert.Equal(t, "v1.2.3+0123456789ab", versionString())

	version, commit = "v1.2.3", "abc"
	assert.Equal(t, "v1.2.3+abc", versionString())
}

func TestVersionString_NeverEmpty(t *testing.T) {
	origVersion, origCommit := version, commit
	t.Cleanup(func() { version, commit = origVersion, origCommit })

	version, commit = "", ""
	assert.NotEmpty(t, versionString())
}
