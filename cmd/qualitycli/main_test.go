package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_EmptyCollectionExitsNonZero(t *testing.T) {
	r, w, err := os.Pipe()
	assert.NoError(t, err)
	defer r.Close()

	// An empty collection has zero maturity and zero completion, which sinks
	// the weighted health score below the §6.2 passing threshold.
	code := run(nil, w, w)
	w.Close()

	assert.Equal(t, 1, code)
}

func TestRun_UnknownFlagExitsOne(t *testing.T) {
	r, w, err := os.Pipe()
	assert.NoError(t, err)
	defer r.Close()
	defer w.Close()

	code := run([]string{"--no-such-flag"}, w, w)
	assert.Equal(t, 1, code)
}
