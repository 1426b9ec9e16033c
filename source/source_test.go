// Copyright © 2025 The vhdlsem authors

package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanString(t *testing.T) {
	assert.Equal(t, "test.vhd:3:7", At("test.vhd", 3, 7).String())

	var s *Span
	assert.Equal(t, "<unknown>", s.String())
}
