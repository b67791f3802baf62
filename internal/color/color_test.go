// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorizeDisabled(t *testing.T) {
	old := enabled
	defer func() { enabled = old }()

	enabled = false
	assert.Equal(t, "hello", Colorize("hello", FgGreen))
}

func TestColorizeEnabled(t *testing.T) {
	old := enabled
	defer func() { enabled = old }()

	enabled = true
	assert.Equal(t, "\033[32mhello\033[0m", Colorize("hello", FgGreen))
}

func TestColorizeMultipleCodes(t *testing.T) {
	old := enabled
	defer func() { enabled = old }()

	enabled = true
	assert.Equal(t, "\033[1;31mNG\033[0m", Colorize("NG", Bold, FgRed))
}
