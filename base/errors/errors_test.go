// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog1(t *testing.T) {
	assert.Equal(t, 12, Log1(strconv.Atoi("12")))
	assert.Equal(t, 0, Log1(strconv.Atoi("x")))
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("boom")
	assert.Equal(t, err, Log(err))
	assert.Equal(t, err, Warn(err, "knob", "size"))
}

func TestIsJoin(t *testing.T) {
	a, b := New("a"), New("b")
	err := Join(a, b)
	assert.True(t, Is(err, a))
	assert.True(t, Is(err, b))
	assert.False(t, Is(a, b))
}

func TestCallerInfo(t *testing.T) {
	info := func() string { return CallerInfo() }()
	assert.Contains(t, info, "errors_test.go")
}
