// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"bytes"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger_Level(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv(LevelEnv, "debug")
	InitLoggerTo(&buf)

	log.WithField("day", 4).Debug("cache hit")
	assert.Regexp(t, `^\d{4}-\d\d-\d\d \d\d:\d\d:\d\d D cache hit day=4\n$`, buf.String())
}

func TestInitLogger_DefaultsToError(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv(LevelEnv, "")
	InitLoggerTo(&buf)

	log.Info("fetching")
	assert.Empty(t, buf.String())

	log.Error("boom")
	assert.Contains(t, buf.String(), " E boom")
}

func TestInitLogger_BadLevel(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv(LevelEnv, "chatty")
	InitLoggerTo(&buf)

	log.Warn("ignored")
	assert.Empty(t, buf.String())
}
