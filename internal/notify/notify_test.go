// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package notify

import (
	"testing"
	"time"

	"github.com/matt-FFFFFF/listcache/internal/runbatch"
	"github.com/stretchr/testify/assert"
)

func TestNewMessageSuccess(t *testing.T) {
	br := &runbatch.BatchResult{
		State:       runbatch.StateSucceeded,
		CompletedAt: time.Date(2026, 8, 28, 3, 0, 0, 0, time.UTC),
	}

	m := NewMessage("ops@example.com", br)
	assert.Equal(t, "ops@example.com", m.Recipient)
	assert.Equal(t, "listcache OK 2026-08-28T03:00:00Z", m.Subject)
	assert.Empty(t, m.Body)
}

func TestNewMessageFailure(t *testing.T) {
	br := &runbatch.BatchResult{
		State:       runbatch.StateFailed,
		Failed:      &runbatch.Result{Label: "rhel-6.ini", ExitCode: 5},
		CompletedAt: time.Date(2026, 8, 28, 3, 5, 0, 0, time.UTC),
	}

	m := NewMessage("ops@example.com", br)
	assert.Equal(t, "listcache NG 2026-08-28T03:05:00Z", m.Subject)
}

func TestNewMessageNormalizesTimezone(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	br := &runbatch.BatchResult{
		State:       runbatch.StateSucceeded,
		CompletedAt: time.Date(2026, 8, 28, 12, 0, 0, 0, jst),
	}

	m := NewMessage("ops@example.com", br)
	assert.Equal(t, "listcache OK 2026-08-28T03:00:00Z", m.Subject)
}

func TestFormatMail(t *testing.T) {
	m := Message{
		Recipient: "ops@example.com",
		Subject:   "listcache OK 2026-08-28T03:00:00Z",
		Timestamp: time.Date(2026, 8, 28, 3, 0, 0, 0, time.UTC),
	}

	mail := string(formatMail("listcache@localhost", m))
	assert.Contains(t, mail, "From: listcache@localhost\r\n")
	assert.Contains(t, mail, "To: ops@example.com\r\n")
	assert.Contains(t, mail, "Subject: listcache OK 2026-08-28T03:00:00Z\r\n")
	assert.Contains(t, mail, "\r\n\r\n")
}

func TestNoopNotifier(t *testing.T) {
	assert.NoError(t, NoopNotifier{}.Send(Message{}))
}
