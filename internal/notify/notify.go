// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package notify delivers the operator-facing batch status message.
//
// The message is a status signal, not a diagnostic: a fixed product name, an
// OK/NG token and the completion timestamp in the subject line, with an
// empty body. Operators investigate through the logs. Delivery is
// fire-and-forget and must never change the batch's exit code.
package notify

import (
	"fmt"
	"time"

	"github.com/matt-FFFFFF/listcache/internal/runbatch"
)

// Product is the fixed product name used in the subject line.
const Product = "listcache"

// Status tokens in the subject line.
const (
	StatusOK = "OK"
	StatusNG = "NG"
)

// Message is the operator notification. It is derived solely from the
// batch result, write-once, sent once.
type Message struct {
	Recipient string
	Subject   string
	Body      string
	Timestamp time.Time
}

// NewMessage builds the notification for a finished batch.
func NewMessage(recipient string, br *runbatch.BatchResult) Message {
	token := StatusNG
	if br.Succeeded() {
		token = StatusOK
	}

	ts := br.CompletedAt.UTC()

	return Message{
		Recipient: recipient,
		Subject:   fmt.Sprintf("%s %s %s", Product, token, ts.Format(time.RFC3339)),
		Timestamp: ts,
	}
}

// Notifier is the interface for sending notifications.
type Notifier interface {
	Send(m Message) error
}

// NoopNotifier does nothing. It is used when no recipient is configured.
type NoopNotifier struct{}

// Send implements the Notifier interface.
func (NoopNotifier) Send(Message) error { return nil }
