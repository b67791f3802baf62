// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package notify

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"
	"time"
)

// ErrSendMail is returned when the mail could not be handed to the relay.
var ErrSendMail = errors.New("could not send mail")

// SMTPNotifier sends the status message through a mail relay, usually the
// local MTA on localhost:25.
type SMTPNotifier struct {
	Addr   string // host:port of the relay
	Sender string // envelope sender
}

// Send implements the Notifier interface.
func (s *SMTPNotifier) Send(m Message) error {
	msg := formatMail(s.Sender, m)

	if err := smtp.SendMail(s.Addr, nil, s.Sender, []string{m.Recipient}, msg); err != nil {
		return errors.Join(ErrSendMail, err)
	}

	return nil
}

func formatMail(sender string, m Message) []byte {
	sb := strings.Builder{}

	fmt.Fprintf(&sb, "From: %s\r\n", sender)
	fmt.Fprintf(&sb, "To: %s\r\n", m.Recipient)
	fmt.Fprintf(&sb, "Subject: %s\r\n", m.Subject)
	fmt.Fprintf(&sb, "Date: %s\r\n", m.Timestamp.Format(time.RFC1123Z))
	sb.WriteString("\r\n")
	sb.WriteString(m.Body)

	return []byte(sb.String())
}
