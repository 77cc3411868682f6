// Package notify implements the reminder channels behind domain.Notifier.
package notify

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/runoshun/taskpad/internal/domain"
)

// New returns the notifier selected by cfg.Channel.
func New(cfg domain.NotifyConfig, executor domain.CommandExecutor, logger domain.Logger) (domain.Notifier, error) {
	switch cfg.Channel {
	case "", domain.ChannelLog:
		return &LogNotifier{logger: logger}, nil
	case domain.ChannelNone:
		return Discard{}, nil
	case domain.ChannelWhatsApp:
		return NewWhatsApp(cfg.Phone, cfg.Opener, executor)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownChannel, cfg.Channel)
	}
}

// WhatsApp opens a wa.me deep link carrying the reminder text.
// The opener is started and never waited on.
type WhatsApp struct {
	executor domain.CommandExecutor
	phone    string
	opener   string
}

// NewWhatsApp creates a WhatsApp notifier for the given phone number.
func NewWhatsApp(phone, opener string, executor domain.CommandExecutor) (*WhatsApp, error) {
	digits := phoneDigits(phone)
	if digits == "" {
		return nil, errors.New("notify.phone is required for the whatsapp channel")
	}
	if opener == "" {
		opener = domain.DefaultOpener
	}
	return &WhatsApp{executor: executor, phone: digits, opener: opener}, nil
}

// Link returns the deep link for a notification.
func (w *WhatsApp) Link(n domain.Notification) string {
	return "https://wa.me/" + w.phone + "?text=" + encodeComponent(n.Message())
}

// componentUnescaper turns query escaping into URI component escaping:
// spaces become %20 and !'()* stay literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// Send launches the opener on the deep link.
func (w *WhatsApp) Send(n domain.Notification) error {
	if err := w.executor.Start(domain.NewCommand(w.opener, []string{w.Link(n)}, "")); err != nil {
		return fmt.Errorf("start %s: %w", w.opener, err)
	}
	return nil
}

// phoneDigits strips everything but digits; wa.me takes the bare number.
func phoneDigits(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}

// LogNotifier writes the reminder to the log.
type LogNotifier struct {
	logger domain.Logger
}

// Send logs the reminder text.
func (l *LogNotifier) Send(n domain.Notification) error {
	if l.logger != nil {
		l.logger.Info("notify", n.Message())
	}
	return nil
}

// Discard drops every reminder.
type Discard struct{}

// Send does nothing.
func (Discard) Send(domain.Notification) error { return nil }

var (
	_ domain.Notifier = (*WhatsApp)(nil)
	_ domain.Notifier = (*LogNotifier)(nil)
	_ domain.Notifier = Discard{}
)
