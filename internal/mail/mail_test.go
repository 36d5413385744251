package mail

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"

	"github.com/Modular-CV/backend/internal/logging"
)

func TestNew_PicksLogMailerWithoutHost(t *testing.T) {
	m := New(SMTPConfig{}, logging.Discard())
	_, ok := m.(*LogMailer)
	assert.True(t, ok)
	assert.NoError(t, m.Send(context.Background(), Message{To: "a@test.com"}))

	m = New(SMTPConfig{Host: "smtp.test", Port: 25}, logging.Discard())
	_, ok = m.(*SMTPMailer)
	assert.True(t, ok)
}

func TestSMTPMailer_Send(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.test", Port: 587, User: "u", Pass: "p", Sender: "no-reply@test.com"})

	var raw bytes.Buffer
	m.deliver = func(_ context.Context, msg *gomail.Msg) error {
		_, err := msg.WriteTo(&raw)
		return err
	}

	err := m.Send(context.Background(), Message{To: "alice@test.com", Subject: "Hi", Body: "hello"})
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "From: <no-reply@test.com>")
	assert.Contains(t, raw.String(), "To: <alice@test.com>")
	assert.Contains(t, raw.String(), "Subject: Hi")
	assert.Contains(t, raw.String(), "hello")
}

func TestSMTPMailer_EncodesNonASCIISubject(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.test", Port: 25, Sender: "no-reply@test.com"})

	var raw bytes.Buffer
	m.deliver = func(_ context.Context, msg *gomail.Msg) error {
		_, err := msg.WriteTo(&raw)
		return err
	}

	require.NoError(t, m.Send(context.Background(), Message{To: "alice@test.com", Subject: "Lebenslauf für Jürgen", Body: "hallo"}))
	assert.Contains(t, raw.String(), "=?UTF-8?")
	assert.NotContains(t, raw.String(), "Lebenslauf für Jürgen")
}

func TestSMTPMailer_SendErrors(t *testing.T) {
	delivered := false
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.test", Port: 25, Sender: "no-reply@test.com"})
	m.deliver = func(context.Context, *gomail.Msg) error {
		delivered = true
		return errors.New("relay denied")
	}

	err := m.Send(context.Background(), Message{To: "alice@test.com"})
	assert.ErrorContains(t, err, "relay denied")
	assert.True(t, delivered)

	delivered = false
	err = m.Send(context.Background(), Message{To: "not an address"})
	assert.ErrorContains(t, err, "mail recipient")
	assert.False(t, delivered)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Send(ctx, Message{To: "alice@test.com"}), context.Canceled)
	assert.False(t, delivered)
}

func TestVerificationMessage(t *testing.T) {
	msg := VerificationMessage("Modular CV", "https://cv.test/", "alice@test.com", "tok123")

	assert.Equal(t, "alice@test.com", msg.To)
	assert.Equal(t, "Modular CV - Please Verify Your Email Address", msg.Subject)
	assert.Contains(t, msg.Body, "https://cv.test/accounts/verify/tok123")
}
