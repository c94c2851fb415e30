// Package email broadcasts notices to mailing lists over SMTP.
package email

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/mail.v2"

	"github.com/aliskhannn/notice-pusher/internal/model"
)

type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
	lists    map[string]string // topic -> list address

	send func(m *mail.Message) error
}

func NewClient(smtpHost string, smtpPort int, username, password, from string, lists map[string]string) *Client {
	c := &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
		lists:    lists,
	}
	c.send = c.dialAndSend

	return c
}

// Send mails the notice to the list subscribed to the message topic and
// returns the generated Message-ID.
func (c *Client) Send(ctx context.Context, msg model.NotificationMessage) (string, error) {
	to, ok := c.lists[msg.Topic]
	if !ok {
		return "", fmt.Errorf("no mailing list for topic %q", msg.Topic)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	messageID := fmt.Sprintf("<%s@notice-pusher>", uuid.NewString())

	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", msg.Title)
	message.SetHeader("Message-ID", messageID)
	for k, v := range msg.Data {
		message.SetHeader("X-Notice-"+k, v)
	}

	message.SetBody("text/plain", msg.Body)

	if err := c.send(message); err != nil {
		return "", fmt.Errorf("send mail: %w", err)
	}

	return messageID, nil
}

func (c *Client) dialAndSend(m *mail.Message) error {
	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)

	return dialer.DialAndSend(m)
}
