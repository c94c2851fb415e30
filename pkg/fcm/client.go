// Package fcm sends notices to Firebase Cloud Messaging topics.
//
// The Firebase app and messaging client are built once by NewClient and
// injected wherever pushes are sent; nothing is initialised globally.
package fcm

import (
	"context"
	"fmt"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/aliskhannn/notice-pusher/internal/model"
)

type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// Client represents an FCM client used to broadcast notices to topic subscribers.
type Client struct {
	messaging messagingClient
	timeout   time.Duration // upper bound of a single send, 0 means none
}

// Credentials selects how the client authenticates. JSON wins over File; with
// neither set, application default credentials are used.
type Credentials struct {
	ProjectID string
	File      string
	JSON      string
}

// NewClient initialises a Firebase app and its messaging client.
func NewClient(ctx context.Context, creds Credentials, timeout time.Duration) (*Client, error) {
	var opts []option.ClientOption
	switch {
	case creds.JSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(creds.JSON)))
	case creds.File != "":
		opts = append(opts, option.WithCredentialsFile(creds.File))
	}

	var conf *firebase.Config
	if creds.ProjectID != "" {
		conf = &firebase.Config{ProjectID: creds.ProjectID}
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	mc, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init messaging client: %w", err)
	}

	return &Client{messaging: mc, timeout: timeout}, nil
}

// BuildMessage maps a notification message onto the FCM wire format.
func BuildMessage(msg model.NotificationMessage) *messaging.Message {
	data := make(map[string]string, len(msg.Data))
	for k, v := range msg.Data {
		data[k] = v
	}

	return &messaging.Message{
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data:  data,
		Topic: msg.Topic,
	}
}

// Send broadcasts msg to its topic and returns the FCM message name.
func (c *Client) Send(ctx context.Context, msg model.NotificationMessage) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	id, err := c.messaging.Send(ctx, BuildMessage(msg))
	if err != nil {
		return "", err
	}

	return id, nil
}
