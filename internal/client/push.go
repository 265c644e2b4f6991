package client

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Pusher delivers mobile push notifications. Delivery is best-effort,
// callers log failures and move on.
type Pusher interface {
	Push(ctx context.Context, token, title, body string, data map[string]string) error
}

type firebasePusher struct {
	client *messaging.Client
}

func NewFirebasePusher(ctx context.Context, credentialsFile string) (*firebasePusher, error) {
	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot get messaging client: %w", err)
	}

	return &firebasePusher{client: client}, nil
}

func (p *firebasePusher) Push(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := p.client.Send(ctx, message); err != nil {
		return fmt.Errorf("cannot send notification: %w", err)
	}

	return nil
}
