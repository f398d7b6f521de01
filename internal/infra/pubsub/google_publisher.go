package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"bezgo/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// GoogleOptions tunes how the Google Pub/Sub client connects
type GoogleOptions struct {
	// Endpoint overrides the API endpoint, e.g. an emulator at "localhost:8085".
	// Requests to a custom endpoint are sent without authentication.
	Endpoint string

	// CredentialsPath points at a service account JSON file
	CredentialsPath string
}

func (o GoogleOptions) clientOptions() []option.ClientOption {
	var opts []option.ClientOption
	if o.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(o.Endpoint), option.WithoutAuthentication())
	}
	if o.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(o.CredentialsPath))
	}

	return opts
}

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, opts GoogleOptions, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID, opts.clientOptions()...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishLifecycleEvent publishes an event to Google Pub/Sub
func (p *googlePubSubPublisher) PublishLifecycleEvent(ctx context.Context, event *service.LifecycleEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
		// One ordering key per lifecycle keeps its stages in order.
		OrderingKey: event.LifecycleID,
	}

	p.logger.Debug("[GooglePubSub] Publishing event",
		slog.String("lifecycle_id", event.LifecycleID),
		slog.String("stage", event.Stage),
	)

	result := p.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed publish pauses its ordering key until resumed.
		p.publisher.ResumePublish(event.LifecycleID)

		return errors.WithStack(err)
	}

	p.logger.Debug("[GooglePubSub] Event published successfully",
		slog.String("lifecycle_id", event.LifecycleID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
