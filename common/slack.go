package common

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"cloud.google.com/go/pubsub"
)

// PubSub is the shared pubsub client, set at startup by the connection layer.
var PubSub *pubsub.Client

const slackMessengerTopic = "slack-messenger"

// PublishToSlack publishes a slack message payload to the slack-messenger
// topic. The messenger service relays it to the given internal channel.
func PublishToSlack(ctx context.Context, message map[string]interface{}, channel string) (*pubsub.PublishResult, error) {
	if PubSub == nil {
		return nil, errors.New("pubsub client is not initialized")
	}

	msgBytes, err := json.Marshal(message)
	if err != nil {
		return nil, err
	}

	topic := PubSub.Topic(slackMessengerTopic)
	res := topic.Publish(ctx, &pubsub.Message{
		Data: msgBytes,
		Attributes: map[string]string{
			"channel": channel,
		},
	})

	go func(ctx context.Context, publishResult *pubsub.PublishResult) {
		time.Sleep(1 * time.Second)

		msgID, err := publishResult.Get(ctx)
		if err != nil {
			log.Printf("unable to publish message. Caused by %s", err)
			return
		}

		log.Printf("Published message: %s", msgID)
	}(ctx, res)

	return res, nil
}
