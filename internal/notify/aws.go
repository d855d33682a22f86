package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"

	"github.com/winhire/interview-engine/internal/config"
	"github.com/winhire/interview-engine/internal/logger"
)

type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// ===============================
// SES
// ===============================

type SESNotifier struct {
	client SESService
	from   string
}

func NewSESNotifier(client SESService, from string) *SESNotifier {
	return &SESNotifier{client: client, from: from}
}

func (n *SESNotifier) Name() string { return "ses" }

func (n *SESNotifier) Notify(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return fmt.Errorf("ses: message %s has no recipient", msg.ID)
	}

	_, err := n.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &sestypes.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(msg.Subject)},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(msg.Body)},
			},
		},
		Source: aws.String(n.from),
	})
	if err != nil {
		return fmt.Errorf("ses send %s: %w", msg.ID, err)
	}
	return nil
}

// ===============================
// SNS
// ===============================

type SNSNotifier struct {
	client   SNSService
	topicARN string
}

func NewSNSNotifier(client SNSService, topicARN string) *SNSNotifier {
	return &SNSNotifier{client: client, topicARN: topicARN}
}

func (n *SNSNotifier) Name() string { return "sns" }

// Notify publishes the message as a JSON event; subscribers route on the
// "kind" attribute.
func (n *SNSNotifier) Notify(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(map[string]any{
		"id":         msg.ID,
		"kind":       msg.Kind,
		"subject":    msg.Subject,
		"attributes": msg.Attributes,
	})
	if err != nil {
		return fmt.Errorf("sns encode %s: %w", msg.ID, err)
	}

	attrs := make(map[string]snstypes.MessageAttributeValue, len(msg.Attributes))
	for k, v := range msg.Attributes {
		attrs[k] = snstypes.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(v),
		}
	}

	_, err = n.client.Publish(ctx, &sns.PublishInput{
		TopicArn:          aws.String(n.topicARN),
		Subject:           aws.String(msg.Subject),
		Message:           aws.String(string(payload)),
		MessageAttributes: attrs,
	})
	if err != nil {
		return fmt.Errorf("sns publish %s: %w", msg.ID, err)
	}
	return nil
}

// ===============================
// Log only
// ===============================

// LogNotifier records what would have been sent. It is the only channel
// when no outbound provider is configured.
type LogNotifier struct {
	log logger.Logger
}

func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Name() string { return "log" }

func (n *LogNotifier) Notify(_ context.Context, msg Message) error {
	n.log.Info("notification not sent: no provider configured", map[string]interface{}{
		"id":      msg.ID,
		"kind":    msg.Kind,
		"to":      msg.To,
		"subject": msg.Subject,
	})
	return nil
}

// ===============================
// Wiring
// ===============================

// Channels builds the notifiers enabled by cfg.
func Channels(ctx context.Context, cfg config.NotifyConfig, log logger.Logger) ([]Notifier, error) {
	if !cfg.EmailEnabled() && !cfg.SNSEnabled() {
		return []Notifier{NewLogNotifier(log)}, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.AWSRegion)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	var out []Notifier
	if cfg.EmailEnabled() {
		out = append(out, NewSESNotifier(ses.NewFromConfig(awsCfg), cfg.FromEmail))
	}
	if cfg.SNSEnabled() {
		out = append(out, NewSNSNotifier(sns.NewFromConfig(awsCfg), cfg.TopicARN))
	}
	return out, nil
}
