// Package eventbridge implements the EventPublisher port on AWS EventBridge.
package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"

	"hmaas-backend/application/ports"
	"hmaas-backend/domain"
)

// EventBridgeAPI is the subset of the EventBridge client the publisher uses.
type EventBridgeAPI interface {
	PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error)
}

// Publisher sends domain events to an EventBridge bus. When no bus name is
// configured the publisher is a warning no-op, so environments without a bus
// still run.
type Publisher struct {
	client       EventBridgeAPI
	eventBusName string
	source       string
	logger       *zap.Logger
}

// NewPublisher creates an EventBridge publisher for the given bus.
func NewPublisher(client EventBridgeAPI, eventBusName string, logger *zap.Logger) ports.EventPublisher {
	return &Publisher{
		client:       client,
		eventBusName: eventBusName,
		source:       domain.SourceAPI,
		logger:       logger,
	}
}

// Publish sends a single event. The returned error is informational: callers
// treat publication as best-effort and must not fail their operation on it.
func (p *Publisher) Publish(ctx context.Context, eventType string, payload any) error {
	if p.eventBusName == "" {
		p.logger.Warn("Event bus name not configured, skipping event publication",
			zap.String("eventType", eventType),
		)
		return nil
	}

	detail, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("Failed to marshal event payload",
			zap.String("eventType", eventType),
			zap.Error(err),
		)
		return err
	}

	out, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{
			{
				EventBusName: aws.String(p.eventBusName),
				Source:       aws.String(p.source),
				DetailType:   aws.String(eventType),
				Detail:       aws.String(string(detail)),
			},
		},
	})
	if err != nil {
		p.logger.Error("Failed to publish event",
			zap.String("eventType", eventType),
			zap.String("eventBus", p.eventBusName),
			zap.Error(err),
		)
		return err
	}

	if out.FailedEntryCount > 0 {
		for _, entry := range out.Entries {
			if entry.ErrorCode != nil {
				p.logger.Error("Event entry rejected by EventBridge",
					zap.String("eventType", eventType),
					zap.String("errorCode", aws.ToString(entry.ErrorCode)),
					zap.String("errorMessage", aws.ToString(entry.ErrorMessage)),
				)
			}
		}
		return fmt.Errorf("%d event entries failed to publish", out.FailedEntryCount)
	}

	p.logger.Info("Published event",
		zap.String("eventType", eventType),
		zap.String("eventBus", p.eventBusName),
	)
	return nil
}
