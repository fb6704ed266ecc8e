// Package observability provides the CloudWatch-backed metrics recorder.
package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// CloudWatchAPI is the subset of the CloudWatch client the recorder needs.
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Metrics publishes counters to CloudWatch. Publication is best-effort: a
// failed PutMetricData is logged and otherwise ignored so metrics can never
// fail a request.
type Metrics struct {
	namespace string
	client    CloudWatchAPI
	logger    *zap.Logger
}

// NewMetrics creates a metrics recorder for the given namespace.
func NewMetrics(namespace string, client CloudWatchAPI, logger *zap.Logger) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
		logger:    logger,
	}
}

// Count increments a count metric by one.
func (m *Metrics) Count(ctx context.Context, name string) {
	if m == nil || m.client == nil {
		return
	}

	_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String(name),
				Unit:       types.StandardUnitCount,
				Value:      aws.Float64(1),
				Timestamp:  aws.Time(time.Now()),
			},
		},
	})
	if err != nil {
		m.logger.Warn("Failed to publish metric",
			zap.String("metric", name),
			zap.String("namespace", m.namespace),
			zap.Error(err),
		)
	}
}
