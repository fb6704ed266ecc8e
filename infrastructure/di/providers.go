package di

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
	"go.uber.org/zap"

	"hmaas-backend/application/ports"
	"hmaas-backend/application/services"
	"hmaas-backend/infrastructure/config"
	"hmaas-backend/infrastructure/messaging/eventbridge"
	"hmaas-backend/infrastructure/persistence/dynamodb"
	"hmaas-backend/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration. When tracing is enabled every
// AWS client built from it is instrumented with X-Ray.
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return aws.Config{}, err
	}
	if cfg.EnableTracing {
		awsv2.AWSV2Instrumentor(&awsCfg.APIOptions)
	}
	return awsCfg, nil
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideItemRepository creates the item repository
func ProvideItemRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ItemRepository {
	return dynamodb.NewItemRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideCategoryRepository creates the category repository
func ProvideCategoryRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.CategoryRepository {
	return dynamodb.NewCategoryRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideEventPublisher creates the EventBridge event publisher
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideMetrics creates the CloudWatch metrics recorder
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) ports.MetricsRecorder {
	namespace := fmt.Sprintf("Hmaas/%s", cfg.Environment)
	return observability.NewMetrics(namespace, client, logger)
}

// ProvideItemService creates the item service
func ProvideItemService(
	repo ports.ItemRepository,
	events ports.EventPublisher,
	metrics ports.MetricsRecorder,
	logger *zap.Logger,
) *services.ItemService {
	return services.NewItemService(repo, events, metrics, logger)
}

// ProvideCategoryService creates the category service
func ProvideCategoryService(
	repo ports.CategoryRepository,
	events ports.EventPublisher,
	metrics ports.MetricsRecorder,
	logger *zap.Logger,
) *services.CategoryService {
	return services.NewCategoryService(repo, events, metrics, logger)
}
