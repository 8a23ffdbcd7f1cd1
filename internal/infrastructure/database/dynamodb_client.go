package database

import (
	"context"

	appconfig "escolha_divina/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates the DynamoDB client used by the checkout audit.
// A non-empty Endpoint points the client at DynamoDB Local.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.AuditConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewDynamoDBConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// NewDynamoDBConfig resolves credentials through the SDK default chain (env
// keys with session token, shared profile, Lambda/ECS role). Only a local
// Endpoint gets static credentials.
func NewDynamoDBConfig(ctx context.Context, cfg appconfig.AuditConfig) (aws.Config, error) {
	region := cfg.Region
	if region == "" {
		region = appconfig.DefaultAWSRegion
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	if cfg.Endpoint != "" {
		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		creds := credentials.NewStaticCredentialsProvider(
			valueOrDefault(cfg.AccessKeyID, appconfig.DefaultLocalAWSCredential),
			valueOrDefault(cfg.SecretAccessKey, appconfig.DefaultLocalAWSCredential),
			"",
		)
		loadOpts = append(loadOpts, config.WithCredentialsProvider(creds))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func valueOrDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
