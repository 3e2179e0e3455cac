package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/saulo-duarte/codequiz-lambda/internal/config"
	"github.com/saulo-duarte/codequiz-lambda/internal/container"
)

type proxyHandler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// newHandler builds the router once per cold start and adapts it to API Gateway events.
func newHandler(ctx context.Context, cfg *config.Config) (proxyHandler, error) {
	c, err := container.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return chiadapter.New(c.Router()).ProxyWithContext, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Logger.WithError(err).Fatal("failed to load configuration")
	}
	config.InitLogger(cfg.LogLevel, cfg.LogFormat)

	handler, err := newHandler(context.Background(), cfg)
	if err != nil {
		config.Logger.WithError(err).Fatal("failed to build container")
	}

	lambda.Start(handler)
}
