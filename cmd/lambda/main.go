package main

import (
	"context"
	"findata/cmd"
	"findata/internal/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
)

type lambdaHandler struct {
	ginLambda *ginadapter.GinLambda
}

func (m lambdaHandler) Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.FromContext(ctx).Infof("%s %s", req.HTTPMethod, req.Path)
	return m.ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	ctx := context.Background()
	deps, err := cmd.InitializeDependencies(ctx)
	if err != nil {
		logger.FromContext(ctx).Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	handler := lambdaHandler{
		ginLambda: ginadapter.New(deps.ApiHandler.InitializeRouterEngine()),
	}
	lambda.Start(handler.Handler)
}
