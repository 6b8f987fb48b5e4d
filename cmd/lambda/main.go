package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/mrled/suns/symaxis/internal/lambdahandlers/httpapi"
	"github.com/mrled/suns/symaxis/internal/logger"
)

func main() {
	log := logger.NewDefaultLogger()
	log = logger.WithExecutable(log, "lambda")
	logger.SetDefault(log)

	// Only httpapi exists today; the variable keeps deployments explicit
	handlerType := os.Getenv("LAMBDA_HANDLER")
	if handlerType == "" {
		handlerType = "httpapi"
	}

	log.Info("Starting Lambda handler", slog.String("handler", handlerType))

	switch handlerType {
	case "httpapi":
		handler, err := httpapi.NewHandler()
		if err != nil {
			log.Error("Failed to initialize httpapi handler", slog.String("error", err.Error()))
			os.Exit(1)
		}
		lambda.Start(handler.Handle)

	default:
		log.Error("Invalid LAMBDA_HANDLER value", slog.String("handler", handlerType))
		fmt.Fprintf(os.Stderr, "Error: Invalid LAMBDA_HANDLER value: %s\n", handlerType)
		fmt.Fprintln(os.Stderr, "Valid values: httpapi")
		os.Exit(1)
	}
}
