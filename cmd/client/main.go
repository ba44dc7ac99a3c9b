// Command client performs a one-shot call to the greeting endpoint of a
// running API server and prints the returned message.
package main

import (
	"context"
	"fmt"

	"github.com/ymatsuda/go-api-sample/internal/adapter"
	"github.com/ymatsuda/go-api-sample/internal/config"
	"github.com/ymatsuda/go-api-sample/internal/logger"
)

func main() {
	log := logger.NewLogger("api-client")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}

	client := adapter.NewHTTPClient(cfg.Client, log)

	greeting, err := client.Greet(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("error calling server")
	}

	fmt.Println(greeting.Message)
}
