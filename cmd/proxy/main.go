// Command proxy runs the local customers proxy in front of the external
// REST API.
package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/partsadmin/internal/server"
	"github.com/dmitrijs2005/partsadmin/internal/server/config"
)

func main() {
	cfg := config.LoadConfig()

	app := server.NewApp(cfg)
	if err := app.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
