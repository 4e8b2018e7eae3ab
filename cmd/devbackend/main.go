// Command devbackend runs a local stand-in for the external REST API.
package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/partsadmin/internal/devbackend"
	"github.com/dmitrijs2005/partsadmin/internal/devbackend/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := devbackend.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
