package main

import (
	"context"

	"github.com/sacandaga/calendarr/internal/app"
	log "github.com/sirupsen/logrus"
)

func main() {
	application, err := app.New()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize application")
	}

	if err := application.Run(context.Background()); err != nil {
		log.WithError(err).Fatal("Application exited with error")
	}
}
