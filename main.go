package main

import (
	"context"

	"lumina/config"
	"lumina/di"
	"lumina/logger"
	"lumina/models"
	"lumina/util"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	container, err := di.NewContainer(cfg, log)
	if err != nil {
		log.Fatalf("[MAIN] %v", err)
	}
	defer container.Close()

	ctx := context.Background()
	if err := container.PreferencesStore.Init(ctx); err != nil {
		log.Warnf("[MAIN] Preferences hydrated with errors: %v", err)
	}

	if cfg.Env != config.ENV_PROD {
		city := container.PreferencesStore.SelectedCity()
		venues, err := container.LuminaAPI.GetVenues(ctx, models.ListParams{City: city, Limit: config.LUMINA_VENUES_LIMIT})
		if err != nil {
			log.Warnf("[MAIN] Fixture venues unavailable: %v", err)
		} else {
			util.PrintVenuesPartially(venues)
		}
	}

	if cfg.ChatRoom != "" {
		container.ChatPollerService.OnMessages(func(room string, msgs []models.ChatMessage) {
			log.Debugf("[MAIN] %d messages in %s", len(msgs), room)
		})
		container.ChatPollerService.StartPeriodicJob(cfg.ChatRoom, cfg.ChatPollInterval)
	}

	if err := container.LuminaHttpServer.Start(); err != nil {
		log.Errorf("[MAIN] Server stopped: %v", err)
	}
}
