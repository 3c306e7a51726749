package handler

import (
	"net/http"
	"sync"

	"agenda/config"
	"agenda/di"
	"agenda/shared/logger"
	"agenda/shared/timezone"

	"github.com/rs/zerolog/log"
)

var (
	app  *di.App
	once sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		if err := timezone.Init(cfg.App.Timezone); err != nil {
			log.Error().Err(err).Msg("Failed to load timezone, falling back to UTC")
		}

		app = di.InitializeService()
	})

	app.HTTP.ServeHTTP(w, r)
}
