package di

import (
	"agenda/infras/otel"
	"agenda/transport/event"
	"agenda/transport/http"
)

// App holds the long-running parts of the service.
type App struct {
	HTTP     *http.HTTP
	Consumer *event.Consumer
	Otel     otel.Otel
}
