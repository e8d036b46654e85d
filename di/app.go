package di

import (
	"booking-api/internal/scheduler"
	"booking-api/transport/http"

	"github.com/rs/zerolog/log"
)

// App bundles the HTTP server and the reminder scheduler so both come up
// from one injector.
type App struct {
	HTTP     *http.HTTP
	Reminder scheduler.Reminder
}

func newApp(h *http.HTTP, reminder scheduler.Reminder) *App {
	return &App{
		HTTP:     h,
		Reminder: reminder,
	}
}

// Run starts the reminder scheduler and then serves HTTP until the process
// is told to stop.
func (a *App) Run() {
	if err := a.Reminder.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start reminder scheduler")
	}

	a.HTTP.Serve()
}
