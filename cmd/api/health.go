package main

import (
	"context"
	"net/http"
	"time"
)

// HealthCheck godoc
//
//	@Summary		Health check
//	@Description	Reports the service version and whether the database answers.
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		503	{object}	map[string]string
//	@Security		BasicAuth
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]string{
		"status":  "ok",
		"env":     app.config.env,
		"version": version,
	}

	if app.pool != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := app.pool.Ping(ctx); err != nil {
			app.logger.Warnw("health check: database unreachable", "error", err)
			data["status"] = "degraded"
			app.jsonResponse(w, http.StatusServiceUnavailable, data)
			return
		}
	}

	app.jsonResponse(w, http.StatusOK, data)
}
