package main

import (
	"fmt"
	"net/http"
)

// background runs fn outside the request lifecycle. A panic is logged
// instead of crashing the server, and run waits for pending tasks on
// shutdown.
func (app *application) background(fn func()) {
	app.wg.Add(1)

	go func() {
		defer app.wg.Done()
		defer func() {
			if err := recover(); err != nil {
				app.logger.Errorw("background task panicked", "error", fmt.Sprint(err))
			}
		}()

		fn()
	}()
}

// ExpireSubscriptions godoc
//
//	@Summary		Expire ended subscriptions
//	@Description	Moves live subscriptions past their end date to EXPIRED and cancels checkouts left pending for over a day.
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	map[string]int64
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/admin/subscriptions/expire [post]
func (app *application) expireSubscriptionsHandler(w http.ResponseWriter, r *http.Request) {
	expired, err := app.store.Subscriptions.ExpireEnded(r.Context(), app.clock())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.logger.Infow("expired subscriptions", "count", expired)
	app.jsonResponse(w, http.StatusOK, map[string]int64{"expired": expired})
}
