package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/edupaylabs/edupay-backend/api/responses"
	"github.com/edupaylabs/edupay-backend/pkg/config"
	"github.com/edupaylabs/edupay-backend/pkg/db"
	pkgerrors "github.com/edupaylabs/edupay-backend/pkg/errors"
	"github.com/edupaylabs/edupay-backend/pkg/logger"
)

const readinessTimeout = 2 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Edupay-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Edupay-Env", cfg.App.Env)

		if dbP != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
			defer cancel()
			if err := dbP.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
