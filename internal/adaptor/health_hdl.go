package adaptor

import (
	"net/http"

	"movie-watchlist/internal/dto/response"
	"movie-watchlist/pkg/database"
	"movie-watchlist/pkg/utils"

	"go.uber.org/zap"
)

type HealthHandler struct {
	db     database.PgxIface
	config *utils.Config
	log    *zap.Logger
}

func NewHealthHandler(db database.PgxIface, config *utils.Config, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		config: config,
		log:    log.With(zap.String("handler", "health")),
	}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	dbState := "connected"
	if err := h.db.Ping(r.Context()); err != nil {
		h.log.Warn("Health check: database unreachable", zap.Error(err))
		dbState = "disconnected"
	}

	utils.ResponseJSON(w, http.StatusOK, true, "ok", response.HealthResponse{
		Status: "ok",
		DB:     dbState,
		Env:    h.config.App.Environment,
	}, nil)
}
