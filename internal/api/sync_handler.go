package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/lcsync/internal/api/shared"
	"github.com/phrazzld/lcsync/internal/platform/logger"
	"github.com/phrazzld/lcsync/internal/service"
)

// SyncHandler handles sync trigger requests.
type SyncHandler struct {
	syncService service.SyncService
	logger      *slog.Logger
}

// NewSyncHandler creates a new SyncHandler. svc should reject overlapping
// runs with service.ErrSyncInProgress (see service.Runner).
func NewSyncHandler(svc service.SyncService, logger *slog.Logger) *SyncHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SyncHandler{
		syncService: svc,
		logger:      logger.With(slog.String("component", "sync_handler")),
	}
}

// TriggerSync runs one sync and responds with its Result. The run keeps the
// request's values but not its cancellation: a client that disconnects does
// not stop a sync halfway through its writes.
func (h *SyncHandler) TriggerSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	if username, ok := shared.GetUsername(r.Context()); ok {
		log = log.With(slog.String("trigger_user", username))
	}
	ctx := logger.WithLogger(context.WithoutCancel(r.Context()), log)

	log.InfoContext(ctx, "sync triggered over HTTP")

	result, err := h.syncService.Run(ctx)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r.WithContext(ctx), MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// HealthResponse is the body of the health probe.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health reports that the process is serving.
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}
