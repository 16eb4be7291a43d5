package http

import (
	"net/http"
	"time"

	"github.com/teamloft/teamloft/pkg/httpx"
	"github.com/teamloft/teamloft/pkg/workspacesdk"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe returning basic service health, uptime and version. Always 200 while the process is up.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	workspacesdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, workspacesdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
