package server

import (
	"io"
	"net/http"

	"carbid/internal/auctionerrors"
	"carbid/internal/auth"
	"carbid/internal/fanout"
	"carbid/utils"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
)

// SSEVehicleHandler streams auction updates (top-updated, closed) for one
// vehicle over a long-lived server-sent-events connection.
func SSEVehicleHandler(hub *fanout.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		streamChannel(c, hub, fanout.VehicleChannel(c.Param("vehicle_id")))
	}
}

// SSEUserHandler streams the authenticated caller's personal notifications.
func SSEUserHandler(hub *fanout.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := auth.IdentityFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthorized, "authentication required")
			return
		}
		streamChannel(c, hub, fanout.UserChannel(identity.UserID))
	}
}

// streamChannel subscribes the connection to a fan-out channel and relays
// events until the client disconnects. Delivery is best-effort: events
// published while the client is absent are simply missed.
func streamChannel(c *gin.Context, hub *fanout.Hub, channel string) {
	events, cancel := hub.Subscribe(channel)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	// Opening ping so clients know the stream is live.
	if err := sse.Encode(c.Writer, sse.Event{Event: "ping", Data: gin.H{}}); err != nil {
		return
	}
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			if err := sse.Encode(w, sse.Event{Event: ev.Name, Data: ev.Payload}); err != nil {
				return false
			}
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
