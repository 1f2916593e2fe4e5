package server

import (
	"net/http"
	"sync"

	"carbid/internal/auth"
	"carbid/internal/fanout"

	"golang.org/x/net/websocket"
)

// wsFrame is a client-to-server control message.
type wsFrame struct {
	Type      string `json:"type"`
	VehicleID string `json:"vehicleId,omitempty"`
	Token     string `json:"token,omitempty"`
}

// wsMessage is a server-to-client message. Fan-out events carry the channel
// they were published on; payload shapes are identical to the SSE path.
type wsMessage struct {
	Event   string `json:"event"`
	Channel string `json:"channel,omitempty"`
	Payload any    `json:"payload,omitempty"`
}

// WebsocketHandler serves the persistent bidirectional push path. Clients
// join vehicle rooms with subscribe_vehicle frames; a valid token (query
// param or auth_refresh frame) additionally joins the user's personal room.
// Both rooms mirror the fan-out channel keys driven by the same publishes
// as the SSE path.
func WebsocketHandler(hub *fanout.Hub, verifier auth.TokenVerifier) http.Handler {
	return websocket.Handler(func(conn *websocket.Conn) {
		handleWSConn(conn, hub, verifier)
	})
}

func handleWSConn(conn *websocket.Conn, hub *fanout.Hub, verifier auth.TokenVerifier) {
	peer := newWSPeer(conn)
	go peer.writeLoop()
	defer peer.shutdown()

	var userID string
	if token := conn.Request().URL.Query().Get("token"); token != "" {
		if identity, err := verifier.VerifyToken(token); err == nil {
			userID = identity.UserID
			peer.subscribe(hub, fanout.UserChannel(userID))
		}
	}
	peer.send(wsMessage{Event: "connected", Payload: map[string]any{"ok": true, "userId": userID}})

	for {
		var frame wsFrame
		if err := websocket.JSON.Receive(conn, &frame); err != nil {
			return
		}

		switch frame.Type {
		case "subscribe_vehicle":
			if frame.VehicleID == "" {
				continue
			}
			peer.subscribe(hub, fanout.VehicleChannel(frame.VehicleID))
			peer.send(wsMessage{Event: "subscribed", Payload: map[string]any{"vehicleId": frame.VehicleID}})
		case "unsubscribe_vehicle":
			if frame.VehicleID == "" {
				continue
			}
			peer.unsubscribe(fanout.VehicleChannel(frame.VehicleID))
			peer.send(wsMessage{Event: "unsubscribed", Payload: map[string]any{"vehicleId": frame.VehicleID}})
		case "auth_refresh":
			identity, err := verifier.VerifyToken(frame.Token)
			if err != nil {
				peer.send(wsMessage{Event: "auth_refreshed", Payload: map[string]any{"userId": ""}})
				continue
			}
			if userID != "" && userID != identity.UserID {
				peer.unsubscribe(fanout.UserChannel(userID))
			}
			userID = identity.UserID
			peer.subscribe(hub, fanout.UserChannel(userID))
			peer.send(wsMessage{Event: "auth_refreshed", Payload: map[string]any{"userId": userID}})
		}
	}
}

// wsPeer owns one websocket connection: a single writer goroutine drains
// the outbound queue, and each room subscription runs a forwarder feeding
// that queue. A full queue drops messages rather than blocking publishers.
type wsPeer struct {
	conn *websocket.Conn
	out  chan wsMessage
	done chan struct{}

	mu      sync.Mutex
	cancels map[string]func()

	closeOnce sync.Once
}

func newWSPeer(conn *websocket.Conn) *wsPeer {
	return &wsPeer{
		conn:    conn,
		out:     make(chan wsMessage, 32),
		done:    make(chan struct{}),
		cancels: make(map[string]func()),
	}
}

func (p *wsPeer) writeLoop() {
	for {
		select {
		case msg := <-p.out:
			if err := websocket.JSON.Send(p.conn, msg); err != nil {
				return
			}
		case <-p.done:
			return
		}
	}
}

func (p *wsPeer) send(msg wsMessage) {
	select {
	case p.out <- msg:
	default:
	}
}

func (p *wsPeer) subscribe(hub *fanout.Hub, channel string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.cancels[channel]; ok {
		return
	}

	events, cancel := hub.Subscribe(channel)
	p.cancels[channel] = cancel

	go func() {
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				p.send(wsMessage{Event: ev.Name, Channel: channel, Payload: ev.Payload})
			case <-p.done:
				return
			}
		}
	}()
}

func (p *wsPeer) unsubscribe(channel string) {
	p.mu.Lock()
	cancel, ok := p.cancels[channel]
	delete(p.cancels, channel)
	p.mu.Unlock()

	if ok {
		cancel()
	}
}

func (p *wsPeer) shutdown() {
	p.closeOnce.Do(func() {
		close(p.done)
		p.mu.Lock()
		for channel, cancel := range p.cancels {
			delete(p.cancels, channel)
			cancel()
		}
		p.mu.Unlock()
	})
}
