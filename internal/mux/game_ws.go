package mux

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"blackjack-server/pkg/blackjack"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// hub fans engine events out to every connected websocket client
type hub struct {
	mu      sync.Mutex
	clients map[chan blackjack.Event]bool

	stop     chan struct{}
	stopOnce sync.Once
}

func newHub() *hub {
	return &hub{
		clients: make(map[chan blackjack.Event]bool),
		stop:    make(chan struct{}),
	}
}

func (h *hub) run(events <-chan blackjack.Event) {
	for {
		select {
		case event := <-events:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client <- event:
				default:
					// a slow client misses events rather than stalling the rest
				}
			}
			h.mu.Unlock()
		case <-h.stop:
			return
		}
	}
}

func (h *hub) close() {
	h.stopOnce.Do(func() {
		close(h.stop)
	})
}

func (h *hub) register() chan blackjack.Event {
	client := make(chan blackjack.Event, 64)

	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()

	return client
}

func (h *hub) unregister(client chan blackjack.Event) {
	h.mu.Lock()
	delete(h.clients, client)
	h.mu.Unlock()
}

func (m *Mux) getGameWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		client := m.hub.register()
		defer func() {
			m.hub.unregister(client)
			_ = conn.Close()
		}()

		go m.webSocketWriteLoop(conn, client)
		m.webSocketReadLoop(conn)
	}
}

func (m *Mux) webSocketWriteLoop(conn *websocket.Conn, client chan blackjack.Event) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case event := <-client:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(event); err != nil {
				logrus.WithError(err).Error("could not write event")
				return
			}
		}
	}
}

// webSocketReadLoop discards client messages; intents arrive over REST.
// It returns when the client goes away.
func (m *Mux) webSocketReadLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
