// Package transport exposes the dashboard status over HTTP, websocket and gRPC health.
package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/model"
	"github.com/goodnatureofminers/l2-migration-dashboard/pkg/coalescer"
)

const (
	// DefaultStreamRate is the maximum number of messages per second sent to one viewer.
	DefaultStreamRate = 4

	writeWait = 10 * time.Second
)

// StatusHub keeps the latest status and serves it to HTTP and websocket viewers.
type StatusHub struct {
	logger   *zap.Logger
	metrics  StreamMetrics
	rate     int
	upgrader websocket.Upgrader

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.RWMutex
	latest  []byte
	clients map[*coalescer.Coalescer[[]byte]]struct{}
}

// NewStatusHub builds a StatusHub sending at most rate messages per second to each viewer.
func NewStatusHub(rate int, metrics StreamMetrics, logger *zap.Logger) *StatusHub {
	if rate <= 0 {
		rate = DefaultStreamRate
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &StatusHub{
		logger:  logger.Named("statusHub"),
		metrics: metrics,
		rate:    rate,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		ctx:     ctx,
		cancel:  cancel,
		clients: make(map[*coalescer.Coalescer[[]byte]]struct{}),
	}
}

// Register mounts the status routes on mux.
func (h *StatusHub) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/status", h.ServeStatus)
	mux.HandleFunc("GET /api/stream", h.ServeStream)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
}

// Publish stores status as the latest one and pushes it to every viewer.
func (h *StatusHub) Publish(status model.Status) {
	payload, err := json.Marshal(status)
	if err != nil {
		h.logger.Error("encode status failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.latest = payload
	clients := make([]*coalescer.Coalescer[[]byte], 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.Offer(payload)
	}
}

// ServeStatus writes the latest status, or 503 before the first one.
func (h *StatusHub) ServeStatus(w http.ResponseWriter, _ *http.Request) {
	h.mu.RLock()
	payload := h.latest
	h.mu.RUnlock()

	if payload == nil {
		http.Error(w, "status not available yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(payload)
}

// ServeStream upgrades to a websocket and streams every status until the
// viewer disconnects or the hub is closed.
func (h *StatusHub) ServeStream(w http.ResponseWriter, r *http.Request) {
	h.wg.Add(1)
	defer h.wg.Done()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(h.ctx)
	defer cancel()

	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	out := coalescer.New(h.logger, func(_ context.Context, payload []byte) error {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		err := conn.WriteMessage(websocket.TextMessage, payload)
		h.metrics.ObserveWrite(err)
		return err
	}, h.rate)
	out.Start(ctx)

	h.add(out)
	h.metrics.ObserveClient(1)
	defer func() {
		h.remove(out)
		h.metrics.ObserveClient(-1)
	}()

	select {
	case <-ctx.Done():
	case <-out.Done():
	}
	out.Stop()

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	_ = conn.Close()
	<-readerDone
}

// Close disconnects every viewer and waits for their handlers to return.
func (h *StatusHub) Close() {
	h.cancel()
	h.wg.Wait()
}

func (h *StatusHub) add(c *coalescer.Coalescer[[]byte]) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	if h.latest != nil {
		c.Offer(h.latest)
	}
}

func (h *StatusHub) remove(c *coalescer.Coalescer[[]byte]) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}
