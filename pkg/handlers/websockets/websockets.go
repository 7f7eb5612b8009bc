package websockets

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/chris/nutstash-wallet/pkg/websockets"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler handles WebSocket connections, both through API Gateway and on the local server.
type Handler struct {
	connManager websockets.ConnectionManager
	hub         *websockets.Hub
}

// NewHandler creates a new Handler. hub may be nil when the handler only serves API Gateway events.
func NewHandler(connManager websockets.ConnectionManager, hub *websockets.Hub) *Handler {
	return &Handler{
		connManager: connManager,
		hub:         hub,
	}
}

// HandleRequest routes an API Gateway websocket event by its route key.
func (h *Handler) HandleRequest(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	switch request.RequestContext.RouteKey {
	case "$connect":
		return h.HandleConnect(ctx, request)
	case "$disconnect":
		return h.HandleDisconnect(ctx, request)
	default:
		return h.HandleDefault(ctx, request)
	}
}

// HandleConnect handles new client connections.
func (h *Handler) HandleConnect(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	slog.Info("Client connected", "connectionId", request.RequestContext.ConnectionID)

	if err := h.connManager.AddConnection(ctx, request.RequestContext.ConnectionID); err != nil {
		slog.Error("failed to save connection ID", "error", err)
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, err
	}

	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

// HandleDisconnect handles client disconnections.
func (h *Handler) HandleDisconnect(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	slog.Info("Client disconnected", "connectionId", request.RequestContext.ConnectionID)

	if err := h.connManager.RemoveConnection(ctx, request.RequestContext.ConnectionID); err != nil {
		slog.Error("failed to delete connection ID", "error", err)
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, err
	}

	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

// HandleDefault handles messages sent from a client. Clients are not expected to send any.
func (h *Handler) HandleDefault(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	slog.Info("Received message", "connectionId", request.RequestContext.ConnectionID, "body", request.Body)
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Local development only.
		return true
	},
}

// ServeHTTP handles WebSocket requests for the local development server.
// Local connections live only in the hub. Their IDs are never written to the
// connection store, which holds API Gateway connection IDs.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		http.Error(w, "Local websockets are not enabled", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	connectionID := uuid.New().String()
	slog.Info("Client connected locally", "connectionId", connectionID)
	h.hub.Register(connectionID, conn)

	defer func() {
		slog.Info("Client disconnected locally", "connectionId", connectionID)
		h.hub.Unregister(connectionID)
	}()

	// Reading is the only way to notice the client going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("unexpected close error", "error", err)
			}
			break
		}
	}
}
