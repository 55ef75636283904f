package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"heatpump_check/internal/model"
	"heatpump_check/internal/service"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler manages WebSocket connections and routes requests to the service.
type Handler struct {
	hub *Hub
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(hub *Hub, svc *service.Service, log *logrus.Logger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{hub: hub, svc: svc, log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	client := &Client{
		hub:  h.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}

	h.hub.Register(client)
	go client.writePump()

	h.readPump(r.Context(), client)
}

func (h *Handler) readPump(ctx context.Context, c *Client) {
	defer func() {
		h.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.WithError(err).Warn("WebSocket read error")
			}
			return
		}

		h.handleMessage(ctx, c, msg)
	}
}

func (h *Handler) handleMessage(ctx context.Context, c *Client, msg []byte) {
	var env Envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		h.replyError(c, "", fmt.Errorf("invalid message: %w", err))
		return
	}

	switch env.Type {
	case TypeSimRun:
		var in model.Input
		if err := decodePayload(env.Payload, &in); err != nil {
			h.replyError(c, env.ID, fmt.Errorf("invalid %s payload: %w", env.Type, err))
			return
		}
		h.reply(c, TypeSimResult, env.ID, h.svc.Simulate(in, service.TransportWS))

	case TypeScenarioCompute:
		var req service.ScenarioRequest
		if err := decodePayload(env.Payload, &req); err != nil {
			h.replyError(c, env.ID, fmt.Errorf("invalid %s payload: %w", env.Type, err))
			return
		}
		resp, err := h.svc.Scenario(ctx, req)
		if err != nil {
			h.replyError(c, env.ID, err)
			return
		}
		h.reply(c, TypeScenarioResult, env.ID, resp)

	case TypeFundingMatch:
		var req service.FundingRequest
		if err := decodePayload(env.Payload, &req); err != nil {
			h.replyError(c, env.ID, fmt.Errorf("invalid %s payload: %w", env.Type, err))
			return
		}
		h.reply(c, TypeFundingResult, env.ID, h.svc.Funding(req))

	default:
		h.replyError(c, env.ID, fmt.Errorf("unknown message type: %s", env.Type))
	}
}

// decodePayload treats a missing payload as an empty object.
func decodePayload(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}

func (h *Handler) reply(c *Client, msgType, id string, payload any) {
	msg, err := NewReply(msgType, id, payload)
	if err != nil {
		h.log.WithError(err).Errorf("encoding %s", msgType)
		return
	}
	select {
	case c.send <- msg:
	default:
		h.log.WithField("type", msgType).Warn("client buffer full, dropping reply")
	}
}

func (h *Handler) replyError(c *Client, id string, err error) {
	h.log.WithError(err).Debug("WebSocket request rejected")
	h.reply(c, TypeError, id, ErrorPayload{Message: err.Error()})
}
