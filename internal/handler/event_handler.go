package handler

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/kinetic/internal/notify"
)

const (
	eventBuffer       = 32
	defaultKeepAlive  = 15 * time.Second
	eventStreamHeader = "text/event-stream"
)

// EventHandler streams change notifications as Server-Sent Events.
// Clients re-fetch the resource named by the event kind.
type EventHandler struct {
	notifier  *notify.Notifier
	keepAlive time.Duration
}

func NewEventHandler(notifier *notify.Notifier) *EventHandler {
	return &EventHandler{notifier: notifier, keepAlive: defaultKeepAlive}
}

func (h *EventHandler) Stream(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, eventStreamHeader)
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	events, cancel := h.notifier.Channel(eventBuffer)
	keepAlive := h.keepAlive

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer cancel()

		fmt.Fprint(w, "event: ready\ndata: {}\n\n")
		if err := w.Flush(); err != nil {
			return
		}

		ticker := time.NewTicker(keepAlive)
		defer ticker.Stop()

		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Kind, mustJSON(ev))
			case <-ticker.C:
				fmt.Fprint(w, ": keep-alive\n\n")
			}
			// a failed flush means the client went away
			if err := w.Flush(); err != nil {
				return
			}
		}
	})

	return nil
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return `{}`
	}
	return string(b)
}
