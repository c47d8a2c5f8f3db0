package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// console mirrors progress messages into the server log and the client's
// SSE stream as "console" events
type console struct {
	w      http.ResponseWriter
	server *Server
}

func newConsole(w http.ResponseWriter, server *Server) *console {
	return &console{w: w, server: server}
}

// Printf logs the message and forwards it to the client
func (c *console) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	logger.Info(message)

	data, err := json.Marshal(ConsoleMessage{
		Message:   message,
		Timestamp: time.Now(),
		Level:     "info",
	})
	if err != nil {
		return
	}
	c.server.sendSSEEvent(c.w, "console", string(data))
}
