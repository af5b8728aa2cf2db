package controller

import (
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendDropsSubscriberThatStopsReading(t *testing.T) {
	e := &LeaderboardController{writeTimeout: 100 * time.Millisecond}
	result := make(chan error, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			result <- err
			return
		}
		defer conn.Close()
		payload := make([]byte, 1<<20)
		for {
			if err := e.send(conn, payload); err != nil {
				result <- err
				return
			}
		}
	}))
	defer server.Close()

	subscriber, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	defer subscriber.Close()

	select {
	case err := <-result:
		var netErr net.Error
		require.ErrorAs(t, err, &netErr)
		assert.True(t, netErr.Timeout())
	case <-time.After(10 * time.Second):
		t.Fatal("write to a subscriber that never reads did not give up")
	}
}
