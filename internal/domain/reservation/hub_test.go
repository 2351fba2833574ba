package reservation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialLive(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/reservations/occupation/live" + query
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	var ev Event
	require.NoError(t, json.Unmarshal(msg, &ev))
	return ev
}

func TestHub_PushesCommittedReservations(t *testing.T) {
	env := setupTestRouter(t)
	first := env.addRoom(t, 1, 4)
	second := env.addRoom(t, 2, 4)

	srv := httptest.NewServer(env.router)
	defer srv.Close()

	everything := dialLive(t, srv, "")
	onlySecond := dialLive(t, srv, "?room_id="+second.ID.String())
	require.Eventually(t, func() bool { return env.hub.Clients() == 2 }, 2*time.Second, 10*time.Millisecond)

	rr := doJSONRequest(env.router, http.MethodPost, "/api/reservations/"+first.ID.String(),
		booking("2026-03-02T10:00:00Z", "2026-03-02T11:00:00Z"))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	rr = doJSONRequest(env.router, http.MethodPost, "/api/reservations/"+second.ID.String(),
		booking("2026-03-02T10:00:00Z", "2026-03-02T11:00:00Z"))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	ev := readEvent(t, everything)
	assert.Equal(t, EventReservationCreated, ev.Type)
	assert.Equal(t, first.ID.String(), ev.RoomID)
	ev = readEvent(t, everything)
	assert.Equal(t, second.ID.String(), ev.RoomID)

	ev = readEvent(t, onlySecond)
	assert.Equal(t, second.ID.String(), ev.RoomID)
	payload, ok := ev.Payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, second.ID.String(), payload["room_id"])
}

func TestHub_OriginCheck(t *testing.T) {
	check := originChecker([]string{"https://app.bookify.test/"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.True(t, check(req), "requests without Origin are allowed")

	req.Header.Set("Origin", "https://app.bookify.test")
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://evil.test")
	assert.False(t, check(req))

	assert.True(t, originChecker([]string{"*"})(req))
	assert.True(t, originChecker(nil)(req))
}

func TestHub_CloseDisconnectsClients(t *testing.T) {
	env := setupTestRouter(t)
	srv := httptest.NewServer(env.router)
	defer srv.Close()

	conn := dialLive(t, srv, "")
	require.Eventually(t, func() bool { return env.hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	env.hub.Close()
	assert.Equal(t, 0, env.hub.Clients())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestHub_RefusesClientsAfterClose(t *testing.T) {
	env := setupTestRouter(t)
	srv := httptest.NewServer(env.router)
	defer srv.Close()

	env.hub.Close()

	conn := dialLive(t, srv, "")
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
	assert.Equal(t, 0, env.hub.Clients())

	assert.NotPanics(t, func() {
		env.hub.Publish(Event{Type: EventReservationCreated, RoomID: "any"})
	})
}
