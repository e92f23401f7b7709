package dev

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func httpHandler(rs *ReloadServer) http.Handler {
	return http.HandlerFunc(rs.HandleWebSocket)
}

func dialReload(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, rs *ReloadServer, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for rs.ClientCount() < n {
		if time.Now().After(deadline) {
			t.Fatalf("client count = %d, want %d", rs.ClientCount(), n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestReloadBroadcast(t *testing.T) {
	rs := NewReloadServer()
	defer rs.Close()
	srv := httptest.NewServer(httpHandler(rs))
	defer srv.Close()

	conn := dialReload(t, srv)
	waitForClients(t, rs, 1)

	rs.NotifyReload("templates/home.go")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal %q: %v", data, err)
	}
	if msg.Type != ReloadTypeFull {
		t.Errorf("type = %q, want %q", msg.Type, ReloadTypeFull)
	}
	if msg.File != "templates/home.go" {
		t.Errorf("file = %q", msg.File)
	}
}

func TestReloadErrorMessage(t *testing.T) {
	rs := NewReloadServer()
	defer rs.Close()
	srv := httptest.NewServer(httpHandler(rs))
	defer srv.Close()

	conn := dialReload(t, srv)
	waitForClients(t, rs, 1)

	rs.NotifyError("child exited with code 1")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != ReloadTypeError || msg.Error != "child exited with code 1" {
		t.Errorf("msg = %+v", msg)
	}
}

func TestReloadClientCleanup(t *testing.T) {
	rs := NewReloadServer()
	defer rs.Close()
	srv := httptest.NewServer(httpHandler(rs))
	defer srv.Close()

	conn := dialReload(t, srv)
	waitForClients(t, rs, 1)

	conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for rs.ClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("client count = %d after close, want 0", rs.ClientCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}
