package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hojoonlee/toondex/internal/models"
)

func TestHub(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// Mock client
	client := &Client{
		hub:  hub,
		send: make(chan []byte, 1),
	}

	// Test registration
	hub.register <- client
	if len(hub.clients) != 1 {
		t.Fatalf("Expected 1 client after registration, got %d", len(hub.clients))
	}

	// Test broadcast
	message := []byte("hello")
	hub.broadcast <- message

	select {
	case received := <-client.send:
		if string(received) != "hello" {
			t.Errorf("Client received wrong message: got %s, want %s", received, message)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Client did not receive broadcast message in time")
	}

	// Test unregistration
	hub.unregister <- client
	// Allow the hub to process the unregister message
	time.Sleep(10 * time.Millisecond)
	if len(hub.clients) != 0 {
		t.Fatalf("Expected 0 clients after unregistration, got %d", len(hub.clients))
	}
}

func TestHubBroadcastJSON(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{
		hub:  hub,
		send: make(chan []byte, 1),
	}
	hub.register <- client

	hub.BroadcastJSON(models.ProgressUpdate{
		JobID:    "catalog-sync",
		Message:  "Decoding 3 entries...",
		Progress: 30,
	})

	select {
	case received := <-client.send:
		var update models.ProgressUpdate
		if err := json.Unmarshal(received, &update); err != nil {
			t.Fatalf("Failed to unmarshal broadcast payload: %v", err)
		}
		if update.JobID != "catalog-sync" {
			t.Errorf("Expected job id 'catalog-sync', got '%s'", update.JobID)
		}
		if update.Progress != 30 {
			t.Errorf("Expected progress 30, got %v", update.Progress)
		}
		if update.Done {
			t.Error("Expected done to be false")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Client did not receive JSON broadcast in time")
	}
}

func TestHubDropsSlowClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// A client whose send channel nobody drains.
	client := &Client{
		hub:  hub,
		send: make(chan []byte),
	}
	hub.register <- client

	hub.broadcast <- []byte("update")
	// Allow the hub to process the broadcast and evict the client
	time.Sleep(10 * time.Millisecond)

	if len(hub.clients) != 0 {
		t.Fatalf("Expected the slow client to be dropped, still have %d", len(hub.clients))
	}
	if _, open := <-client.send; open {
		t.Error("Expected the dropped client's send channel to be closed")
	}
}
