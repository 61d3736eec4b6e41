package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/sufra-pos/api/internal/chat"
	"github.com/sufra-pos/api/internal/config"
	"github.com/sufra-pos/api/internal/model"
	"github.com/sufra-pos/api/internal/router"
	"github.com/sufra-pos/api/internal/store"
	"github.com/sufra-pos/api/internal/ws"
)

func main() {
	// A missing .env is fine; the environment wins either way.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}
	cfg := config.Load()

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	hub := ws.NewHub()
	go hub.Run()

	sessions := chat.NewSessionManager(st.Menu, newAssistant(cfg))

	r := router.New(cfg, st, sessions, hub)

	log.Printf("Starting server on %s (data dir: %s)", cfg.Addr, cfg.DataDir)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}

// newAssistant picks the conversation backend once at startup: Gemini
// when an API key is configured, the offline responder otherwise.
func newAssistant(cfg *config.Config) chat.AssistantFactory {
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not set; chat assistant runs in offline mode")
		return func(tableID int, menu model.Menu, deals []model.Deal) chat.Assistant {
			return chat.NewFallbackAssistant(tableID, menu, deals)
		}
	}
	return func(tableID int, menu model.Menu, deals []model.Deal) chat.Assistant {
		return chat.NewGeminiAssistant(cfg.GeminiAPIKey, cfg.GeminiModel, tableID, menu, deals)
	}
}
