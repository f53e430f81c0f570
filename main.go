/*
Package main
File: main.go
Description: Combat server entry point. Loads the balance configuration,
starts the real-time spectator hub and serves the battle resolution API.
*/

package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
)

// Declare gameHub at the package level so it's accessible to handlers.go
var gameHub *Hub

func main() {
	// 1. Load the combat tuning values from YAML
	if err := loadConfig(); err != nil {
		log.Fatalf("Config Fail: %v", err)
	}

	// 2. Initialize and start the Real-Time WebSocket Hub
	gameHub = NewHub()
	go gameHub.Run()

	// 3. Hot-reload logic: Listen for SIGHUP to refresh balance without restart
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGHUP)
		for {
			<-sigChan
			log.Println("SIGNAL: Reloading combat balance...")
			if err := loadConfig(); err != nil {
				log.Printf("Reload failed: %v", err)
			}
		}
	}()

	// 4. Setup Router and Handlers
	r := mux.NewRouter()

	// Resolution & Information Endpoints
	r.HandleFunc("/api/battles/resolve", handleResolve).Methods(http.MethodPost)
	r.HandleFunc("/api/reports", handleListReports).Methods(http.MethodGet)
	r.HandleFunc("/api/reports/{id}", handleGetReport).Methods(http.MethodGet)
	r.HandleFunc("/api/reports/{id}/view", handleReportView).Methods(http.MethodGet)
	r.HandleFunc("/api/catalog", handleGetCatalog).Methods(http.MethodGet)

	// Real-Time WebSocket Endpoint
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(gameHub, w, r)
	})

	// 5. Start the Server
	port := ":8082"
	log.Printf("GALAXIES: WARFRONT Combat server live on %s", port)
	log.Printf("Real-time Hub: Online")

	if err := http.ListenAndServe(port, corsMiddleware(r)); err != nil {
		log.Fatal(err)
	}
}

// corsMiddleware lets the browser-based replay client talk to the server
// across domains.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
