// Read-only HTTP API over the consolidated catalogue file produced by a
// scrape run.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"jaipur-auction-scraper/storage"
	"jaipur-auction-scraper/utils"
)

type catalogueHandler struct {
	path   string
	logger *utils.Logger
}

func (h *catalogueHandler) listAll(w http.ResponseWriter, r *http.Request) {
	listings, err := storage.ReadCatalogue(h.path)
	if err != nil {
		h.logger.Error("[api] Catalogue read failed: %v", err)
		http.Error(w, "catalogue unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(listings)
}

func (h *catalogueHandler) getByID(w http.ResponseWriter, r *http.Request) {
	listings, err := storage.ReadCatalogue(h.path)
	if err != nil {
		h.logger.Error("[api] Catalogue read failed: %v", err)
		http.Error(w, "catalogue unavailable", http.StatusServiceUnavailable)
		return
	}

	id := mux.Vars(r)["id"]
	for _, l := range listings {
		if l.ID == id {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(l)
			return
		}
	}
	http.Error(w, "listing not found", http.StatusNotFound)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[api] No .env file found, falling back to system env vars")
	}

	logger := utils.NewLogger()
	path := getEnv("JSON_OUTPUT_PATH", "./data/listings.json")
	port := getEnv("API_PORT", "8080")

	h := &catalogueHandler{path: path, logger: logger}

	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	}).Methods("GET")
	r.HandleFunc("/api/listings", h.listAll).Methods("GET")
	r.HandleFunc("/api/listings/{id}", h.getByID).Methods("GET")

	logger.Info("[api] Serving catalogue %s on :%s", path, port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
