// Package main implements a mock eBay Sell API server for local
// development. It simulates the OAuth token endpoint and the three-step
// Sell Inventory publish sequence without requiring real eBay
// credentials, keeping created inventory and offers in memory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"
)

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	failStep := flag.String("fail-step", "", "force a step to fail: inventory, offer, or publish")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	srv := newSellServer(logger, *failStep)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock eBay sell server", "addr", addr, "fail_step", *failStep)

	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, srv.routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := httpSrv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// sellServer holds the in-memory marketplace state.
type sellServer struct {
	logger   *slog.Logger
	failStep string

	mu        sync.Mutex
	inventory map[string]json.RawMessage
	offers    map[string]offerRecord
	nextOffer int
	nextItem  int
}

type offerRecord struct {
	SKU       string
	Published bool
}

func newSellServer(logger *slog.Logger, failStep string) *sellServer {
	return &sellServer{
		logger:    logger,
		failStep:  failStep,
		inventory: make(map[string]json.RawMessage),
		offers:    make(map[string]offerRecord),
	}
}

func (s *sellServer) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /identity/v1/oauth2/token", s.handleToken)
	mux.HandleFunc("PUT /sell/inventory/v1/inventory_item/{sku}", s.handleInventoryItem)
	mux.HandleFunc("POST /sell/inventory/v1/offer", s.handleCreateOffer)
	mux.HandleFunc("POST /sell/inventory/v1/offer/{offerId}/publish", s.handlePublishOffer)
	return mux
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *sellServer) handleToken(w http.ResponseWriter, r *http.Request) {
	// Validate Basic Auth header is present (don't verify creds).
	if _, _, ok := r.BasicAuth(); !ok {
		s.logger.Warn("token request missing Basic Auth header")
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":             "invalid_client",
			"error_description": "client authentication failed",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token":  "mock-token-" + strconv.FormatInt(time.Now().UnixNano(), 36),
		"refresh_token": "mock-refresh-token",
		"expires_in":    7200,
		"token_type":    "User Access Token",
	})
	s.logger.Info("issued mock token")
}

func (s *sellServer) handleInventoryItem(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeError(w, http.StatusUnauthorized, "Invalid access token")
		return
	}
	if s.failStep == "inventory" {
		writeError(w, http.StatusBadRequest, "Invalid inventory item")
		return
	}

	sku := r.PathValue("sku")
	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	s.inventory[sku] = body
	s.nextItem++
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
	s.logger.Info("inventory item upserted", "sku", sku)
}

func (s *sellServer) handleCreateOffer(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeError(w, http.StatusUnauthorized, "Invalid access token")
		return
	}
	if s.failStep == "offer" {
		writeError(w, http.StatusBadRequest, "Invalid offer")
		return
	}

	var req struct {
		SKU string `json:"sku"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SKU == "" {
		writeError(w, http.StatusBadRequest, "Offer requires a sku")
		return
	}

	s.mu.Lock()
	_, exists := s.inventory[req.SKU]
	var offerID string
	if exists {
		s.nextOffer++
		offerID = fmt.Sprintf("offer-%d", s.nextOffer)
		s.offers[offerID] = offerRecord{SKU: req.SKU}
	}
	s.mu.Unlock()

	if !exists {
		writeError(w, http.StatusNotFound, "No inventory item for sku "+req.SKU)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"offerId": offerID})
	s.logger.Info("offer created", "offer_id", offerID, "sku", req.SKU)
}

func (s *sellServer) handlePublishOffer(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeError(w, http.StatusUnauthorized, "Invalid access token")
		return
	}
	if s.failStep == "publish" {
		writeError(w, http.StatusBadRequest, "Offer cannot be published")
		return
	}

	offerID := r.PathValue("offerId")

	s.mu.Lock()
	rec, exists := s.offers[offerID]
	if exists {
		rec.Published = true
		s.offers[offerID] = rec
	}
	s.mu.Unlock()

	if !exists {
		writeError(w, http.StatusNotFound, "Offer not found")
		return
	}

	listingID := strconv.FormatInt(110000000000+time.Now().UnixNano()%1000000, 10)
	writeJSON(w, http.StatusOK, map[string]string{"listingId": listingID})
	s.logger.Info("offer published", "offer_id", offerID, "listing_id", listingID)
}

func (s *sellServer) authorized(r *http.Request) bool {
	return r.Header.Get("Authorization") != ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"errors": []map[string]any{{"errorId": status, "message": message}},
	})
}
