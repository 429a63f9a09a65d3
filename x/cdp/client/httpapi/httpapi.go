// Package httpapi exposes a read-only HTTP surface over the cdp module's
// QueryServer, in the same chi-router style as nhbchain's gateway routes.
// It never writes chain state: every mutation (deposit, borrow, liquidate,
// config change) stays on the Msg path so it goes through the mempool and
// consensus like any other transaction. This surface exists for operators
// and dashboards that want basket/position/config snapshots without
// standing up a full gRPC client.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mintvault/cdp-chain/x/cdp/types"
)

// ContextFunc supplies the query-time context for a request, typically
// app.NewContext(true) wrapped to return an error when the app hasn't
// committed a block yet.
type ContextFunc func() (context.Context, error)

// Server wraps a chi router bound to a QueryServer.
type Server struct {
	router chi.Router
	qs     types.QueryServer
	ctxFn  ContextFunc
}

// NewServer builds the HTTP router.
func NewServer(qs types.QueryServer, ctxFn ContextFunc) *Server {
	s := &Server{qs: qs, ctxFn: ctxFn}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/cdp/config", s.getConfig)
	r.Get("/cdp/basket", s.getBasket)
	r.Get("/cdp/positions/{owner}/{id}", s.getPosition)
	r.Get("/cdp/positions", s.listPositions)
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) getConfig(w http.ResponseWriter, r *http.Request) {
	ctx, err := s.ctxFn()
	if err != nil {
		writeJSONError(w, http.StatusServiceUnavailable, err)
		return
	}
	resp, err := s.qs.Config(ctx, &types.QueryConfigRequest{})
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getBasket(w http.ResponseWriter, r *http.Request) {
	ctx, err := s.ctxFn()
	if err != nil {
		writeJSONError(w, http.StatusServiceUnavailable, err)
		return
	}
	resp, err := s.qs.Basket(ctx, &types.QueryBasketRequest{})
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getPosition(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}
	ctx, err := s.ctxFn()
	if err != nil {
		writeJSONError(w, http.StatusServiceUnavailable, err)
		return
	}
	resp, err := s.qs.Position(ctx, &types.QueryPositionRequest{Owner: owner, ID: id})
	if err != nil {
		writeJSONError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) listPositions(w http.ResponseWriter, r *http.Request) {
	req := &types.QueryPositionsRequest{
		StartAfterOwner: r.URL.Query().Get("start_after_owner"),
	}
	if lim := r.URL.Query().Get("limit"); lim != "" {
		parsed, err := strconv.ParseUint(lim, 10, 64)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}
		req.Limit = parsed
	}
	ctx, err := s.ctxFn()
	if err != nil {
		writeJSONError(w, http.StatusServiceUnavailable, err)
		return
	}
	resp, err := s.qs.Positions(ctx, req)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeJSONError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
