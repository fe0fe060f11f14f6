package gateway

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"namechain/app"
	"namechain/ledger"
	"namechain/x/registry/types"
)

// Server is the HTTP surface over one registry program: name resolution and
// config reads, signed-transaction submission, and prometheus metrics.
type Server struct {
	app    *app.App
	logger log.Logger
	router *mux.Router
}

func New(a *app.App, logger log.Logger) *Server {
	s := &Server{
		app:    a,
		logger: logger.With("component", "gateway"),
		router: mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/v1/names/{name}", s.handleResolve).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/config/owner", s.handleOwner).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/config/fee", s.handleFee).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/config/pending-owner", s.handlePendingOwner).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/tx", s.handleTx).Methods(http.MethodPost)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe blocks until ctx is cancelled, then drains in-flight
// requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("gateway listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

type nameResponse struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Owner         string `json:"owner"`
	CooldownUntil int64  `json:"cooldown_until"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if err := types.ValidateName(name); err != nil {
		s.writeError(w, err)
		return
	}

	rec, err := s.app.Keeper().GetNameRecord(r.Context(), types.NameRecordID(name))
	if err != nil {
		if errors.Is(err, ledger.ErrNotAllocated) {
			err = types.ErrNameNotFound.Wrap(name)
		}
		s.writeError(w, err)
		return
	}
	if !rec.Initialized {
		s.writeError(w, types.ErrNameNotFound.Wrap(name))
		return
	}

	s.writeJSON(w, http.StatusOK, nameResponse{
		Name:          rec.Name,
		Address:       rec.ResolvedAddress.String(),
		Owner:         rec.Owner.String(),
		CooldownUntil: rec.CooldownUntil,
	})
}

func (s *Server) handleOwner(w http.ResponseWriter, r *http.Request) {
	addr, err := s.app.Queries().ContractOwner(r.Context(), types.ConfigID())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"owner": addr.String()})
}

func (s *Server) handleFee(w http.ResponseWriter, r *http.Request) {
	fee, err := s.app.Queries().RegistrationFee(r.Context(), types.ConfigID())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]uint64{"registration_fee": fee})
}

func (s *Server) handlePendingOwner(w http.ResponseWriter, r *http.Request) {
	addr, err := s.app.Queries().PendingContractOwner(r.Context(), types.ConfigID())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"pending_owner": addr.String()})
}

type txRequest struct {
	Tx string `json:"tx"`
}

type txResponse struct {
	ReturnData string `json:"return_data,omitempty"`
}

func (s *Server) handleTx(w http.ResponseWriter, r *http.Request) {
	var req txRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, app.ErrInvalidInstruction.Wrap("request body must be JSON with a hex tx field"))
		return
	}
	raw, err := hex.DecodeString(req.Tx)
	if err != nil {
		s.writeError(w, app.ErrInvalidInstruction.Wrap("tx field must be hex"))
		return
	}
	tx, err := types.DecodeTx(raw)
	if err != nil {
		s.writeError(w, app.ErrInvalidInstruction.Wrap(err.Error()))
		return
	}

	ret, err := s.app.Execute(r.Context(), tx)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, txResponse{ReturnData: hex.EncodeToString(ret)})
}

type errorResponse struct {
	Codespace string `json:"codespace"`
	Code      uint32 `json:"code"`
	Error     string `json:"error"`
}

// writeError surfaces the registered codespace and code so clients see the
// stable error taxonomy, not just text.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	codespace, code, logMsg := errorsmod.ABCIInfo(err, false)

	status := http.StatusBadRequest
	switch {
	case errors.Is(err, types.ErrNameNotFound), errors.Is(err, types.ErrNotInitialized):
		status = http.StatusNotFound
	case errors.Is(err, app.ErrMissingSignature), errors.Is(err, app.ErrInvalidSignature):
		status = http.StatusUnauthorized
	}

	s.writeJSON(w, status, errorResponse{
		Codespace: codespace,
		Code:      code,
		Error:     logMsg,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", "err", err)
	}
}
