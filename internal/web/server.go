package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"v1-esp/internal/config"
	"v1-esp/internal/display"
	"v1-esp/internal/render"
)

const maxRequestBytes = 4 << 10

// PacketResponse is the reply to an infDisplayData build request.
type PacketResponse struct {
	Payload string `json:"payload"`
	Packet  string `json:"packet"`
	CArray  string `json:"c_array"`
}

func Handler(status *Status) http.Handler {
	if status == nil {
		status = NewStatus()
	}
	mux := http.NewServeMux()

	mux.HandleFunc("/api/status", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, status.Snapshot(time.Now().UTC()))
	})

	mux.HandleFunc("/api/packets/inf-display", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req config.AlertConfig
		dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			status.MarkRejected()
			http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
			return
		}

		sel, err := req.Selection()
		if err != nil {
			status.MarkRejected()
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		payload, err := display.Build(sel)
		if err != nil {
			status.MarkRejected()
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		pkt, err := display.Frame(sel)
		if err != nil {
			status.MarkRejected()
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		status.MarkBuilt(time.Now().UTC())
		writeJSON(w, PacketResponse{
			Payload: render.Hex(payload.Bytes()),
			Packet:  render.Hex(pkt),
			CArray:  render.CArray(pkt),
		})
	})

	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, "marshal failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
	_, _ = w.Write([]byte("\n"))
}

func Serve(ctx context.Context, listenAddr string, status *Status) error {
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           Handler(status),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MiB
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
