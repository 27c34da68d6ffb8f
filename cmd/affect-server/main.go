package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lior25659567/emotion-visualizer/internal/affect"
	"github.com/lior25659567/emotion-visualizer/internal/config"
	"github.com/lior25659567/emotion-visualizer/internal/domain"
	"github.com/lior25659567/emotion-visualizer/internal/mqtt"
	"github.com/lior25659567/emotion-visualizer/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.LoadAffectServerConfig()

	rules := affect.LoadRuleset(cfg.RulesPath, logger)
	analyzer := affect.NewAnalyzer(rules)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var segments *store.Store
	if cfg.DBDSN != "" {
		var err error
		segments, err = store.New(ctx, cfg.DBDSN)
		if err != nil {
			logger.Error("db connect failed", "error", err)
			os.Exit(1)
		}
		defer segments.Close()
		if err := segments.Migrate(ctx); err != nil {
			logger.Error("db migrate failed", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("DB_DSN not set, running without segment persistence")
	}

	if cfg.MQTTBrokerURL != "" {
		var saver mqtt.SegmentSaver
		if segments != nil {
			saver = segments
		}
		hub := mqtt.NewHub(mqtt.HubConfig{
			BrokerURL:   cfg.MQTTBrokerURL,
			ClientID:    cfg.MQTTClientID,
			Username:    cfg.MQTTUsername,
			Password:    cfg.MQTTPassword,
			TopicPrefix: cfg.MQTTTopicPrefix,
		}, analyzer, saver, logger)
		if err := hub.Start(ctx); err != nil {
			logger.Error("mqtt start failed", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("MQTT_BROKER_URL not set, running without renderer feed")
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":         true,
			"engine":     affect.Engine,
			"categories": rules.Len(),
			"vocabulary": affect.EmotionVocabulary(),
		})
	})
	r.Get("/v1/affect/categories", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"categories": rules.CategoryIDs(),
			"vocabulary": affect.EmotionVocabulary(),
		})
	})
	r.Post("/v1/affect/analyze", func(w http.ResponseWriter, req *http.Request) {
		var in domain.AnalyzeRequest
		if err := decodeJSONBody(req, cfg.ReadBodyMaxBytes, &in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
			return
		}

		start := time.Now()
		out := analyzer.AnalyzeSegment(in.Text, in.ConversationStart)

		segmentID := in.SegmentID
		if segments != nil && in.ConversationID != "" {
			id, err := segments.SaveSegment(req.Context(), in.SegmentID, in.ConversationID, in.Text, out)
			if err != nil {
				logger.Warn("segment save failed", "conversation_id", in.ConversationID, "error", err)
			} else {
				segmentID = id
			}
		}

		writeJSON(w, http.StatusOK, domain.AnalyzeResponse{
			Descriptor: out,
			SegmentID:  segmentID,
			LatencyMS:  roundMillis(time.Since(start)),
		})
	})
	r.Get("/v1/affect/segments/{segmentID}", func(w http.ResponseWriter, req *http.Request) {
		if segments == nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": "segment persistence is not configured"})
			return
		}
		record, err := segments.GetSegment(req.Context(), chi.URLParam(req, "segmentID"))
		if errors.Is(err, store.ErrSegmentNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "segment not found"})
			return
		}
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, record)
	})
	r.Get("/v1/affect/segments/recent", func(w http.ResponseWriter, req *http.Request) {
		if segments == nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": "segment persistence is not configured"})
			return
		}
		limit := cfg.RecentLimit
		if v := req.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}
		records, err := segments.RecentSegments(req.Context(), req.URL.Query().Get("conversation_id"), limit)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"segments": records})
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("affect server started", "addr", cfg.HTTPAddr, "engine", affect.Engine, "categories", rules.Len())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("received shutdown signal")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
}

func decodeJSONBody(req *http.Request, maxBytes int64, out any) error {
	defer req.Body.Close()
	data, err := io.ReadAll(io.LimitReader(req.Body, maxBytes+1))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return fmt.Errorf("request body too large")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		if err == nil {
			return fmt.Errorf("invalid json: multiple JSON values")
		}
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

func roundMillis(d time.Duration) float64 {
	ms := float64(d.Microseconds()) / 1000.0
	return math.Round(ms*1000) / 1000
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
