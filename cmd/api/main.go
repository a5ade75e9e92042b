package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"feedback-insights-go/internal/classifier"
	"feedback-insights-go/internal/config"
	"feedback-insights-go/internal/dataset"
	"feedback-insights-go/internal/logger"
	"feedback-insights-go/internal/processor"
	"feedback-insights-go/internal/renderer"
	"feedback-insights-go/internal/store"
	"feedback-insights-go/internal/types"
	"feedback-insights-go/internal/vocab"
)

const maxUploadBytes = 32 << 20

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "feedback-insights-go").Info("starting service")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	// load vocabulary into memory
	log.WithField("vocab_path", cfg.VocabPath).Info("loading vocabulary")
	ref, err := vocab.Load(cfg.VocabPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load vocabulary")
	}
	log.WithField("words", ref.Size()).Info("vocabulary loaded")

	scorer, err := classifier.NewVaderScorer(cfg.VaderLexicon, cfg.VaderEmojiLexicon)
	if err != nil {
		log.WithError(err).Fatal("failed to load lexical scorer")
	}

	log.WithField("model_path", cfg.ModelPath).Info("loading statistical model")
	model, err := classifier.LoadModel(classifier.ModelConfig{
		OrtLibraryPath: cfg.OrtLibraryPath,
		ModelPath:      cfg.ModelPath,
		TokenizerPath:  cfg.TokenizerPath,
		Labels:         cfg.ModelLabels,
		MaxSeqLen:      cfg.MaxSeqLen,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to load statistical model")
	}
	defer model.Close()

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		log.WithError(err).Fatal("failed to open report store")
	}
	defer db.Close()

	clf := classifier.New(ref, scorer, model, cfg.GateThreshold)
	proc := processor.New(clf, db, renderer.New(cfg.RendererURL))

	r := chi.NewRouter()

	// health
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		logger.New().WithRequest(req).Info("health check")
		fmt.Fprint(w, "ok")
	})

	// analyze endpoint: multipart upload + event metadata
	r.Post("/analyze", func(w http.ResponseWriter, req *http.Request) {
		reqLog := logger.New().WithRequest(req).WithField("handler", "analyze")
		reqLog.Info("analyze request received")

		if err := req.ParseMultipartForm(maxUploadBytes); err != nil {
			reqLog.WithError(err).Warn("bad multipart form")
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
			return
		}
		file, _, err := req.FormFile("file")
		if err != nil {
			reqLog.Warn("missing file field")
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing file upload"})
			return
		}
		defer file.Close()

		event := eventFromForm(req)
		reqLog = reqLog.WithField("club", event.Club).WithField("event", event.EventName)

		rows, err := dataset.Parse(file)
		if err != nil {
			var missing *dataset.MissingColumnError
			if errors.As(err, &missing) {
				reqLog.WithError(err).Warn("upload missing required column")
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": missing.Error()})
				return
			}
			reqLog.WithError(err).Warn("upload parse failed")
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "could not read upload"})
			return
		}

		start := time.Now()
		analysis, err := proc.Process(rows, event)
		reqLog.WithField("duration_ms", time.Since(start).Milliseconds()).Info("processor finished")
		if err != nil {
			reqLog.WithError(err).Error("processing failed")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "analysis failed"})
			return
		}
		writeJSON(w, http.StatusOK, analysis)
	})

	// report history per club
	r.Get("/api/reports/{club}", func(w http.ResponseWriter, req *http.Request) {
		club := chi.URLParam(req, "club")
		reqLog := logger.New().WithRequest(req).WithField("handler", "reports").WithField("club", club)
		reqLog.Info("listing reports")

		records, err := db.ListByClub(club)
		if err != nil {
			reqLog.WithError(err).Error("report listing failed")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not list reports"})
			return
		}
		writeJSON(w, http.StatusOK, records)
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

func eventFromForm(req *http.Request) types.EventContext {
	return types.EventContext{
		EventName:   req.FormValue("eventName"),
		Club:        req.FormValue("club"),
		Description: req.FormValue("description"),
		Date:        req.FormValue("date"),
		Strength:    req.FormValue("strength"),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.New().WithError(err).Error("failed to write response")
	}
}
