// Package server exposes the analyzer over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordid/chord"
	"github.com/jsphweid/chordid/logging"
	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/note"
	"github.com/jsphweid/chordid/theory"
	"github.com/rs/cors"
)

type Server struct {
	PreferFlats bool
}

func New(preferFlats bool) *Server {
	return &Server{PreferFlats: preferFlats}
}

func (s *Server) Router() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestLogger)
	router.HandleFunc("/analyze", s.HandleAnalyze).Methods("POST")
	router.HandleFunc("/templates", HandleTemplates).Methods("GET")
	return cors.Default().Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func (s *Server) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var input model.AnalyzeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not decode request body: "+err.Error())
		return
	}
	if len(input.Notes) == 0 {
		writeError(w, http.StatusBadRequest, "notes must not be empty")
		return
	}

	preferFlats := s.PreferFlats
	if input.PreferFlats != nil {
		preferFlats = *input.PreferFlats
	}

	res, labels, err := chord.AnalyzeAll(input.Notes, preferFlats)
	var parseErr *note.ParseError
	if errors.As(err, &parseErr) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	body := model.AnalyzeResponse{Result: res, Text: res.String()}
	if res.Kind == model.Chord {
		for _, label := range labels {
			if label != res.Label {
				body.Alternatives = append(body.Alternatives, label)
			}
		}
	}
	writeJSON(w, http.StatusOK, body)
}

func HandleTemplates(w http.ResponseWriter, r *http.Request) {
	res := make([]model.TemplateResponse, 0)
	for _, t := range theory.Templates() {
		intervals := t.Intervals.Slice()
		names := make([]string, len(intervals))
		for i, iv := range intervals {
			names[i] = theory.NameInterval(iv)
		}
		res = append(res, model.TemplateResponse{
			Quality:   t.Quality,
			Symbol:    t.Symbol,
			Intervals: intervals,
			Names:     names,
		})
	}
	writeJSON(w, http.StatusOK, res)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		logging.WithFields(logging.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
			"duration":   time.Since(start),
		}).Info("handled request")
	})
}
