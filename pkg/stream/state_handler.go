package stream

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"net/http"
	"time"

	"github.com/everlastingsong/sedimentology/pkg/checkpoint"
	"github.com/everlastingsong/sedimentology/pkg/datetime"
	"github.com/everlastingsong/sedimentology/pkg/metrics"
)

// handleState reconstructs the whirlpool-state gzip blob of one checkpoint
// date and writes it as a single response body. The blob is produced in
// full before the response headers commit, so errors still map to HTTP
// status codes.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	requestID := s.requestIDState.Add(1)
	logger := s.logger.With().Uint64("request_id", requestID).Logger()
	metrics.StreamRequestsTotal.WithLabelValues("state").Inc()

	date, present, err := parseUintParam(r, "yyyymmdd")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !present {
		latest, err := checkpoint.FetchLatestStateDate(s.db)
		if err != nil {
			logger.Error().Err(err).Msg("failed to resolve latest state date")
			http.Error(w, "failed to resolve latest state date", http.StatusInternalServerError)
			return
		}
		date = uint64(latest)
	}
	logger.Info().Uint64("yyyymmdd", date).Msg("state requested")

	started := time.Now()
	state, err := checkpoint.BuildWhirlpoolState(s.db, uint32(date))
	if err != nil {
		logger.Error().Err(err).Msg("failed to build state")
		http.Error(w, "failed to build state", http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if err := json.NewEncoder(gz).Encode(state); err != nil {
		logger.Error().Err(err).Msg("failed to encode state")
		http.Error(w, "failed to encode state", http.StatusInternalServerError)
		return
	}
	if err := gz.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to encode state")
		http.Error(w, "failed to encode state", http.StatusInternalServerError)
		return
	}

	logger.Info().
		Str("elapsed", datetime.FormatDuration(time.Since(started))).
		Str("size_kb", datetime.WithSeparator(uint64(buf.Len()/1024))).
		Msg("state served")

	w.Header().Set("Content-Type", "application/gzip")
	_, _ = w.Write(buf.Bytes())
}
