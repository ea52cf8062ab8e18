package stream

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/everlastingsong/sedimentology/pkg/checkpoint"
	"github.com/everlastingsong/sedimentology/pkg/datetime"
	"github.com/everlastingsong/sedimentology/pkg/metrics"
)

const (
	// fetchChunkSize trades round trips against jsonl buffering; the
	// average line is around 8KB.
	fetchChunkSize uint16 = 128

	reportInterval = 60 * time.Second

	defaultLimit = 256
)

// noMoreSlotWait is one idle backoff step inside the fetch loop;
// noMoreSlotWaitLimit bounds the whole loop before a heartbeat is emitted
// instead. Variables so tests can shorten the idle path.
var (
	noMoreSlotWait      = 500 * time.Millisecond
	noMoreSlotWaitLimit = 5 * time.Second
)

// handleStream serves per-slot jsonl batches as Server-Sent Events.
//
// Events are delivered in strict slot order. The limit counts both data and
// empty heartbeat events. A client that reconnects with its last received
// slot observes no overlap: the first fetched slot equals the query and is
// popped before reassembly.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	requestID := s.requestIDStream.Add(1)
	logger := s.logger.With().Uint64("request_id", requestID).Logger()
	metrics.StreamRequestsTotal.WithLabelValues("stream").Inc()

	slot, present, err := parseUintParam(r, "slot")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !present {
		// catch-up mode: start from the indexer's checkpoint slot
		checkpointSlot, err := checkpoint.FetchCheckpointBlockSlot(s.db)
		if err != nil {
			logger.Error().Err(err).Msg("failed to resolve checkpoint slot")
			http.Error(w, "failed to resolve checkpoint slot", http.StatusInternalServerError)
			return
		}
		slot = checkpointSlot
	}

	limit, present, err := parseUintParam(r, "limit")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !present {
		limit = defaultLimit
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	logger.Info().Uint64("slot", slot).Uint64("limit", limit).Msg("stream opened")

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := r.Context()
	sinceConnected := time.Now()
	lastReported := time.Now()
	var countData, countNoData, bytesShipped uint64

	var queue [][]byte
	latestFetchedSlot := slot

	for sent := uint64(0); sent < limit; sent++ {
		if ctx.Err() != nil {
			// client disconnected; swallowed
			break
		}

		if time.Since(lastReported) >= reportInterval {
			logger.Info().
				Str("connected", datetime.FormatDuration(time.Since(sinceConnected))).
				Uint64("last_fetched_slot", latestFetchedSlot).
				Str("count_data", datetime.WithSeparator(countData)).
				Str("count_nodata", datetime.WithSeparator(countNoData)).
				Str("bytes_kb", datetime.WithSeparator(bytesShipped/1024)).
				Msg("stream report")
			lastReported = time.Now()
		}

		if len(queue) == 0 {
			trying := time.Now()
			for {
				nextSlots, err := s.reader.FetchNextSlotInfos(latestFetchedSlot, fetchChunkSize)
				if err != nil {
					logger.Error().Err(err).Msg("slot fetch failed")
					return
				}
				if nextSlots[0].Slot != latestFetchedSlot {
					logger.Error().
						Uint64("expected", latestFetchedSlot).
						Uint64("got", nextSlots[0].Slot).
						Msg("start slot vanished from the source")
					return
				}
				nextSlots = nextSlots[1:]

				if len(nextSlots) > 0 {
					records, err := s.reader.FetchTransactions(nextSlots)
					if err != nil {
						logger.Error().Err(err).Msg("transaction fetch failed")
						return
					}
					for _, record := range records {
						line, err := json.Marshal(record)
						if err != nil {
							logger.Error().Err(err).Msg("failed to marshal record")
							return
						}
						queue = append(queue, line)
					}
					latestFetchedSlot = nextSlots[len(nextSlots)-1].Slot
					break
				}

				select {
				case <-ctx.Done():
					return
				case <-time.After(noMoreSlotWait):
				}
				if time.Since(trying) >= noMoreSlotWaitLimit {
					break
				}
			}
		}

		var data []byte
		if len(queue) > 0 {
			data = queue[0]
			queue = queue[1:]
			countData++
			bytesShipped += uint64(len(data))
			metrics.StreamEventsTotal.WithLabelValues("data").Inc()
		} else {
			countNoData++
			metrics.StreamEventsTotal.WithLabelValues("empty").Inc()
		}

		if _, err := w.Write([]byte("data: ")); err != nil {
			return
		}
		if len(data) > 0 {
			if _, err := w.Write(data); err != nil {
				return
			}
		}
		if _, err := w.Write([]byte("\n\n")); err != nil {
			return
		}
		flusher.Flush()
	}

	logger.Info().
		Str("connected", datetime.FormatDuration(time.Since(sinceConnected))).
		Str("count_data", datetime.WithSeparator(countData)).
		Str("count_nodata", datetime.WithSeparator(countNoData)).
		Msg("stream closed")
}
