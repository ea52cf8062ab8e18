/*
Package log provides structured logging for sedimentology using zerolog.

The log package wraps the zerolog library to provide JSON-structured logging
with component-specific loggers, configurable log levels, and helper functions
for common logging patterns. All logs include timestamps and support filtering
by severity level.

# Usage

Initializing the logger:

	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
		Output:     os.Stdout,
	})

Component loggers:

	replayerLog := log.WithComponent("replayer")
	replayerLog.Info().Uint64("slot", slot).Msg("checkpoint saved")

Worker loggers carry the archiver/distributor profile:

	archiverLog := log.WithProfile("archiver", "alpha")

Streaming handlers carry the request id:

	streamLog := log.WithRequestID("stream", requestID)
*/
package log
