// Package tidylog is a thin wrapper over rs/zerolog that configures a
// named logger to write simultaneously to the console and to a plain or
// rotating log file, each sink with its own severity threshold.
//
// Key features
//   - Pure path resolution: date-suffixed, extension-defaulted file names
//     with platform-conditional validation (Windows reserved device names
//     and forbidden characters)
//   - Independent console and file thresholds on one logger; the logger
//     runs at the lower of the two
//   - Duplicate-attachment guard: constructing twice under one name reuses
//     the first construction's sinks instead of double-emitting
//   - File rotation via lumberjack; colorized console output only on
//     interactive terminals
//   - Structured logging via InfoWith()/ErrorWith()/... and context
//     loggers via With()
//   - Idempotent, best-effort Close that fully releases the name for
//     re-initialization
//
// Typical usage
//
//	opts := tidylog.DefaultOptions()
//	opts.FileName = "logs/app.log"
//	logger, err := tidylog.New(opts)
//	if err != nil { panic(err) }
//	defer logger.Close()
//
//	logger.Infof("started %s", version)
//	logger.ErrorWith().Err(err).Str("operation", "open").Msg("failed")
package tidylog
