// Package logging configures the service's log/slog logger.
//
// Records are JSON on stdout by default. Setting LOG_FILE adds a rotating
// file (lumberjack) that receives the same records.
//
// Example usage:
//
//	logger, closer := logging.New(logging.OptionsFromEnv(), os.Stdout)
//	defer closer.Close()
//	slog.SetDefault(logger)
//
//	func (s *Store) persist(ctx context.Context) {
//	    logging.WithRequestID(ctx, s.logger).Error("failed to persist feeds")
//	}
package logging
