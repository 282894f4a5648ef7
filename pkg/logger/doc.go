// Package logger builds *slog.Logger instances for jwtcli.
//
// New applies functional options (format, level, output, static attributes)
// and wraps the resulting handler in a ContextHandler so attributes stored in
// a context.Context are added to every record logged with that context.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithVerbose(true),
//	    logger.WithService("jwtcli"),
//	)
//	log.DebugContext(ctx, "token exchange finished",
//	    logger.StatusCode(200),
//	    logger.Duration(time.Since(start)),
//	)
//
// Attribute helpers in attr.go keep key names consistent. Error and RequestID
// return an empty slog.Attr for nil input, which slog drops, so callers can
// pass them unconditionally.
package logger
