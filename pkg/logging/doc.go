// Package logging configures the slog default logger used by the cookbook CLI.
//
// Records are written to stderr as JSON and always carry the "module" and
// "version" attributes. At debug level the source location is added as well.
//
// # Levels
//
// ParseLogLevel accepts debug, info, warn (or warning) and error in any case.
// Anything else, including the empty string, selects info.
//
// The CLI passes the value of its --log-level flag, which is itself sourced
// from LOG_LEVEL:
//
//	LOG_LEVEL=debug cookbook shop --recipes recipes.txt --dish Omelette
//
// SetDefaultStructuredLoggerWithLevel reads LOG_LEVEL directly when it is
// given an empty level.
//
// # Output
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "shopping list built",
//	    "module": "cookbook",
//	    "version": "v1.0.0",
//	    "dishes": 2,
//	    "servings": 3,
//	    "items": 4
//	}
package logging
