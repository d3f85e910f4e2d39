// Package logtail reads back the client's own log file for the logs command.
//
// Read returns the trailing lines of a file without holding more than about
// twice the requested window in memory. FilterLevel narrows those lines to a
// minimum slog level and understands both handler formats written by the
// logging package:
//
//	time=... level=WARN msg="load failed" kind=transport
//	{"time":"...","level":"WARN","msg":"load failed","kind":"transport"}
package logtail
