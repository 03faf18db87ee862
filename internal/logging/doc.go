// Package logging provides the structured logging interface shared by the
// billionfib packages. ZerologAdapter is the default backend; StdLoggerAdapter
// wraps the standard log package for callers that already hold a *log.Logger.
package logging
