// Package logger provides structured logging for optkit using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields. The pipe package uses it
// for drop diagnostics and pipe decorators.
//
// # Usage
//
//	log := logger.WithComponent("sequencer")
//	log.Info("pipeline done", logger.Fields(logger.FieldPipe, "add-one"))
package logger
