// Package logx configures cronparse's structured logging.
//
// A small wrapper (logx.Logger) on top of zerolog keeps:
//   - Console output readable (short timestamp + short caller) on stderr
//   - File output JSON-structured
//
// Stdout is never written to; it belongs to rendered schedules.
package logx
