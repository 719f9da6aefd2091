// Package trace is the logging layer of the hylo toolchain.
//
// Pipeline stages report what they do as events: a span opens when a stage
// starts (lexing a file, parsing it, reading the cache) and closes with a
// short detail when it ends. Events go to a Tracer chosen on the command line.
//
// # Usage
//
//	hylo parse --trace=- --trace-level=file src/
//
// # Tracers
//
//   - Nop: zero-overhead default when tracing is off
//   - StreamTracer: writes each event to a file or stderr as it happens
//   - RingTracer: keeps the last events in memory, dumped when a run fails
//   - MultiTracer: fan-out to several tracers
//
// # Levels and scopes
//
// Scopes order events from coarse to fine: Driver (one per command), Phase
// (tokenize, parse, cache), File (one source file) and Token (per-token
// detail, debug only). A Level admits every scope up to its own depth.
//
// Tracers travel through the pipeline in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePhase, "parse", 0)
//	defer span.End("")
package trace
