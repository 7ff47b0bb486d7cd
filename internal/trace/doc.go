// Package trace records what the formatter does: which files the driver
// picked up, how long each pass took, where a run got stuck.
//
// Enable it from the command line:
//
//	vhdl-fmt fmt --trace=- --trace-level=detail rtl/
//
// Tracers come in three flavours: a stream tracer writing every event as it
// happens, a ring tracer keeping the last N events in memory for a dump on
// failure, and a multi tracer fanning out to both. Nop costs nothing.
//
// Levels filter by scope: phase keeps driver and pass events, detail adds
// per-file events, debug keeps everything.
//
// The tracer travels through the pipeline in the context:
//
//	ctx = trace.WithTracer(ctx, tr)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
package trace
