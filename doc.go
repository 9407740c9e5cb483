// Package jsonish extracts typed values out of noisy, LLM-shaped text:
// JSON missing a closing brace, JSON wrapped in markdown fences, JSON with
// unquoted keys or trailing commas, or a JSON object buried in a sentence
// of prose. Parse runs the raw-text recovery cascade (package rawparser),
// then coerces the recovered shape against a caller-supplied schema
// (package schema, package coerce), scoring every viable interpretation
// and returning the least-damaged one.
package jsonish
