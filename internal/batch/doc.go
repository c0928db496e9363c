// Package batch reads the newline-delimited URL list and feeds each URL,
// strictly in order and one at a time, to the download orchestrator.
package batch
