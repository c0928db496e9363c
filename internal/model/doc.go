// Package model defines the data structures shared across the downloader: the
// per-URL job record and its state machine, progress events emitted during a
// transfer, video metadata, and playlist entries used for list expansion.
package model
