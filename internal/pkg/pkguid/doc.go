// Package pkguid provides helpers for generating unique identifiers.
//
// String IDs (UUIDv7) tag HTTP requests for log correlation; numeric
// Snowflake IDs tag each dataset load so logs and the dataset endpoint agree
// on which snapshot is being served.
package pkguid
