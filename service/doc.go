// Package service provides the policy bin write and read operations shared by the
// HTTP API, the MCP tools and the CLI.
//
// Every write is a load-modify-save cycle against the metadata snapshot; no state
// is kept in process between calls.
package service
