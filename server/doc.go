// Package server exposes the nearest-driver search over HTTP.
//
// Routes (gorilla/mux, JSON via goccy/go-json):
//
//	GET /healthz                 {"status":"ok"}
//	GET /api/graph               nodes and roads
//	GET /api/origins             nodes with role "user"
//	GET /api/nearest/{source}    search result; ?role= picks the target role
//
// Results are cached per (source, role) in a concurrent map, since the
// graph never changes while the server runs. Unreachable distances are
// encoded as null.
package server
