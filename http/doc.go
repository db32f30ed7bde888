// Package http implements the REST surface of the upload relay.
//
// Three operations are exposed: POST /upload forwards a local file to the
// provider with the caller's bearer token, POST /test-auth validates a token
// with a read-only listing call, and GET /health reports liveness. OPTIONS
// to any path short-circuits with 200 for CORS preflight.
//
// All failures are normalized into a single JSON envelope
// {"error": <summary>, "details": [...]} by HandleError; see the root
// package for the error taxonomy it maps from.
package http
