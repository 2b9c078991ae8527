package api

// Package api talks to the local clipy server. It wraps HTTP GET and POST,
// exposes one call per endpoint and hands back best-effort decoded bodies.
