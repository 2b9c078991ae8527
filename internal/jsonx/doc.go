package jsonx

// Package jsonx decodes loosely structured JSON responses from the clipy
// server. Objects keep their member order so panels list details the way the
// server wrote them, and malformed payloads degrade to plain text instead of
// failing.
