// Package platform holds the glue to external video platforms: recognising
// playlist links and expanding them into their videos via ytdlp.
package platform
