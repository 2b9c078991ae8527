// Package cache correlates rendered panels with the inquiry result they were
// built from. Every stored result gets the next integer index. Indices grow
// monotonically and are never handed out twice. The cache is bounded and
// drops the least recently used result once full.
package cache
