// Package panel turns decoded inquiry results into panel trees and keeps the
// list of panels currently on display.
//
// A panel has a header (title and close action) and a details section that
// starts hidden. Details mirror the inquiry object entry by entry: scalars as
// text, arrays as bulleted lists, nested objects as nested definition lists
// and the stream list as a zero-based ordered list of clickable streams.
package panel
