// Package progress keeps the set of displayed progress bars in step with the
// server's list of active downloads.
//
// Every poll hands the active list to Tracker.Reconcile. Bars are created or
// updated for each download and bars whose download disappeared are removed,
// so after a round the displayed ids are exactly the ids the server reported.
package progress
