// Package textview renders panels and progress bars for the terminal.
package textview
