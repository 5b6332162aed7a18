// Package inspect provides a Bubble Tea component for stepping a reader.Reader
// through text by hand.
//
// Every key runs one reader operation against the shared cursor and the
// component shows the consumed text, the cursor cell, the remaining text, and
// the outcome of the last operation.
package inspect
