// Package grapheme measures text the way a terminal draws it: by grapheme
// cluster and cell width.
package grapheme
