// Package charclass classifies single runes for the reader package.
//
// Alphabetic means ASCII letters plus Ä Ö Ü ä ö ü and underscore. Underscore is
// accepted as both upper and lower case so identifiers like foo_bar read as one run.
package charclass
