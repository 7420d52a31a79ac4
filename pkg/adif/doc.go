// Package adif extracts tagged fields from ADIF-like log text.
//
// The extractor is deliberately tolerant. It does not care about lines or
// layout: it drops everything up to the first <EOH>, splits the rest on
// <EOR>, and picks out every <NAME:LEN[:TYPE]>VALUE tag it can find.
// Anything that does not match the tag shape is ignored as plain text.
//
// Values run up to the next '<' and are cut to the declared length. A value
// shorter than its declared length is kept as-is.
package adif
