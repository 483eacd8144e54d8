/*
Package trie provides a prefix tree holding a set of strings with fast exact and
prefix lookup. Keys are normalised before storage: by default they are converted
to Unicode Normalization Form KC and lowercased, then stored one UTF-8 byte per
edge, so "Oﬀice", "OFFICE" and "office" are the same key.

A plain ASCII variant without normalisation is available through NewASCII.

Neither type is safe for concurrent use.
*/
package trie
