// Package contextio converts external dataset shapes into core.Context and
// back: itemset lists, boolean matrices, name dictionaries, YAML documents
// and whitespace-separated itemset files. The Named wrapper keeps object and
// attribute labels next to the bit-vector context and verbalises raw
// descriptions back into names.
//
// The package also reads and writes the compact .bal binary format for
// bit-vector lists: the ASCII width, a 'n' separator, then every vector
// packed big-endian (bit 0 in the high bit of the first byte), padded to a
// whole number of bytes.
package contextio
