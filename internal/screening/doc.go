// Package screening finds sanctioned individuals in the OFAC SDN list.
//
// A search is a single streaming pass over the decompressed sdn.xml document:
//
//	Assembler  cuts the stream into <sdnEntry> fragments
//	Normalize  parses a fragment, drops non-individuals, folds text fields
//	Match      applies the id-document, primary-name and alias rules in order
//
// Nothing is indexed or kept between searches. A caller searching the same
// document twice opens it twice.
package screening
