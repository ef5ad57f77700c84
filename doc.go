// Package huffman builds Huffman trees from symbol frequencies and derives
// the corresponding prefix-free code tables.
//
// The pipeline has three stages, each usable on its own:
//
//     ft := huffman.CountFrequencies(input)   // FrequencyTable
//     root := huffman.BuildTree(ft)           // Node, nil for empty input
//     ct := huffman.GenerateCodes(root)       // CodeTable
//
// BuildCodeTable runs all three.  Codes are not canonicalized, and no
// bitstream encoder or decoder is provided; a CodeTable (or the CodeIndex
// built from it) is meant to be handed to one.
//
// Ties between equal weights are broken by the order in which symbols first
// appeared, with merged nodes ordered after all leaves in order of creation,
// so the same input always yields the same codes.  An alphabet with a single
// symbol is assigned the one-bit code "0".
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
