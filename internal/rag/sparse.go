package rag

import (
	"hash/fnv"
	"sort"
	"strings"

	"github.com/capsul1912/chunker-search-opt/internal/textsplit"
	"github.com/capsul1912/chunker-search-opt/internal/types"
)

// EncodeSparse builds the lexical sparse representation of text: fnv-1a
// hashed lowercase tokens as indices, term frequencies as values, indices
// ascending. The collection's IDF modifier turns the frequencies into
// BM25-style weights on the index side, so no corpus statistics are needed
// here and the encoding of a single text is fully deterministic.
func EncodeSparse(text string) types.SparseVector {
	counts := make(map[uint32]float32)
	for _, tok := range textsplit.Words(text) {
		counts[hashToken(strings.ToLower(tok))]++
	}
	if len(counts) == 0 {
		return types.SparseVector{}
	}

	indices := make([]uint32, 0, len(counts))
	for idx := range counts {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	values := make([]float32, len(indices))
	for i, idx := range indices {
		values[i] = counts[idx]
	}
	return types.SparseVector{Indices: indices, Values: values}
}

func hashToken(tok string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(tok))
	return h.Sum32()
}
