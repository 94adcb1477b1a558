package rag

import (
	"sort"

	"github.com/capsul1912/chunker-search-opt/internal/types"
)

// DefaultRRFK is the standard reciprocal rank fusion smoothing constant.
const DefaultRRFK = 60

type fusedEntry struct {
	chunk    types.ScoredChunk
	score    float64
	bestRank int
	order    int
}

// FuseRRF combines ranked candidate lists by reciprocal rank fusion: each
// candidate scores the sum of 1/(k+rank) over the lists it appears in, with
// rank the 1-based position within that list. Fusion is rank-based, so the
// raw similarity scores of the inputs play no part.
//
// Ties break by the candidate's best rank across lists, then by stable
// input order. The candidate payload is taken from its first appearance.
func FuseRRF(lists [][]types.ScoredChunk, k int) []types.ScoredChunk {
	if k <= 0 {
		k = DefaultRRFK
	}

	byID := make(map[string]*fusedEntry)
	ordered := make([]*fusedEntry, 0)
	for _, list := range lists {
		for i, cand := range list {
			rank := i + 1
			e, ok := byID[cand.ID]
			if !ok {
				e = &fusedEntry{chunk: cand, bestRank: rank, order: len(ordered)}
				byID[cand.ID] = e
				ordered = append(ordered, e)
			}
			e.score += 1.0 / float64(k+rank)
			if rank < e.bestRank {
				e.bestRank = rank
			}
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].score != ordered[j].score {
			return ordered[i].score > ordered[j].score
		}
		if ordered[i].bestRank != ordered[j].bestRank {
			return ordered[i].bestRank < ordered[j].bestRank
		}
		return ordered[i].order < ordered[j].order
	})

	out := make([]types.ScoredChunk, len(ordered))
	for i, e := range ordered {
		c := e.chunk
		c.Score = float32(e.score)
		out[i] = c
	}
	return out
}
