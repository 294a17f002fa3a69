package filter

import (
	"encoding/binary"
	"hash/maphash"
	"sync"
)

// mergeSeed is the one-time process-wide hash seed used to bucket the
// merge-point table: initialized exactly once, under a guard, and never
// touched again for the lifetime of the process. hash/maphash is stdlib
// rather than a third-party dependency because this is purely an internal
// scratch-table detail with no wire format or external contract of its
// own.
var (
	mergeSeedOnce sync.Once
	mergeSeed     maphash.Seed
)

func getMergeSeed() maphash.Seed {
	mergeSeedOnce.Do(func() {
		mergeSeed = maphash.MakeSeed()
	})
	return mergeSeed
}

// defaultMergeBuckets matches the reference validator's default hash table
// size. The table never resizes: a program with more than this many
// outstanding merge points just degrades to a longer per-bucket scan.
const defaultMergeBuckets = 128

type mergeEntry struct {
	target uint16
	state  RegFile
}

// mergeTable is the multiset of (target offset, snapshot) pairs recorded by
// AND/OR instructions and resolved as the driver walks forward past their
// targets. It is created empty at the start of a validation pass and must
// be empty again at the end (I6); a non-empty table at termination is
// E_RESIDUAL_MERGE.
type mergeTable struct {
	seed    maphash.Seed
	buckets [][]mergeEntry
}

func newMergeTable() *mergeTable {
	return &mergeTable{
		seed:    getMergeSeed(),
		buckets: make([][]mergeEntry, defaultMergeBuckets),
	}
}

func (t *mergeTable) bucketFor(target uint16) int {
	var h maphash.Hash
	h.SetSeed(t.seed)
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], target)
	h.Write(buf[:])
	return int(h.Sum64() % uint64(len(t.buckets)))
}

// add records that entering target with state should be validated as an
// incoming edge, in addition to whatever falls through to it normally.
func (t *mergeTable) add(target uint16, state RegFile) {
	b := t.bucketFor(target)
	t.buckets[b] = append(t.buckets[b], mergeEntry{target: target, state: state})
}

// drain removes and returns every snapshot keyed at target. Order among
// duplicates is unspecified, matching the reference table's hash-bucket
// iteration order.
func (t *mergeTable) drain(target uint16) []RegFile {
	b := t.bucketFor(target)
	bucket := t.buckets[b]
	if len(bucket) == 0 {
		return nil
	}
	var out []RegFile
	kept := bucket[:0]
	for _, e := range bucket {
		if e.target == target {
			out = append(out, e.state)
		} else {
			kept = append(kept, e)
		}
	}
	t.buckets[b] = kept
	return out
}

// size is the total number of outstanding merge points across all buckets.
func (t *mergeTable) size() int {
	n := 0
	for _, b := range t.buckets {
		n += len(b)
	}
	return n
}
