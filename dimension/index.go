package dimension

// Index assigns dense surrogate keys, starting at 1, to natural keys in
// the order they are first added.
type Index[K comparable] struct {
	keys []K
	ids  map[K]int32
}

func NewIndex[K comparable]() *Index[K] {
	return &Index[K]{ids: make(map[K]int32)}
}

// Add returns the surrogate key of k, assigning the next one if k is new.
func (ix *Index[K]) Add(k K) int32 {
	if id, ok := ix.ids[k]; ok {
		return id
	}
	ix.keys = append(ix.keys, k)
	id := int32(len(ix.keys))
	ix.ids[k] = id
	return id
}

func (ix *Index[K]) Lookup(k K) (int32, bool) {
	id, ok := ix.ids[k]
	return id, ok
}

// Keys returns natural keys in surrogate key order; Keys()[i] has key i+1.
func (ix *Index[K]) Keys() []K {
	return ix.keys
}

func (ix *Index[K]) Len() int {
	return len(ix.keys)
}
