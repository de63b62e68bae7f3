package aref

import (
	"strconv"
	"strings"

	"github.com/lexiform/algex/internal/xerrors"
)

// Cache is the symbol cache (component 1 of the design): a process-local,
// per-search mapping from a structural key -- the joined symbols of a
// composite's children -- to a freshly minted "?k" name. It is the sole
// writer of that mapping and is shared, by reference, by every Model
// descended from the root that created it.
//
// Modeled on the teacher's register allocator (internal/compregister's
// globalNames map[string]uint16 + nextGlobalID counter): a flat map plus a
// monotonic counter, no pruning, no locking -- a single search is
// single-threaded.
type Cache struct {
	byKey    map[string]string
	nextID   int
	maxID    int // 0 means unbounded
}

// NewCache creates an empty symbol cache. maxID, if positive, bounds the
// number of distinct composites a single search may intern before Intern
// starts returning ResourceExhaustion.
func NewCache(maxID int) *Cache {
	return &Cache{
		byKey: make(map[string]string),
		maxID: maxID,
	}
}

func compositeKey(children []*Ref) string {
	var sb strings.Builder
	for i, c := range children {
		if i > 0 {
			sb.WriteByte(0) // NUL separator: symbols never contain it
		}
		sb.WriteString(c.Symbol)
	}
	return sb.String()
}

// Intern returns the canonical "?k" symbol for a composite with the given
// children, minting a fresh one only the first time this exact child
// sequence is seen. Idempotent and deterministic: the same key always maps
// to the same symbol for the lifetime of the cache.
func (c *Cache) Intern(children []*Ref) (string, error) {
	key := compositeKey(children)
	if sym, ok := c.byKey[key]; ok {
		return sym, nil
	}
	if c.maxID > 0 && c.nextID >= c.maxID {
		return "", xerrors.NewResourceExhaustion("symbol cache exhausted", nil)
	}
	c.nextID++
	sym := "?" + strconv.Itoa(c.nextID)
	c.byKey[key] = sym
	return sym, nil
}

// Size reports how many distinct composites have been interned so far.
func (c *Cache) Size() int {
	return len(c.byKey)
}
