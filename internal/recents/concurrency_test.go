package recents

import (
	"sync"
	"testing"

	"github.com/atomicstack/tmux-popup-glyphs/internal/glyph"
	"go.uber.org/goleak"
)

// checkView reports the first capacity, duplicate or layout violation in the
// cache's current view.
func checkView(t *testing.T, c *Cache) bool {
	t.Helper()
	view := c.View()
	if view.Len() > c.Capacity() {
		t.Errorf("view size %d exceeds capacity", view.Len())
		return false
	}
	seen := make(map[glyph.Item]struct{}, view.Len())
	for j := 0; j < view.Len(); j++ {
		entry := view.At(j)
		if _, dup := seen[entry.Item]; dup {
			t.Errorf("duplicate entry %v in view", entry.Item)
			return false
		}
		seen[entry.Item] = struct{}{}
		if entry.Rect != c.Metrics().Cell(j) {
			t.Errorf("stale rect at %d", j)
			return false
		}
	}
	return true
}

func TestConcurrentCallersKeepCacheConsistent(t *testing.T) {
	defer goleak.VerifyNone(t)

	c, _ := newTestCache(t, 5, true)
	items := []glyph.Item{itemA, itemB, itemC, itemD, itemE}
	catalog := sliceCatalog(items)
	encoded := Encode([]glyph.Item{itemE, itemC, itemA})

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				item := items[(w+i)%len(items)]
				switch i % 4 {
				case 0:
					c.AddFront(item)
				case 1:
					c.AddBack(item)
				case 2:
					c.AddPending(item)
				default:
					c.FlushPending()
				}
				if !checkView(t, c) {
					return
				}
			}
		}(w)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			c.LoadEncoded(encoded, catalog)
			if i%10 == 0 {
				c.Load(catalog)
			}
			if !checkView(t, c) {
				return
			}
		}
	}()
	wg.Wait()
	checkView(t, c)
}
