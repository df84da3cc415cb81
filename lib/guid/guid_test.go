package guid

import (
	"bytes"
	"sync"
	"testing"
)

func TestShape(t *testing.T) {
	id := New()
	if len(id) != size {
		t.Fatalf("minted id %q has length %d, want %d", id, len(id), size)
	}
	if id[clockLen] != '-' {
		t.Fatalf("minted id %q is missing the clock/rand divider", id)
	}
	for i := 0; i < len(id); i++ {
		if i == clockLen {
			continue
		}
		if bytes.IndexByte(alphabet[:], id[i]) < 0 {
			t.Fatalf("minted id %q strays outside the alphabet", id)
		}
	}
}

func TestMintsAreDistinctAndOrdered(t *testing.T) {
	var wg sync.WaitGroup
	for n := 0; n < 4; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen := make(map[string]bool, 100000)
			prev := ""
			for i := 0; i < 100000; i++ {
				id := New()
				if seen[id] {
					t.Errorf("minted duplicate id %q", id)
					return
				}
				seen[id] = true
				if prev != "" && id <= prev {
					t.Errorf("id %q should sort after its predecessor %q", id, prev)
					return
				}
				prev = id
			}
		}()
	}
	wg.Wait()
}
