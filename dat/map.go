package dat

// PagedMapBMP maps BMP code points (0..0xFFFF) to dense character codes.
// It's a two-level page table:
//   - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - Pages is a flat array of NumPages*256 entries.
//
// Lookup is O(1) with two array reads. A map is filled once and then only
// read, so concurrent readers need no locking.
type PagedMapBMP struct {
	Top   [256]uint16 // page index (1-based); 0 means none
	Pages []int32     // flat: NumPages*256
}

// MaxBMP is the largest code point a PagedMapBMP can hold.
const MaxBMP = 0xFFFF

// Code returns the dense code for r, or 0 if r is absent or outside the BMP.
func (m *PagedMapBMP) Code(r rune) int32 {
	if r < 0 || r > MaxBMP {
		return 0
	}
	pi := m.Top[r>>8]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << 8 // *256
	return m.Pages[base+int(r&0xFF)]
}

// NumPages returns the number of allocated pages.
func (m *PagedMapBMP) NumPages() int { return len(m.Pages) >> 8 }

// EnsurePage ensures that the page for high byte hi exists.
// Returns the 1-based page index.
func (m *PagedMapBMP) EnsurePage(hi uint16) uint16 {
	pi := m.Top[hi]
	if pi != 0 {
		return pi
	}
	m.Pages = append(m.Pages, make([]int32, 256)...)
	pi = uint16(len(m.Pages) >> 8)
	m.Top[hi] = pi
	return pi
}

// Set sets mapping r -> code (code may be 0 to clear). Code points outside
// the BMP are ignored and Set reports false for them.
func (m *PagedMapBMP) Set(r rune, code int32) bool {
	if r < 0 || r > MaxBMP {
		return false
	}
	hi := uint16(r >> 8)
	pi := m.Top[hi]
	if pi == 0 {
		if code == 0 {
			return true
		}
		pi = m.EnsurePage(hi)
	}
	base := int(pi-1) << 8
	m.Pages[base+int(r&0xFF)] = code
	return true
}
