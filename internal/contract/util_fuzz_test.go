package contract

import (
	"strings"
	"testing"
)

// FuzzTruncateName fuzzes the TruncateName function with random names and widths.
func FuzzTruncateName(f *testing.F) {
	seeds := []struct {
		name     string
		maxWidth int
	}{
		{"billing-service", 10},
		{"a", 40},
		{"", 0},
		{"internal/order/fulfillment/shipping", 4},
		{"名前が長いコンポーネント", 8}, // multibyte runes
		{"exact-fit", 9},
	}
	for _, seed := range seeds {
		f.Add(seed.name, seed.maxWidth)
	}

	f.Fuzz(func(t *testing.T, name string, maxWidth int) {
		out := TruncateName(name, maxWidth)
		if maxWidth > 3 && len([]rune(out)) > maxWidth {
			t.Errorf("TruncateName(%q, %d) = %q exceeds width", name, maxWidth, out)
		}
		if out != name && !strings.HasSuffix(out, "...") {
			t.Errorf("TruncateName(%q, %d) = %q truncated without ellipsis", name, maxWidth, out)
		}
	})
}
