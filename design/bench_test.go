package design_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/statkit/margins/design"
)

// benchSpec builds a design of n plain terms followed by n/4 pairwise
// interactions, mimicking a wide fitted model.
func benchSpec(n int) (string, int) {
	tokens := make([]string, 0, n+n/4)
	for i := 1; i <= n; i++ {
		tokens = append(tokens, fmt.Sprintf("%d", i))
	}
	for i := 1; i+1 <= n && len(tokens) < n+n/4; i += 4 {
		tokens = append(tokens, fmt.Sprintf("%d*%d", i, i+1))
	}

	return strings.Join(tokens, ","), len(tokens)
}

func BenchmarkParse_Small(b *testing.B) {
	spec, n := benchSpec(8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := design.Parse(spec, n); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Wide(b *testing.B) {
	spec, n := benchSpec(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := design.Parse(spec, n); err != nil {
			b.Fatal(err)
		}
	}
}
