package deriv_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/statkit/margins/deriv"
	"github.com/statkit/margins/design"
)

// benchRegistry parses a wide design: n plain terms plus n/2 pairwise
// interactions over consecutive terms.
func benchRegistry(b *testing.B, n int) *design.Registry {
	b.Helper()
	tokens := make([]string, 0, n+n/2)
	for i := 1; i <= n; i++ {
		tokens = append(tokens, fmt.Sprintf("%d", i))
	}
	for i := 1; i+1 <= n && len(tokens) < n+n/2; i += 2 {
		tokens = append(tokens, fmt.Sprintf("%d*%d", i, i+1))
	}
	reg, err := design.Parse(strings.Join(tokens, ","), len(tokens))
	if err != nil {
		b.Fatal(err)
	}

	return reg
}

func BenchmarkBuild_Wide(b *testing.B) {
	reg := benchRegistry(b, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := deriv.Build(reg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRender_Wide(b *testing.B) {
	reg := benchRegistry(b, 100)
	m, err := deriv.Build(reg)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Render("x")
	}
}
