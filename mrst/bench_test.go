package mrst

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

var benchSizes = []int{16, 256, 4096}

func benchCases(total int) []Case[uint64, string] {
	const seed = 1234567890

	return fakeCases(gofakeit.New(seed), total, 32)
}

func BenchmarkGoMap_Get(b *testing.B) {
	for _, total := range benchSizes {
		var (
			cases = benchCases(total)
			m     = make(map[uint64]string, len(cases))
		)

		for _, c := range cases {
			m[c.Key] = c.Val
		}

		b.Run(fmt.Sprint(total), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = m[cases[i%len(cases)].Key]
			}
		})
	}
}

func BenchmarkTree_Lookup(b *testing.B) {
	for _, total := range benchSizes {
		cases := benchCases(total)

		tree, err := BuildCases(cases, DefaultStrategies[uint64](), WithPolicy(CriticalBound))
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprint(total), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = tree.Lookup(cases[i%len(cases)].Key)
			}
		})
	}
}

func BenchmarkBuild(b *testing.B) {
	for _, total := range benchSizes {
		cases := benchCases(total)

		for _, depth := range []int{0, 2} {
			b.Run(fmt.Sprintf("%d/parallel-%d", total, depth), func(b *testing.B) {
				b.ReportAllocs()

				for i := 0; i < b.N; i++ {
					_, err := BuildCases(cases, DefaultStrategies[uint64](), WithPolicy(CriticalBound), WithParallelDepth(depth))
					if err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkCriticalWindow(b *testing.B) {
	keys := fakeKeys(gofakeit.New(1234567890), 1024, 64)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = CriticalWindow(keys)
	}
}
