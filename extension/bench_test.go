package extension

import (
	"math/big"
	"strconv"
	"testing"

	fr "github.com/consensys/gnark-crypto/field/goldilocks"
)

func benchExt(b *testing.B, degree int) *glExt {
	b.Helper()
	f, err := New(goldilocksParams(), WithDegree(degree))
	if err != nil {
		b.Fatal(err)
	}
	return f
}

func BenchmarkMul(b *testing.B) {
	for _, degree := range []int{2, 4, 5} {
		f := benchExt(b, degree)
		x := f.MustSample()
		y := f.MustSample()
		b.Run(degreeName(degree), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x = f.Mul(x, y)
			}
		})
	}
}

func BenchmarkSquare(b *testing.B) {
	for _, degree := range []int{2, 4, 5} {
		f := benchExt(b, degree)
		x := f.MustSample()
		b.Run(degreeName(degree), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x = f.Square(x)
			}
		})
	}
}

func BenchmarkFrobenius(b *testing.B) {
	f := benchExt(b, 4)
	x := f.MustSample()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = f.Frobenius(x)
	}
}

func BenchmarkInverse(b *testing.B) {
	for _, degree := range []int{2, 4, 5} {
		f := benchExt(b, degree)
		x := f.MustSample()
		b.Run(degreeName(degree), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x, _ = f.Inverse(x)
			}
		})
	}
}

func BenchmarkExp(b *testing.B) {
	f := benchExt(b, 4)
	x := f.MustSample()
	k := new(big.Int).Sub(f.Order(), big.NewInt(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Exp(x, k)
	}
}

func BenchmarkBatchInvert(b *testing.B) {
	f := benchExt(b, 4)
	for _, size := range []int{16, 256, 4096} {
		batch := make([]Element[fr.Element], size)
		for i := range batch {
			batch[i] = f.MustSample()
		}
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				f.BatchInvert(batch)
			}
		})
	}
}
