package testing

import (
	"os"
	"testing"

	"github.com/SofiaIPalladino/2024-grupo-7/lib/company"
	"github.com/SofiaIPalladino/2024-grupo-7/lib/persist"
)

// RunPersistenceBenchmarks runs all benchmarks for a persistence implementation
func RunPersistenceBenchmarks(b *testing.B, name string, factory PersistenceFactory) {
	b.Run(name, func(b *testing.B) {
		b.Run("WriteSample", func(b *testing.B) {
			c, _ := company.NewSample()
			benchmarkWrite(b, factory(), c)
		})

		b.Run("WriteLarge", func(b *testing.B) {
			benchmarkWrite(b, factory(), newLargeCompany(1000))
		})

		b.Run("ReadSample", func(b *testing.B) {
			c, _ := company.NewSample()
			benchmarkRead(b, factory(), c)
		})

		b.Run("ReadLarge", func(b *testing.B) {
			benchmarkRead(b, factory(), newLargeCompany(1000))
		})

		b.Run("SaveAtomic", func(b *testing.B) {
			benchmarkSaveAtomic(b, factory(), newLargeCompany(100))
		})
	})
}

// --------------------------------------------------------------------------
// Benchmark functions
// --------------------------------------------------------------------------

func benchmarkWrite(b *testing.B, p persist.IPersistence, c *company.Company) {
	name := path(b, "bench.bin")
	if err := p.OpenOutput(name); err != nil {
		b.Fatal(err)
	}
	defer p.CloseOutput()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.Write(c); err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()

	if err := p.CloseOutput(); err != nil {
		b.Fatal(err)
	}
	if info, err := os.Stat(name); err == nil {
		b.SetBytes(info.Size() / int64(b.N))
	}
}

func benchmarkRead(b *testing.B, p persist.IPersistence, c *company.Company) {
	name := path(b, "bench.bin")
	records := make([]any, b.N)
	for i := range records {
		records[i] = c
	}
	if err := persist.WriteFile(p, name, records...); err != nil {
		b.Fatal(err)
	}

	if err := p.OpenInput(name); err != nil {
		b.Fatal(err)
	}
	defer p.CloseInput()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Read(); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkSaveAtomic(b *testing.B, p persist.IPersistence, c *company.Company) {
	name := path(b, "bench.bin")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := persist.SaveAtomic(p, name, c); err != nil {
			b.Fatal(err)
		}
	}
}
