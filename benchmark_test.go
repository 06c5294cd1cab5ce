package nbt_test

import (
	"testing"

	nbt "github.com/Offroaders123/nbt-go"
)

func solarSystem() *nbt.Compound {
	planet := func(pos int32, name string, massEarths float64, satellites ...interface{}) *nbt.Compound {
		return nbt.NewCompound().
			Set("pos", nbt.Int(pos)).
			Set("name", nbt.String(name)).
			Set("mass_earths", nbt.Double(massEarths)).
			Set("notable_satellites", nbt.NewList(nbt.TagString, satellites...))
	}

	return nbt.NewCompound().
		Set("galaxy", nbt.String("Milky Way")).
		Set("age", nbt.Int(4568)).
		Set("stars", nbt.NewList(nbt.TagString, nbt.String("Sun"))).
		Set("planets", nbt.NewList(nbt.TagCompound,
			planet(1, "Mercury", 0.055),
			planet(2, "Venus", 0.815),
			planet(3, "Earth", 1.0, nbt.String("Moon")),
			planet(4, "Mars", 0.107, nbt.String("Phobos"), nbt.String("Deimos")),
			planet(5, "Jupiter", 317.83, nbt.String("Io"), nbt.String("Europa"), nbt.String("Ganymede"), nbt.String("Callisto")),
			planet(6, "Saturn", 95.16, nbt.String("Titan"), nbt.String("Rhea"), nbt.String("Enceladus")),
			planet(7, "Uranus", 14.536, nbt.String("Oberon"), nbt.String("Titania"), nbt.String("Miranda"), nbt.String("Ariel"), nbt.String("Umbriel")),
			planet(8, "Neptune", 17.15, nbt.String("Triton")),
		))
}

func BenchmarkMarshal(b *testing.B) {
	root := solarSystem()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := nbt.Marshal("solar system", root)
		if err != nil {
			b.FailNow()
		}
	}
}

func BenchmarkMarshalGzip(b *testing.B) {
	root := solarSystem()
	enc := nbt.Encoder{Compression: nbt.GzipCompressor{}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := enc.Marshal("solar system", root)
		if err != nil {
			b.FailNow()
		}
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	doc, err := nbt.Marshal("solar system", solarSystem())
	if err != nil {
		b.FailNow()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := nbt.Unmarshal(doc)
		if err != nil {
			b.FailNow()
		}
	}
}

func BenchmarkUnmarshalGzip(b *testing.B) {
	enc := nbt.Encoder{Compression: nbt.GzipCompressor{}}
	doc, err := enc.Marshal("solar system", solarSystem())
	if err != nil {
		b.FailNow()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := nbt.Unmarshal(doc)
		if err != nil {
			b.FailNow()
		}
	}
}
