//go:build gofuzz
// +build gofuzz

package nbt

import "github.com/google/go-cmp/cmp"

func Fuzz(data []byte) int {
	name, root, err := Unmarshal(data)
	if err != nil {
		return 0
	}

	enc, err := Marshal(name, root)
	if err != nil {
		panic("unable to marshal")
	}

	name2, root2, err := Unmarshal(enc)
	if err != nil {
		panic("unmarshalling marshalled data")
	}

	if name != name2 {
		panic("failed to roundtrip root name")
	}

	if diff := cmp.Diff(root, root2, cmp.AllowUnexported(Compound{})); diff != "" {
		panic("failed to roundtrip: " + diff)
	}

	return 1
}
