package main

import (
	crand "crypto/rand"
	"encoding/hex"
	"fmt"
	mrand "math/rand"

	nbt "github.com/Offroaders123/nbt-go"
)

func main() {

	for {
		l := 4 + mrand.Intn(200)
		doc := make([]byte, l)
		crand.Read(doc)
		doc[0] = 0x0a // root compound tag
		fmt.Println(hex.Dump(doc))
		_, _, err := nbt.Unmarshal(doc)
		fmt.Println("err=", err)
	}

}
