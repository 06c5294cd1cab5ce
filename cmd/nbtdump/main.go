package main

import (
	"fmt"
	"io"
	"log"
	"os"

	nbt "github.com/Offroaders123/nbt-go"
	"github.com/davecgh/go-spew/spew"
	flag "github.com/spf13/pflag"
)

var printName = flag.BoolP("name", "n", false, "print each document's root name")

func process(fname string, b []byte) {
	name, root, err := nbt.Unmarshal(b)

	if err != nil {
		log.Fatalf("error processing %s: %s", fname, err)
	}

	if *printName {
		fmt.Printf("%s: %q\n", fname, name)
	}

	spew.Dump(root)
}

func main() {

	flag.Parse()

	if flag.NArg() == 0 {
		b, _ := io.ReadAll(os.Stdin)
		process("stdin", b)
		return
	}

	for _, arg := range flag.Args() {
		b, _ := os.ReadFile(arg)
		process(arg, b)
	}
}
