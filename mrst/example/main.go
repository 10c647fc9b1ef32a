package main

import (
	"fmt"
	"os"

	"github.com/aglyzov/go-mrst/mrst"
	"github.com/aglyzov/go-mrst/mrst/dot"
)

func main() {
	cases := []mrst.Case[uint64, string]{
		{Key: 8, Val: "function 1"},
		{Key: 16, Val: "function 1"},
		{Key: 33, Val: "function 1"},
		{Key: 37, Val: "function 1"},
		{Key: 41, Val: "function 1"},
		{Key: 60, Val: "function 1"},
		{Key: 144, Val: "function 2"},
		{Key: 264, Val: "function 2"},
		{Key: 291, Val: "function 2"},
		{Key: 1032, Val: "function 3"},
		{Key: 2048, Val: "function 4"},
		{Key: 2082, Val: "function 4"},
	}

	tree, err := mrst.BuildCases(cases, mrst.DefaultStrategies[uint64]())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	_ = tree.Dump(os.Stdout, nil)

	fmt.Printf("%+v\n", tree.Stats())

	for _, key := range []uint64{41, 291, 2082, 999} {
		if val, ok := tree.Lookup(key); ok {
			fmt.Printf("%-5d -> %s\n", key, val)
		} else {
			fmt.Printf("%-5d -> default\n", key)
		}
	}

	println("------")

	_ = dot.Write(os.Stdout, tree, nil)
}
