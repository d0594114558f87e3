package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"

	"github.com/combinekit/combine/sexpr"
)

type parseCmd struct {
	Canonical bool   `help:"Print canonical s-expressions instead of the Go AST."`
	File      string `arg:"" optional:"" help:"Source file, defaults to stdin." type:"existingfile"`
}

func (c *parseCmd) Run() error {
	var (
		src []byte
		err error
	)
	if c.File == "" {
		src, err = io.ReadAll(os.Stdin)
	} else {
		src, err = os.ReadFile(c.File)
	}
	if err != nil {
		return err
	}
	nodes, err := sexpr.ParseAll(string(src))
	if err != nil {
		return err
	}
	for _, node := range nodes {
		if c.Canonical {
			fmt.Println(node)
		} else {
			repr.Println(node)
		}
	}
	return nil
}
