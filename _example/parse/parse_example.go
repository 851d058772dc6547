package main

import (
	"fmt"
	"log"

	lispcomb "github.com/xiam/lisp-comb"
	"github.com/xiam/lisp-comb/lisp"
)

func main() {
	input := `(asd ("asdasd" asd ("asd") asd) "asdasd" ())`

	obj, err := lispcomb.Parse([]byte(input))
	if err != nil {
		log.Fatal("lispcomb.Parse:", err)
	}

	lisp.Print(obj)

	fmt.Println(obj.Encode())
}
