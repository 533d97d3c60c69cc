package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/calculator"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		echo, raw    bool
	)
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string with -raw")
	flag.BoolVar(&raw, "raw", false, "print results with -fmt instead of calculator formatting")
	flag.BoolVar(&echo, "echo", false, "print postfix forms")
	flag.Parse()

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		srcs, err = lines(f)
		if err != nil {
			log.Fatal(err)
		}
	}
	srcs = append(srcs, flag.Args()...)

	verb += "\n"
	for _, src := range srcs {
		src = aliases.Replace(src)
		if echo {
			fmt.Printf("%v : ", calculator.Parse(src))
		}
		if !raw {
			fmt.Println(calculator.Display(src))
			continue
		}
		r, err := calculator.Evaluate(src)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf(verb, r)
	}
}

// aliases rewrites keyboard spellings to calculator tokens.
var aliases = strings.NewReplacer(
	"*", "×",
	"/", "÷",
	"sqrt", "√",
	"xʸ", calculator.Label("xʸ"),
)

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}

// lines reads the non-blank lines of r.
func lines(r io.Reader) ([]string, error) {
	var v []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			v = append(v, s)
		}
	}
	return v, sc.Err()
}
