package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	phraze "github.com/reoring/phraze"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "lint":
		lintCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "phraze CLI\n\nUsage:\n  phraze lint <reference.json|yaml> <other...>\n\nNotes:\n  - lint checks that every locale file exposes the same key tree as the reference file.")
}

// lintCmd compares the key structure of locale files against the first one.
// Structure means paths and their kind (text leaf vs. group); leaf text may differ.
func lintCmd(args []string) {
	fs := flag.NewFlagSet("lint", flag.ExitOnError)
	_ = fs.Parse(args)
	files := fs.Args()
	if len(files) < 2 {
		fs.Usage()
		fmt.Fprintln(os.Stderr, "lint needs a reference file and at least one file to compare")
		os.Exit(2)
	}

	ref, err := structureOf(files[0])
	if err != nil {
		fatalf("%s: %v", files[0], err)
	}

	bad := false
	for _, f := range files[1:] {
		got, err := structureOf(f)
		if err != nil {
			fatalf("%s: %v", f, err)
		}
		for _, d := range diffStructures(ref, got) {
			bad = true
			fmt.Fprintf(os.Stderr, "%s: %s\n", f, d)
		}
	}
	if bad {
		os.Exit(1)
	}
}

// structureOf flattens a locale file into path -> kind ("text" or "group").
func structureOf(path string) (map[string]string, error) {
	data, err := phraze.FileSource(path).Decode()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string)
	flatten(data, "", out)
	return out, nil
}

func flatten(m map[string]any, prefix string, out map[string]string) {
	for k, v := range m {
		p := prefix + "/" + k
		if g, ok := v.(map[string]any); ok {
			out[p] = "group"
			flatten(g, p, out)
			continue
		}
		out[p] = "text"
	}
}

func diffStructures(ref, got map[string]string) []string {
	var diffs []string
	for p, kind := range ref {
		gk, ok := got[p]
		if !ok {
			diffs = append(diffs, fmt.Sprintf("missing %s %s", kind, p))
			continue
		}
		if gk != kind {
			diffs = append(diffs, fmt.Sprintf("%s is a %s, expected %s", p, gk, kind))
		}
	}
	for p, kind := range got {
		if _, ok := ref[p]; !ok {
			diffs = append(diffs, fmt.Sprintf("extra %s %s", kind, p))
		}
	}
	sort.Strings(diffs)
	return diffs
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
