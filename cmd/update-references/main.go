package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"gridcanvas/pkg/visualtest"
)

// Simple tool to generate reference images for visual regression tests
func main() {
	dir := pflag.StringP("dir", "d", "pkg/visualtest/testdata/reference", "directory to write reference images to")
	list := pflag.BoolP("list", "l", false, "list scenario names and exit")
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Reference Image Generator")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  go run ./cmd/update-references [flags] [scenario...]")
		fmt.Fprintln(os.Stderr)
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *list {
		for _, s := range visualtest.Scenarios() {
			fmt.Println(s.Name)
		}
		return
	}

	if err := generate(*dir, pflag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✓ Reference images generated successfully")
}

// generate writes the reference image of every scenario named in only,
// or of all scenarios when only is empty.
func generate(dir string, only []string) error {
	want := make(map[string]bool, len(only))
	for _, name := range only {
		want[name] = true
	}

	found := 0
	for _, s := range visualtest.Scenarios() {
		if len(want) > 0 && !want[s.Name] {
			continue
		}
		found++
		ref := visualtest.ReferencePath(dir, s)
		if err := visualtest.UpdateReferenceImage(s, ref); err != nil {
			return fmt.Errorf("failed to generate %s: %w", ref, err)
		}
	}
	if found < len(want) {
		return fmt.Errorf("unknown scenario in %v", only)
	}
	return nil
}
