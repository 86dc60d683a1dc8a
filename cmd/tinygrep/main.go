// Command tinygrep searches input lines for matches of a regular
// expression.
//
// Usage:
//
//	tinygrep -E <pattern> [file...]
//	tinygrep -r -E <pattern> <dir...>
//
// With no file arguments, standard input is read. With -r, directories
// are walked recursively. Each matching line is written verbatim; with
// -r, or when more than one input is involved, lines are prefixed with
// "<path>:".
//
// Exit status: 0 if any line matched, 1 if none did, 2 on error.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/coregx/tinygrep"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("tinygrep", flag.ContinueOnError)
	flags.SetOutput(stderr)
	pattern := flags.String("E", "", "pattern to search for")
	recursive := flags.Bool("r", false, "search directories recursively")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *pattern == "" {
		fmt.Fprintln(stderr, "tinygrep: missing -E <pattern>")
		return 2
	}

	re, err := tinygrep.Compile(*pattern)
	if err != nil {
		fmt.Fprintf(stderr, "tinygrep: %v\n", err)
		return 2
	}

	paths := flags.Args()
	if *recursive {
		paths, err = expandDirs(paths)
		if err != nil {
			fmt.Fprintf(stderr, "tinygrep: %v\n", err)
			return 2
		}
	}

	g := &grepper{
		re:       re,
		out:      stdout,
		errOut:   stderr,
		prefix:   *recursive || len(paths) > 1,
		exitCode: 1,
	}

	if len(paths) == 0 {
		g.searchReader("", stdin)
	} else {
		for _, path := range paths {
			f, err := os.Open(path)
			if err != nil {
				fmt.Fprintf(stderr, "tinygrep: %v\n", err)
				g.exitCode = 2
				continue
			}
			g.searchReader(path, f)
			f.Close()
		}
	}
	return g.exitCode
}

// expandDirs walks each argument that is a directory and returns the
// regular files found, in walk order. Plain file arguments pass through.
func expandDirs(paths []string) ([]string, error) {
	var out []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() {
				out = append(out, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

type grepper struct {
	re       *tinygrep.Regexp
	out      io.Writer
	errOut   io.Writer
	prefix   bool
	exitCode int
}

// searchReader matches every line of r against the pattern, writing the
// matching lines to the output. The engine is invoked once per line.
func (g *grepper) searchReader(path string, r io.Reader) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		ok, err := g.re.Match(line)
		if err != nil {
			fmt.Fprintf(g.errOut, "tinygrep: %s: %v\n", displayPath(path), err)
			g.exitCode = 2
			return
		}
		if !ok {
			continue
		}
		if g.exitCode == 1 {
			g.exitCode = 0
		}
		if g.prefix && path != "" {
			fmt.Fprintf(g.out, "%s:%s\n", path, line)
		} else {
			fmt.Fprintf(g.out, "%s\n", line)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(g.errOut, "tinygrep: %s: %v\n", displayPath(path), err)
		g.exitCode = 2
	}
}

func displayPath(path string) string {
	if path == "" {
		return "(stdin)"
	}
	return path
}
