// Command sqllint checks that every inline SQL constant carries a first-line
// "--sql <uuid>" marker and that no marker id is reused. The markers are what
// the SQL runner logs, so a missing or duplicated one breaks query auditing.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	sqlKeyword = regexp.MustCompile(`(?i)\b(select|insert|update|delete|with)\b`)
	markerLine = regexp.MustCompile(`^--sql ([0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12})$`)
)

type finding struct {
	pos     token.Position
	constN  string
	message string
}

func main() {
	flag.Parse()
	roots := flag.Args()
	if len(roots) == 0 {
		roots = []string{"internal/sqlinline"}
	}

	findings, err := lint(roots)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sqllint: %v\n", err)
		os.Exit(1)
	}
	if len(findings) > 0 {
		for _, f := range findings {
			fmt.Fprintf(os.Stderr, "%s:%d: %s: %s\n", f.pos.Filename, f.pos.Line, f.constN, f.message)
		}
		os.Exit(1)
	}
}

func lint(roots []string) ([]finding, error) {
	var findings []finding
	seen := make(map[string]token.Position)

	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if strings.HasPrefix(d.Name(), ".") || d.Name() == "vendor" {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
				return nil
			}
			found, err := lintFile(path, seen)
			if err != nil {
				return err
			}
			findings = append(findings, found...)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return findings, nil
}

func lintFile(path string, seen map[string]token.Position) ([]finding, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}

	var findings []finding
	ast.Inspect(file, func(n ast.Node) bool {
		spec, ok := n.(*ast.ValueSpec)
		if !ok {
			return true
		}
		for i, value := range spec.Values {
			lit, ok := value.(*ast.BasicLit)
			if !ok || lit.Kind != token.STRING {
				continue
			}
			raw, err := unquote(lit.Value)
			if err != nil || !sqlKeyword.MatchString(raw) {
				continue
			}

			pos := fset.Position(lit.Pos())
			name := "_"
			if i < len(spec.Names) && spec.Names[i] != nil {
				name = spec.Names[i].Name
			}

			m := markerLine.FindStringSubmatch(headerLine(raw))
			if m == nil {
				findings = append(findings, finding{pos: pos, constN: name, message: "missing --sql <uuid> marker on first line"})
				continue
			}
			if prev, dup := seen[m[1]]; dup {
				findings = append(findings, finding{
					pos:     pos,
					constN:  name,
					message: fmt.Sprintf("marker %s already used at %s:%d", m[1], prev.Filename, prev.Line),
				})
				continue
			}
			seen[m[1]] = pos
		}
		return true
	})
	return findings, nil
}

func headerLine(s string) string {
	s = strings.TrimLeft(s, " \t\r\n")
	if idx := strings.IndexAny(s, "\r\n"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

func unquote(lit string) (string, error) {
	if strings.HasPrefix(lit, "`") {
		return strings.Trim(lit, "`"), nil
	}
	return strconv.Unquote(lit)
}
