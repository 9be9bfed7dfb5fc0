// Package manifest reads Python dependency declarations from a
// pyproject.toml file and resolves version constraints into comparable
// version strings.
//
// Two declaration shapes are supported: the PEP 621 `project.dependencies`
// list of requirement strings, and the `tool.poetry.dependencies` table
// (where values are either constraint strings or tables with a `version`
// key). Declarations keep their manifest order.
package manifest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// depLineRE splits a PEP 508-style requirement line into name, optional
// extras suffix, and the trailing constraint.
var depLineRE = regexp.MustCompile(`^([A-Za-z0-9_.\-]+)(\[.*\])?(.*)$`)

// Declaration is one dependency as declared in the manifest.
// Constraint is the raw declared form: a string like "^1.2.3" or
// ">=2.0,<3", or a table (map) with at least a "version" entry.
// Immutable once read.
type Declaration struct {
	Name       string
	Constraint any
}

// document mirrors the two manifest shapes we read.
type document struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// Load reads the manifest at path and returns its dependency declarations
// in manifest order.
//
// A read or TOML-parse failure is returned as an error. Requirement lines
// that fail the dependency-line pattern are logged at warn level and
// skipped; they never fail the load. The `project.dependencies` list takes
// precedence; the poetry table is consulted when the list is empty. The
// poetry entry "python" declares the interpreter, not a package, and is
// excluded.
func Load(path string, logger *log.Logger) ([]Declaration, error) {
	if logger == nil {
		logger = log.Default()
	}

	var doc document
	md, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	if len(doc.Project.Dependencies) > 0 {
		return parseProjectList(doc.Project.Dependencies, logger), nil
	}
	return parsePoetryTable(md, doc.Tool.Poetry.Dependencies), nil
}

func parseProjectList(lines []string, logger *log.Logger) []Declaration {
	decls := make([]Declaration, 0, len(lines))
	for _, line := range lines {
		m := depLineRE.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil || m[1] == "" {
			logger.Warn("skipping unparseable dependency line", "line", line)
			continue
		}
		decls = append(decls, Declaration{
			Name:       m[1],
			Constraint: strings.TrimSpace(m[3]),
		})
	}
	return decls
}

// parsePoetryTable walks the decoded key order so declarations come out in
// manifest order; the deps map alone would iterate randomly.
func parsePoetryTable(md toml.MetaData, deps map[string]any) []Declaration {
	var decls []Declaration
	for _, key := range md.Keys() {
		if len(key) != 4 || key[0] != "tool" || key[1] != "poetry" || key[2] != "dependencies" {
			continue
		}
		name := key[3]
		if name == "python" {
			continue
		}
		decls = append(decls, Declaration{Name: name, Constraint: deps[name]})
	}
	return decls
}
