package census

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/mod/modfile"
)

// manifestParser extracts third-party library names from one manifest file.
type manifestParser func(path string, raw []byte) (map[string]struct{}, error)

type manifest struct {
	File     string
	Language string
	Parse    manifestParser
}

// manifests lists the dependency files the census understands, one per
// ecosystem.
var manifests = []manifest{
	{"requirements.txt", "python", parseRequirements},
	{"package.json", "typescript", parsePackageJSON},
	{"go.mod", "go", parseGoMod},
	{"pom.xml", "java", parsePomXML},
	{"Gemfile", "ruby", parseGemfile},
}

// standardLibraries filters names that belong to the language runtime rather
// than a third-party ecosystem.
var standardLibraries = map[string]map[string]struct{}{
	"python": toSet(
		"os", "sys", "json", "re", "collections", "datetime", "pathlib",
		"math", "random", "time", "io", "csv", "logging", "argparse",
		"subprocess", "tempfile", "shutil", "hashlib", "itertools", "functools",
		"threading", "multiprocessing", "socket", "http", "urllib", "email",
	),
	"typescript": toSet(
		"fs", "path", "http", "https", "url", "os", "crypto", "stream",
		"events", "util", "buffer", "querystring", "child_process",
	),
	"java": toSet(
		"java.lang", "java.util", "java.io", "java.net", "java.nio",
		"java.time", "java.text", "java.math", "java.security",
		"java.sql", "java.awt", "javax.swing",
	),
	"go": toSet(
		"fmt", "strings", "strconv", "time", "json", "os",
		"filepath", "sync", "io", "http", "reflect", "errors",
	),
	"ruby": toSet(
		"kernel", "object", "module", "class", "string", "array",
		"hash", "integer", "float", "file", "dir", "io", "time", "regexp",
	),
}

func toSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func isStandard(language, name string) bool {
	_, ok := standardLibraries[language][name]
	return ok
}

var requirementNameRe = regexp.MustCompile(`^[a-zA-Z0-9_\-.]+`)

// parseRequirements reads a pip requirements.txt, taking the package name
// before any version specifier or extras bracket.
func parseRequirements(_ string, raw []byte) (map[string]struct{}, error) {
	deps := map[string]struct{}{}
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name := strings.ToLower(requirementNameRe.FindString(line))
		if name == "" || isStandard("python", name) {
			continue
		}
		deps[name] = struct{}{}
	}
	return deps, nil
}

// parsePackageJSON collects production and development dependencies.
func parsePackageJSON(path string, raw []byte) (map[string]struct{}, error) {
	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(raw, &pkg); err != nil {
		return nil, fmt.Errorf("failed to parse '%s': %w", path, err)
	}

	deps := map[string]struct{}{}
	for name := range pkg.Dependencies {
		name = strings.ToLower(name)
		if !isStandard("typescript", name) {
			deps[name] = struct{}{}
		}
	}
	for name := range pkg.DevDependencies {
		name = strings.ToLower(name)
		if !isStandard("typescript", name) {
			deps[name] = struct{}{}
		}
	}
	return deps, nil
}

// parseGoMod collects direct requires, named by the last module path segment.
func parseGoMod(path string, raw []byte) (map[string]struct{}, error) {
	file, err := modfile.Parse(path, raw, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse '%s': %w", path, err)
	}

	deps := map[string]struct{}{}
	for _, require := range file.Require {
		if require.Indirect {
			continue
		}
		segments := strings.Split(require.Mod.Path, "/")
		name := strings.ToLower(segments[len(segments)-1])
		if name == "" || isStandard("go", name) {
			continue
		}
		deps[name] = struct{}{}
	}
	return deps, nil
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
}

// parsePomXML collects Maven dependencies from anywhere in the POM,
// filtering JDK group IDs.
func parsePomXML(path string, raw []byte) (map[string]struct{}, error) {
	deps := map[string]struct{}{}
	decoder := xml.NewDecoder(strings.NewReader(string(raw)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "dependency" {
			continue
		}

		var dep pomDependency
		if err := decoder.DecodeElement(&dep, &start); err != nil {
			return nil, fmt.Errorf("failed to parse '%s': %w", path, err)
		}
		if dep.ArtifactID == "" {
			continue
		}

		standard := false
		for name := range standardLibraries["java"] {
			if strings.Contains(dep.GroupID, name) {
				standard = true
				break
			}
		}
		if !standard {
			deps[strings.ToLower(dep.ArtifactID)] = struct{}{}
		}
	}
	return deps, nil
}

var gemRe = regexp.MustCompile(`^gem\s+['"]([a-zA-Z0-9_\-]+)['"]`)

// parseGemfile collects gem declarations.
func parseGemfile(_ string, raw []byte) (map[string]struct{}, error) {
	deps := map[string]struct{}{}
	for _, line := range strings.Split(string(raw), "\n") {
		match := gemRe.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}
		name := strings.ToLower(match[1])
		if !isStandard("ruby", name) {
			deps[name] = struct{}{}
		}
	}
	return deps, nil
}
