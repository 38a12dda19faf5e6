package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Parser extracts technology tags from the raw contents of a single
// manifest file. Each manifest format has its own extraction rule, but all
// share the same contract: input is file content, output is a list of tags
// that may contain duplicates. Deduplication is the caller's job.
type Parser struct{}

// NewParser creates a new manifest parser.
func NewParser() *Parser {
	return &Parser{}
}

type packageJSON struct {
	Dependencies    map[string]json.RawMessage `json:"dependencies"`
	DevDependencies map[string]json.RawMessage `json:"devDependencies"`
	Scripts         map[string]json.RawMessage `json:"scripts"`
}

// ParsePackageJSON extracts tags from a package.json manifest. Dependency
// and devDependency keys are matched exactly against the node tag table;
// a dev or start script implies the node tag. Unknown dependency keys are
// ignored.
func (p *Parser) ParsePackageJSON(content []byte) ([]string, error) {
	var pkg packageJSON
	if err := json.Unmarshal(content, &pkg); err != nil {
		return nil, fmt.Errorf("failed to parse package.json: %w", err)
	}

	var tags []string
	tags = append(tags, tagsFromNodeDependencies(pkg.Dependencies)...)
	tags = append(tags, tagsFromNodeDependencies(pkg.DevDependencies)...)

	if _, ok := pkg.Scripts["dev"]; ok {
		tags = append(tags, "node")
	} else if _, ok := pkg.Scripts["start"]; ok {
		tags = append(tags, "node")
	}

	return tags, nil
}

func tagsFromNodeDependencies(deps map[string]json.RawMessage) []string {
	var tags []string
	for name := range deps {
		if tag, ok := nodeDependencyTags[name]; ok {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ParseRequirements extracts tags from a requirements.txt manifest. The
// python tag is always emitted. Each line is stripped of its version pin,
// lowercased, and matched by substring containment, so a specifier like
// django-rest-framework also yields the django tag.
func (p *Parser) ParseRequirements(content []byte) ([]string, error) {
	tags := []string{"python"}

	for _, line := range strings.Split(string(content), "\n") {
		spec := strings.SplitN(line, "==", 2)[0]
		spec = strings.ToLower(strings.TrimSpace(spec))
		for _, kt := range pythonKeywordTags {
			if strings.Contains(spec, kt.keyword) {
				tags = append(tags, kt.tag)
			}
		}
	}

	return tags, nil
}

type cargoManifest struct {
	Dependencies map[string]any `toml:"dependencies"`
}

// ParseCargoTOML extracts tags from a Cargo.toml manifest. The rust tag is
// always emitted; [dependencies] table keys are matched exactly against the
// rust tag table.
func (p *Parser) ParseCargoTOML(content []byte) ([]string, error) {
	var cargo cargoManifest
	if err := toml.Unmarshal(content, &cargo); err != nil {
		return nil, fmt.Errorf("failed to parse Cargo.toml: %w", err)
	}

	tags := []string{"rust"}
	for name := range cargo.Dependencies {
		if tag, ok := rustDependencyTags[name]; ok {
			tags = append(tags, tag)
		}
	}

	return tags, nil
}

// ParseGoMod extracts tags from a go.mod manifest. The go tag is always
// emitted; each line is checked for known import-path fragments, which are
// always full paths in Go module files.
func (p *Parser) ParseGoMod(content []byte) ([]string, error) {
	tags := []string{"go"}

	for _, line := range strings.Split(string(content), "\n") {
		for _, kt := range goImportTags {
			if strings.Contains(line, kt.keyword) {
				tags = append(tags, kt.tag)
			}
		}
	}

	return tags, nil
}
