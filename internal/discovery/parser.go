package discovery

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Matches:
// - public function testCreateUser()
// - protected static function test_user_login()
// - final public function itWorks() (with @test or #[Test] above)
var functionPattern = regexp.MustCompile(`^\s*((?:(?:abstract|final|public|protected|private|static)\s+)*)function\s+(\w+)\s*\(`)

// Parser extracts test method names from PHP test sources
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// FindTestCases returns the test methods declared in filePath in source order, without duplicates
func (p *Parser) FindTestCases(filePath string) ([]string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	return p.Parse(string(content), strings.HasSuffix(filePath, "Cest.php")), nil
}

// Parse extracts test method names from source.
// In Cest sources every public method not starting with an underscore is a scenario.
func (p *Parser) Parse(source string, cest bool) []string {
	seen := make(map[string]bool)
	var names []string
	annotated := false

	scanner := bufio.NewScanner(strings.NewReader(source))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "@test") || strings.Contains(line, "#[Test") {
			annotated = true
		}

		m := functionPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		modifiers, name := m[1], m[2]

		var isTest bool
		if cest {
			isTest = !strings.HasPrefix(name, "_") && !strings.Contains(modifiers, "private") &&
				!strings.Contains(modifiers, "protected") && !strings.Contains(modifiers, "static")
		} else {
			isTest = strings.HasPrefix(name, "test") || annotated
		}
		annotated = false

		if isTest && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
