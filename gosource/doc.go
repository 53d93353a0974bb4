package gosource

import (
	"go/ast"
	"strings"

	"github.com/refgraph/refgraph/model"
)

// parseDocumentation parses a comment group into model.Documentation.
func parseDocumentation(cg *ast.CommentGroup) model.Documentation {
	if cg == nil {
		return model.Documentation{}
	}

	text := cg.Text()
	lines := strings.Split(strings.TrimSpace(text), "\n")

	var summary string
	var deprecated *string

	// Check for deprecated marker
	for i, line := range lines {
		if strings.HasPrefix(line, "Deprecated:") {
			msg := strings.TrimSpace(strings.TrimPrefix(line, "Deprecated:"))
			deprecated = &msg
			lines = append(lines[:i], lines[i+1:]...)
			break
		}
	}

	// First non-empty line is the summary
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			summary = trimmed
			break
		}
	}

	body := strings.Join(lines, "\n")

	return model.Documentation{
		Summary:    summary,
		Body:       body,
		Deprecated: deprecated,
	}
}
