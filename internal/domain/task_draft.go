package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TaskDraft represents a task to be created from file input.
type TaskDraft struct {
	Name        string
	Description string
	Deadline    string
	Status      Status
}

// draftFrontmatter is the YAML frontmatter of a task block.
type draftFrontmatter struct {
	Name     string      `yaml:"name"`
	Deadline scalarValue `yaml:"deadline"`
	Status   string      `yaml:"status"`
}

// scalarValue keeps the literal text of a YAML scalar.
// Unquoted dates would otherwise resolve to timestamps.
type scalarValue string

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *scalarValue) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", n.Line)
	}
	*v = scalarValue(n.Value)
	return nil
}

// ParseTaskDrafts parses a markdown file containing one or more task definitions.
// Tasks are separated by frontmatter blocks starting with "---".
//
// Format:
//
//	---
//	name: Essay
//	deadline: 2026-10-21
//	status: in_progress
//	---
//	Description here.
//
// Status defaults to pending.
func ParseTaskDrafts(content string) ([]TaskDraft, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyFile
	}

	blocks := splitTaskBlocks(content)
	if len(blocks) == 0 {
		return nil, ErrNoTasksInFile
	}

	drafts := make([]TaskDraft, 0, len(blocks))
	for i, block := range blocks {
		draft, err := parseTaskBlock(block)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		drafts = append(drafts, draft)
	}

	return drafts, nil
}

// splitTaskBlocks splits content into separate task blocks.
// Each block starts with "---" on a new line. A "---" inside a description
// only starts a new block when the next line looks like a frontmatter key.
func splitTaskBlocks(content string) []string {
	var blocks []string
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	inBlock := false
	var current []string

	for i, line := range lines {
		if line != "---" {
			if inBlock {
				current = append(current, line)
			}
			continue
		}
		switch {
		case !inBlock:
			inBlock = true
			current = []string{}
		case len(current) == 0 || !containsLine(current, "---"):
			// Closing "---" of the frontmatter
			current = append(current, line)
		case i+1 < len(lines) && isFrontmatterKey(lines[i+1]):
			blocks = append(blocks, strings.Join(current, "\n"))
			current = []string{}
		default:
			current = append(current, line)
		}
	}

	if len(current) > 0 {
		blocks = append(blocks, strings.Join(current, "\n"))
	}
	return blocks
}

func containsLine(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}

// isFrontmatterKey checks if a line looks like a frontmatter key.
func isFrontmatterKey(line string) bool {
	for _, key := range []string{"name:", "deadline:", "status:"} {
		if strings.HasPrefix(line, key) {
			return true
		}
	}
	return false
}

// parseTaskBlock parses a single block: frontmatter, "---", description.
func parseTaskBlock(block string) (TaskDraft, error) {
	front, body, _ := strings.Cut(block, "\n---")
	if strings.HasPrefix(block, "---") {
		front, body = "", strings.TrimPrefix(block, "---")
	}

	var fm draftFrontmatter
	if err := yaml.Unmarshal([]byte(front), &fm); err != nil {
		return TaskDraft{}, fmt.Errorf("parse frontmatter: %w", err)
	}

	name := strings.TrimSpace(fm.Name)
	if name == "" {
		return TaskDraft{}, ErrEmptyName
	}

	status := StatusPending
	if fm.Status != "" {
		s, err := ParseStatus(strings.TrimSpace(fm.Status))
		if err != nil {
			return TaskDraft{}, fmt.Errorf("%w: %q", err, fm.Status)
		}
		status = s
	}

	deadline := strings.TrimSpace(string(fm.Deadline))
	if deadline != "" {
		if _, err := ParseDeadline(deadline, nil); err != nil {
			return TaskDraft{}, err
		}
	}

	return TaskDraft{
		Name:        name,
		Description: strings.Trim(body, "\n"),
		Deadline:    deadline,
		Status:      status,
	}, nil
}
