package main

import (
	"strings"
	"testing"

	"github.com/rhobs/qiita-mcp/pkg/tools"
)

func TestGenerateMarkdown(t *testing.T) {
	md := generateMarkdown(tools.AllTools())

	for _, def := range tools.AllTools() {
		if !strings.Contains(md, "## `"+def.Name+"`") {
			t.Errorf("expected section for %s", def.Name)
		}
	}

	for _, want := range []string{
		"| `query`",
		"one of `count`, `name`",
		"`20`",
		"**Parameters** | None",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestFormatTable_Empty(t *testing.T) {
	if got := formatTable(nil, nil, nil); got != "" {
		t.Errorf("expected empty table, got %q", got)
	}
}

func TestSortedParams_RequiredFirst(t *testing.T) {
	params := sortedParams(tools.CreateArticle)
	seenOptional := false
	for _, p := range params {
		if !p.Required {
			seenOptional = true
		} else if seenOptional {
			t.Fatalf("required param %s listed after optional ones", p.Name)
		}
	}
}
