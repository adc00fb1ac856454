package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rhobs/qiita-mcp/pkg/tools"
)

func main() {
	output := flag.String("output", "TOOLS.md", "Path of the generated markdown file")
	flag.Parse()

	defs := tools.AllTools()

	if err := os.WriteFile(*output, []byte(generateMarkdown(defs)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", *output, err)
		os.Exit(1)
	}
	fmt.Printf("✓ %s generated successfully\n", *output)
	fmt.Printf("  Documented %d tools:\n", len(defs))
	for i := range defs {
		fmt.Printf("    - %s\n", defs[i].Name)
	}
	fmt.Println("\n💡 Reminder: When adding a new tool, register it in pkg/tools/definitions.go AllTools()")
}

func formatTable(headers, alignments []string, rows [][]string) string {
	if len(headers) == 0 || len(rows) == 0 {
		return ""
	}

	// Calculate max width for each column
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder

	// Header row
	sb.WriteString("|")
	for i, h := range headers {
		sb.WriteString(fmt.Sprintf(" %-*s |", widths[i], h))
	}
	sb.WriteString("\n")

	// Separator row with alignment
	sb.WriteString("|")
	for i, w := range widths {
		align := "l" // default left
		if i < len(alignments) {
			align = alignments[i]
		}
		switch align {
		case "c": // center
			sb.WriteString(fmt.Sprintf(" :%s: |", strings.Repeat("-", w-2)))
		case "r": // right
			sb.WriteString(fmt.Sprintf(" %s: |", strings.Repeat("-", w-1)))
		default: // left
			sb.WriteString(fmt.Sprintf(" :%s |", strings.Repeat("-", w-1)))
		}
	}
	sb.WriteString("\n")

	// Data rows
	for _, row := range rows {
		sb.WriteString("|")
		for i, cell := range row {
			if i < len(widths) {
				sb.WriteString(fmt.Sprintf(" %-*s |", widths[i], cell))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// sortedParams lists required parameters first, then by name.
func sortedParams(def tools.ToolDef) []tools.ParamDef {
	params := append([]tools.ParamDef(nil), def.Params...)
	sort.SliceStable(params, func(i, j int) bool {
		if params[i].Required != params[j].Required {
			return params[i].Required
		}
		return params[i].Name < params[j].Name
	})
	return params
}

func paramType(p tools.ParamDef) string {
	if p.Type == tools.ParamTypeArray && p.Items != nil {
		if p.Items.Type != "" {
			return p.Items.Type + "[]"
		}
	}
	return string(p.Type)
}

func paramDefault(p tools.ParamDef) string {
	if p.Required || p.Default == nil {
		return ""
	}
	return fmt.Sprintf("`%v`", p.Default)
}

func paramConstraints(p tools.ParamDef) string {
	var parts []string
	if len(p.Enum) > 0 {
		quoted := make([]string, len(p.Enum))
		for i, v := range p.Enum {
			quoted[i] = fmt.Sprintf("`%s`", v)
		}
		parts = append(parts, "one of "+strings.Join(quoted, ", "))
	}
	if p.Minimum != nil && p.Maximum != nil {
		parts = append(parts, fmt.Sprintf("%g-%g", *p.Minimum, *p.Maximum))
	}
	return strings.Join(parts, "; ")
}

func hints(def tools.ToolDef) string {
	var h []string
	if def.ReadOnly {
		h = append(h, "read-only")
	}
	if def.Destructive {
		h = append(h, "destructive")
	}
	if def.Idempotent {
		h = append(h, "idempotent")
	}
	if !def.Idempotent && !def.ReadOnly {
		h = append(h, "not idempotent")
	}
	return strings.Join(h, ", ")
}

func generateMarkdown(defs []tools.ToolDef) string {
	var sb strings.Builder

	sb.WriteString("<!-- This file is auto-generated. Do not edit manually. -->\n")
	sb.WriteString("<!-- Run 'go run ./cmd/generate-tools-doc' to regenerate. -->\n\n")

	sb.WriteString("# Available Tools\n\n")
	sb.WriteString("This MCP server exposes the following tools for interacting with the Qiita API v2:\n\n")

	for i := range defs {
		def := defs[i]
		sb.WriteString(fmt.Sprintf("## `%s`\n\n", def.Name))

		// First paragraph is the main description, the rest become usage tips
		paragraphs := strings.Split(strings.TrimSpace(def.Description), "\n\n")
		sb.WriteString(fmt.Sprintf("> %s\n\n", strings.TrimSpace(paragraphs[0])))
		if h := hints(def); h != "" {
			sb.WriteString(fmt.Sprintf("_%s_\n\n", h))
		}

		if len(paragraphs) > 1 {
			sb.WriteString("**Usage Tips:**\n\n")
			for _, para := range paragraphs[1:] {
				lines := strings.Split(para, "\n")
				var joined []string
				for _, line := range lines {
					line = strings.TrimSpace(line)
					if line != "" {
						joined = append(joined, line)
					}
				}
				if len(joined) > 0 {
					sb.WriteString(fmt.Sprintf("- %s\n", strings.Join(joined, " ")))
				}
			}
			sb.WriteString("\n")
		}

		params := sortedParams(def)
		if len(params) == 0 {
			sb.WriteString(formatTable(
				[]string{"", ""},
				[]string{"l", "l"},
				[][]string{{"**Parameters**", "None"}},
			))
			sb.WriteString("\n")
		} else {
			sb.WriteString("**Parameters:**\n\n")
			var rows [][]string
			for _, p := range params {
				req := ""
				if p.Required {
					req = "✅"
				}
				rows = append(rows, []string{
					fmt.Sprintf("`%s`", p.Name),
					fmt.Sprintf("`%s`", paramType(p)),
					req,
					paramDefault(p),
					paramConstraints(p),
					p.Description,
				})
			}
			sb.WriteString(formatTable(
				[]string{"Parameter", "Type", "Required", "Default", "Constraints", "Description"},
				[]string{"l", "l", "c", "l", "l", "l"},
				rows,
			))
			sb.WriteString("\n")
		}

		if i < len(defs)-1 {
			sb.WriteString("---\n\n")
		}
	}

	return sb.String()
}
