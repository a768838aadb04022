package col

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/colkit/col/pkg/textutil"
)

// renderUsage builds the help text for the command at the end of path,
// where path runs from the root to the command being resolved.
func renderUsage(path []*Command) string {
	c := path[len(path)-1]

	var b strings.Builder

	if c.Help != "" {
		for _, line := range textutil.Wrap(c.Help, 80) {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	names := make([]string, len(path))
	for i, cmd := range path {
		names[i] = cmd.Name
	}
	fullName := strings.Join(names, " ")

	b.WriteString("Usage:\n")
	usage := fullName
	if len(c.Options) > 0 {
		usage += " [options]"
	}
	if len(c.SubCommands) > 0 {
		usage += " <command>"
	}
	b.WriteString("  " + usage + "\n\n")

	if len(c.SubCommands) > 0 {
		b.WriteString("Available Commands:\n")
		sorted := slices.Clone(c.SubCommands)
		slices.SortFunc(sorted, func(a, b *Command) int {
			return cmp.Compare(a.Name, b.Name)
		})

		maxNameLen := 0
		for _, sub := range sorted {
			if len(sub.Name) > maxNameLen {
				maxNameLen = len(sub.Name)
			}
		}
		writeSection(&b, maxNameLen, func(yield func(name, description string)) {
			for _, sub := range sorted {
				yield(sub.Name, sub.Help)
			}
		})
		b.WriteString("\n")
	}

	if len(c.Options) > 0 {
		type row struct {
			label       string
			description string
		}
		rows := make([]row, 0, len(c.Options))
		maxLabelLen := 0
		for _, o := range c.Options {
			label := o.token()
			if o.kind != kindFlag {
				label += fmt.Sprintf(" <%s>", o.name)
			}
			description := o.help
			switch {
			case o.hasDefault && o.defaultFunc == nil:
				if o.kind != kindFlag || o.defaultValue != false {
					description = appendMarker(description, fmt.Sprintf("(default: %v)", o.defaultValue))
				}
			case o.required && !o.hasDefault:
				description = appendMarker(description, "(required)")
			}
			rows = append(rows, row{label: label, description: description})
			if len(label) > maxLabelLen {
				maxLabelLen = len(label)
			}
		}
		slices.SortFunc(rows, func(a, b row) int {
			return cmp.Compare(a.label, b.label)
		})

		b.WriteString("Options:\n")
		writeSection(&b, maxLabelLen, func(yield func(name, description string)) {
			for _, r := range rows {
				yield(r.label, r.description)
			}
		})
		b.WriteString("\n")
	}

	if len(c.SubCommands) > 0 {
		fmt.Fprintf(&b, "Use %q for more information about a command.\n", fullName+" [command] --help")
	}

	return strings.TrimRight(b.String(), "\n")
}

func appendMarker(description, marker string) string {
	if description == "" {
		return marker
	}
	return description + " " + marker
}

// writeSection renders one aligned name/description block, wrapping each
// description to fit an 80-column terminal.
func writeSection(b *strings.Builder, maxNameLen int, rows func(yield func(name, description string))) {
	nameWidth := maxNameLen + 4
	wrapWidth := 80 - nameWidth

	rows(func(name, description string) {
		if description == "" {
			fmt.Fprintf(b, "  %s\n", name)
			return
		}
		lines := textutil.Wrap(description, wrapWidth)
		padding := strings.Repeat(" ", maxNameLen-len(name)+4)
		fmt.Fprintf(b, "  %s%s%s\n", name, padding, lines[0])

		indentPadding := strings.Repeat(" ", nameWidth+2)
		for _, line := range lines[1:] {
			fmt.Fprintf(b, "%s%s\n", indentPadding, line)
		}
	})
}
