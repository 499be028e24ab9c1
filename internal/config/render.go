package config

import (
	"fmt"
	"strings"
)

// RenderDefaultTOML renders a TOML config with defaults from GetConfigOptions.
func RenderDefaultTOML() string {
	var b strings.Builder
	b.WriteString("# nodehtml configuration (TOML)\n\n")

	top, sections, order := splitSections(GetConfigOptions())
	for _, o := range top {
		writeTOMLOption(&b, o)
	}
	for _, section := range order {
		b.WriteString("[" + section + "]\n")
		for _, o := range sections[section] {
			writeTOMLOption(&b, o)
		}
	}
	return b.String()
}

// UpdateTOML merges missing defaults into an existing TOML string and
// comments out keys that are no longer part of the schema.
func UpdateTOML(existing string) (string, bool) {
	lines := strings.Split(existing, "\n")
	opts := GetConfigOptions()
	known := make(map[string]bool, len(opts))
	for _, o := range opts {
		known[o.Key] = true
	}

	seen := make(map[string]bool)
	currentSection := ""
	out := make([]string, 0, len(lines))
	changed := false

	for _, line := range lines {
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, "#") {
			out = append(out, line)
			continue
		}
		if strings.HasPrefix(trim, "[") && strings.HasSuffix(trim, "]") {
			currentSection = strings.TrimSpace(trim[1 : len(trim)-1])
			out = append(out, line)
			continue
		}
		key, ok := parseTOMLKey(line)
		if !ok {
			out = append(out, line)
			continue
		}
		fullKey := key
		if currentSection != "" {
			fullKey = currentSection + "." + key
		}
		seen[fullKey] = true
		if !known[fullKey] {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			out = append(out, indent+"# OUTDATED: option removed from config schema")
			out = append(out, indent+"# "+strings.TrimLeft(line, " \t"))
			changed = true
			continue
		}
		out = append(out, line)
	}

	var missing []ConfigOption
	for _, o := range opts {
		if !seen[o.Key] {
			missing = append(missing, o)
		}
	}
	if len(missing) == 0 {
		return strings.Join(out, "\n"), changed
	}

	top, sections, order := splitSections(missing)
	if len(top) > 0 {
		// Top-level keys must precede the first table header.
		var tb strings.Builder
		tb.WriteString("# Added by config update\n")
		for _, o := range top {
			writeTOMLOption(&tb, o)
		}
		at := firstSectionIndex(out)
		block := strings.Split(strings.TrimRight(tb.String(), "\n"), "\n")
		block = append(block, "")
		out = append(out[:at], append(block, out[at:]...)...)
	}
	var appended strings.Builder
	for _, section := range order {
		if at := sectionHeaderIndex(out, section); at >= 0 {
			var sb strings.Builder
			for _, o := range sections[section] {
				writeTOMLOption(&sb, o)
			}
			block := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
			out = append(out[:at+1], append(block, out[at+1:]...)...)
			continue
		}
		appended.WriteString("[" + section + "]\n")
		for _, o := range sections[section] {
			writeTOMLOption(&appended, o)
		}
	}
	if appended.Len() > 0 {
		out = append(out, "", "# Added by config update", strings.TrimRight(appended.String(), "\n"))
	}
	return strings.Join(out, "\n") + "\n", true
}

func sectionHeaderIndex(lines []string, section string) int {
	for i, line := range lines {
		trim := strings.TrimSpace(line)
		if strings.HasPrefix(trim, "[") && strings.HasSuffix(trim, "]") &&
			strings.TrimSpace(trim[1:len(trim)-1]) == section {
			return i
		}
	}
	return -1
}

func firstSectionIndex(lines []string) int {
	for i, line := range lines {
		trim := strings.TrimSpace(line)
		if strings.HasPrefix(trim, "[") && strings.HasSuffix(trim, "]") {
			return i
		}
	}
	return len(lines)
}

func splitSections(opts []ConfigOption) ([]ConfigOption, map[string][]ConfigOption, []string) {
	top := make([]ConfigOption, 0, len(opts))
	sections := make(map[string][]ConfigOption)
	order := make([]string, 0)
	for _, o := range opts {
		if !strings.Contains(o.Key, ".") {
			top = append(top, o)
			continue
		}
		parts := strings.SplitN(o.Key, ".", 2)
		if _, ok := sections[parts[0]]; !ok {
			order = append(order, parts[0])
		}
		sections[parts[0]] = append(sections[parts[0]], ConfigOption{
			Key:     parts[1],
			Default: o.Default,
			Comment: o.Comment,
		})
	}
	return top, sections, order
}

func parseTOMLKey(line string) (string, bool) {
	idx := strings.Index(line, "=")
	if idx == -1 {
		return "", false
	}
	key := strings.TrimSpace(line[:idx])
	if key == "" || strings.HasPrefix(key, "[") {
		return "", false
	}
	if strings.HasPrefix(key, "\"") || strings.HasPrefix(key, "'") {
		return "", false
	}
	return key, true
}

func writeTOMLOption(b *strings.Builder, o ConfigOption) {
	if o.Comment != "" {
		b.WriteString("# " + o.Comment + "\n")
	}
	b.WriteString(formatTOMLValue(o.Key, o.Default))
	b.WriteString("\n\n")
}

func formatTOMLValue(key string, value any) string {
	switch v := value.(type) {
	case string:
		return fmt.Sprintf("%s = %q", key, v)
	default:
		return fmt.Sprintf("%s = %v", key, v)
	}
}
