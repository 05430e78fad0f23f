package appindex

import (
	"bufio"
	"io"
	"strings"
)

// Entry is one installed application, parsed from an XDG desktop entry.
type Entry struct {
	// ID is the desktop file ID (file name without extension), unique
	// per application and stable across rescans.
	ID      string
	Name    string
	Comment string
	Exec    string
	Icon    string
	// Terminal is true when the application wants to run inside a
	// terminal emulator.
	Terminal bool
}

// parseDesktopEntry reads a .desktop file and extracts the keys the
// launcher cares about. Only the [Desktop Entry] group is considered.
// Returns ok=false for entries that should not be offered: missing
// Name/Exec, non-Application types, NoDisplay or Hidden entries.
//
// The format is line-oriented key=value with # comments; it is not
// valid TOML or INI (values are unquoted), so it is parsed by hand.
func parseDesktopEntry(id string, r io.Reader) (Entry, bool) {
	entry := Entry{ID: id}
	entryType := ""
	inMainGroup := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inMainGroup = line == "[Desktop Entry]"
			continue
		}
		if !inMainGroup {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "Type":
			entryType = value
		case "Name":
			entry.Name = value
		case "Comment":
			entry.Comment = value
		case "Exec":
			entry.Exec = stripFieldCodes(value)
		case "Icon":
			entry.Icon = value
		case "Terminal":
			entry.Terminal = value == "true"
		case "NoDisplay", "Hidden":
			if value == "true" {
				return Entry{}, false
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Entry{}, false
	}

	if entryType != "" && entryType != "Application" {
		return Entry{}, false
	}
	if entry.Name == "" || entry.Exec == "" {
		return Entry{}, false
	}
	return entry, true
}

// stripFieldCodes removes the %f/%F/%u/%U style placeholders a desktop
// Exec line may carry. The launcher always starts applications without
// arguments.
func stripFieldCodes(exec string) string {
	fields := strings.Fields(exec)
	out := fields[:0]
	for _, f := range fields {
		if len(f) == 2 && f[0] == '%' {
			continue
		}
		out = append(out, f)
	}
	return strings.Join(out, " ")
}
