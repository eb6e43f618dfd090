package colour

import (
	"fmt"
	"strings"
)

// namedColour is a terminal colour name and its typical RGB value.
type namedColour struct {
	name    string
	value   Packed
	aliases []string
}

// Standard ANSI palette (xterm basic 16) plus a few common web names.
var namedColours = []namedColour{
	// Normal colours (0-7).
	{name: "black", value: 0x000000, aliases: []string{"color0"}},
	{name: "red", value: 0xcd3131, aliases: []string{"color1"}},
	{name: "green", value: 0x0dbc79, aliases: []string{"color2"}},
	{name: "yellow", value: 0xe5e510, aliases: []string{"color3"}},
	{name: "blue", value: 0x2472c8, aliases: []string{"color4"}},
	{name: "magenta", value: 0xbc3fbc, aliases: []string{"color5", "purple"}},
	{name: "cyan", value: 0x11a8cd, aliases: []string{"color6"}},
	{name: "white", value: 0xe5e5e5, aliases: []string{"color7", "gray", "grey"}},

	// Bright colours (8-15).
	{name: "brightblack", value: 0x666666, aliases: []string{"color8", "darkgray", "darkgrey"}},
	{name: "brightred", value: 0xf14c4c, aliases: []string{"color9"}},
	{name: "brightgreen", value: 0x23d18b, aliases: []string{"color10"}},
	{name: "brightyellow", value: 0xf5f543, aliases: []string{"color11"}},
	{name: "brightblue", value: 0x3b8eea, aliases: []string{"color12"}},
	{name: "brightmagenta", value: 0xd670d6, aliases: []string{"color13", "brightpurple"}},
	{name: "brightcyan", value: 0x29b8db, aliases: []string{"color14"}},
	{name: "brightwhite", value: 0xffffff, aliases: []string{"color15"}},

	{name: "orange", value: 0xffa500},
	{name: "pink", value: 0xffc0cb},
	{name: "brown", value: 0xa52a2a},
	{name: "lime", value: 0x00ff00},
	{name: "navy", value: 0x000080, aliases: []string{"darkblue"}},
	{name: "teal", value: 0x008080, aliases: []string{"darkcyan"}},
	{name: "maroon", value: 0x800000, aliases: []string{"darkred"}},
	{name: "olive", value: 0x808000, aliases: []string{"darkyellow"}},
	{name: "violet", value: 0xee82ee},
	{name: "indigo", value: 0x4b0082},
}

// normaliseName lowercases name and drops spaces and dashes.
func normaliseName(name string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(name))
}

// Named looks up a colour by name or alias, case-insensitively.
func Named(name string) (Packed, bool) {
	n := normaliseName(name)
	for _, nc := range namedColours {
		if nc.name == n {
			return nc.value, true
		}
		for _, alias := range nc.aliases {
			if alias == n {
				return nc.value, true
			}
		}
	}
	return 0, false
}

// Names returns the canonical colour names. Aliases such as "purple" or
// "color4" are accepted by Named but not listed.
func Names() []string {
	names := make([]string, 0, len(namedColours))
	for _, nc := range namedColours {
		names = append(names, nc.name)
	}
	return names
}

// Parse accepts a colour name or a "#rrggbb" hex value.
func Parse(s string) (Packed, error) {
	if c, ok := Named(s); ok {
		return c, nil
	}
	c, err := ParseHex(s)
	if err != nil {
		return 0, fmt.Errorf("%w (or a colour name: %s)", err, strings.Join(Names(), ", "))
	}
	return c, nil
}
