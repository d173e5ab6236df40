package cli

import (
	"fmt"
	"strings"
)

// FlagDescriptor documents one command-line flag.
type FlagDescriptor struct {
	Name        string // long form, e.g. "--command"
	Short       string // optional alias, e.g. "-c"
	Value       string // value placeholder; empty for switches
	Description string
	Command     string // subcommand the flag applies to; empty for the console
}

// Flags lists every flag cmdcon accepts, in help order.
var Flags = []FlagDescriptor{
	{Name: "--command", Short: "-c", Value: "line", Description: "Run a command line and exit (repeatable)"},
	{Name: "--demo", Description: "Register the demo catalog"},
	{Name: "--no-color", Description: "Disable colored output"},
	{Name: "--log-level", Value: "level", Description: "Log level for this run: debug, info, warn, error"},
	{Name: "--history", Value: "path", Description: "History database (overrides history_path)"},
	{Name: "--no-history", Description: "Keep history in memory for this run"},
	{Name: "--help", Short: "-h", Description: "Show this help"},
	{Name: "--limit", Short: "-n", Value: "n", Description: "Number of log lines to show", Command: "logs"},
	{Name: "--level", Value: "level", Description: "Only show lines at this level or above", Command: "logs"},
	{Name: "--json", Description: "Print log lines as JSON", Command: "logs"},
	{Name: "--follow", Short: "-f", Description: "Follow the log file", Command: "logs"},
	{Name: "--interactive", Short: "-i", Description: "Browse the log in a terminal UI", Command: "logs"},
	{Name: "--clear", Description: "Empty the log file", Command: "logs"},
}

// LookupFlag finds a flag by its long or short form.
func LookupFlag(name string) (FlagDescriptor, bool) {
	for _, d := range Flags {
		if name == d.Name || (d.Short != "" && name == d.Short) {
			return d, true
		}
	}
	return FlagDescriptor{}, false
}

// Usage renders the help text.
func Usage() string {
	var b strings.Builder

	b.WriteString("usage: cmdcon [flags]            interactive console, or run stdin as a script\n")
	b.WriteString("       cmdcon -c <line> [-c ...]  run lines and exit\n")
	b.WriteString("       cmdcon logs [flags]        view the log file\n")
	b.WriteString("       cmdcon config [action]     list, get, set or unset config keys\n")
	b.WriteString("       cmdcon version             print version information\n")

	section := ""
	for i, d := range Flags {
		if i == 0 || d.Command != section {
			section = d.Command
			if section == "" {
				b.WriteString("\nConsole flags:\n")
			} else {
				fmt.Fprintf(&b, "\n%s flags:\n", section)
			}
		}
		fmt.Fprintf(&b, "  %-24s %s\n", d.label(), d.Description)
	}
	return b.String()
}

func (d FlagDescriptor) label() string {
	label := d.Name
	if d.Short != "" {
		label = d.Short + ", " + d.Name
	}
	if d.Value != "" {
		label += " <" + d.Value + ">"
	}
	return label
}
