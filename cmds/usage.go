package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage(w io.Writer) {
	printCommands(w, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command pointer
	names := make(map[*Command][]string)
	for name, command := range commands {
		if command == nil {
			continue
		}
		names[command] = append(names[command], name)
	}
	for _, command := range slices.SortedFunc(maps.Keys(names), func(a, b *Command) int {
		return strings.Compare(slices.Min(names[a]), slices.Min(names[b]))
	}) {
		list := names[command]
		slices.Sort(list)
		fmt.Fprintf(w, "%s%s", strings.Repeat("  ", depth), strings.Join(list, ", "))
		if signature := command.Signature(); signature != "" {
			fmt.Fprintf(w, " %s", signature)
		}
		if command.Description != "" {
			fmt.Fprintf(w, "\t%s", command.Description)
		}
		fmt.Fprintln(w)
		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}
