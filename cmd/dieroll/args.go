package main

import (
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"
)

// runRoot executes cmd with args rearranged so that negative or malformed
// dice such as "-1d6" reach the roller as tokens instead of failing flag
// parsing.
func runRoot(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(positionalArgs(cmd.Flags(), args))
	return cmd.Execute()
}

// positionalArgs returns args with every flag first, then "--", then every
// positional argument in its original order. An argument starting with '-'
// counts as a flag only when its first character after the dashes is a
// letter; values of flags that take one stay attached to their flag.
func positionalArgs(fs *pflag.FlagSet, args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if !looksLikeFlag(a) {
			positional = append(positional, a)
			continue
		}
		flags = append(flags, a)
		if takesValue(fs, a) && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}

	out := make([]string, 0, len(flags)+1+len(positional))
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positional...)
}

// looksLikeFlag reports whether a is "-x..." or "--name..." with a letter
// other than 'd' after the dashes. "d" is excluded so "-d6" stays a token.
func looksLikeFlag(a string) bool {
	name := strings.TrimPrefix(a, "-")
	if name == a || name == "" {
		return false
	}
	if strings.HasPrefix(name, "-") {
		name = name[1:]
		return name != "" && isLetter(name[0])
	}
	return isLetter(name[0]) && name[0] != 'd'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// takesValue reports whether a is a known flag written without "=" that
// consumes the following argument.
func takesValue(fs *pflag.FlagSet, a string) bool {
	if strings.Contains(a, "=") {
		return false
	}
	var f *pflag.Flag
	if strings.HasPrefix(a, "--") {
		f = fs.Lookup(a[2:])
	} else if len(a) == 2 {
		f = fs.ShorthandLookup(a[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}
