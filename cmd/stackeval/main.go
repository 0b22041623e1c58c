package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/stackeval"
)

// demo is evaluated when there is no other input.
const demo = "5 * -3"

type options struct {
	in      string
	verb    string
	echo    bool
	tokens  bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "stackeval [expression...]",
		Short: "Evaluate arithmetic expressions in single precision",
		Long: `Stackeval evaluates arithmetic expressions with + - * /, parentheses, and
decimal numbers, printing one float32 result per expression.

Each argument is an expression. With --in, each non-blank line of the file
(or stdin for "-") is also an expression. With no input at all, stackeval
evaluates "` + demo + `".

Put "--" before an expression that starts with a minus sign.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if o.noColor {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
	}
	cmd.Flags().StringVar(&o.in, "in", "", "input file, one expression per line (- for stdin)")
	cmd.Flags().StringVar(&o.verb, "fmt", "%g", "result formatting string")
	cmd.Flags().BoolVar(&o.echo, "echo", false, "print parse trees")
	cmd.Flags().BoolVar(&o.tokens, "tokens", false, "dump tokens before evaluating")
	cmd.Flags().BoolVar(&o.noColor, "no-color", false, "disable colored errors")
	return cmd
}

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(color.RedString("error: ") + err.Error())
	}
}

func (o *options) run(stdin io.Reader, w io.Writer, args []string) error {
	srcs := args
	if o.in != "" {
		lines, err := readLines(stdin, o.in)
		if err != nil {
			return err
		}
		srcs = append(srcs, lines...)
	}
	if len(srcs) == 0 {
		srcs = []string{demo}
	}

	dump := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	verb := o.verb + "\n"
	for _, src := range srcs {
		if o.tokens {
			toks, err := stackeval.Tokenize(src)
			if err != nil {
				return fmt.Errorf("%s: %w", color.YellowString("%q", src), err)
			}
			dump.Fdump(w, toks)
		}
		a, err := stackeval.Parse(src)
		if err != nil {
			return fmt.Errorf("%s: %w", color.YellowString("%q", src), err)
		}
		r, err := a.Value()
		if err != nil {
			return fmt.Errorf("%s: %w", color.YellowString("%q", src), err)
		}
		if o.echo {
			fmt.Fprintf(w, "%v : ", a)
		}
		fmt.Fprintf(w, verb, r)
	}
	return nil
}

// readLines reads the non-blank lines of the named file, or of stdin if the
// name is "-".
func readLines(stdin io.Reader, name string) ([]string, error) {
	in := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	var lines []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	return lines, sc.Err()
}
