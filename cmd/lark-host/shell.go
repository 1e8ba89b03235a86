package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/larkengine/lark-log/pkg/log"
)

// shell is the interactive verbosity-control loop for lark-host.
type shell struct {
	rl  *readline.Instance
	d   *log.Dispatcher
	reg *log.Registry
}

func newShell(d *log.Dispatcher, reg *log.Registry) (*shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "lark> ",
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &shell{rl: rl, d: d, reg: reg}, nil
}

func (s *shell) Close() error {
	return s.rl.Close()
}

// Run processes shell commands until EOF or quit.
func (s *shell) Run() {
	s.printHelp()

	for {
		line, err := s.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}

		parts := strings.Fields(strings.TrimSpace(line))
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "verbosity", "v":
			s.cmdVerbosity(args)

		case "show":
			s.cmdShow(args)

		case "log":
			s.cmdLog(args)

		case "quit", "exit", "q":
			return

		default:
			fmt.Fprintf(s.rl.Stdout(), "unknown command %q, try help\n", cmd)
		}
	}
}

func (s *shell) cmdVerbosity(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.rl.Stdout(), "usage: verbosity <group> <level>")
		return
	}
	lvl, err := log.ParseLevel(args[1])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "%v\n", err)
		return
	}
	s.reg.Set(args[0], lvl)
	fmt.Fprintf(s.rl.Stdout(), "%s -> %s\n", args[0], lvl)
}

func (s *shell) cmdShow(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.rl.Stdout(), "usage: show <group>")
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "%s: effective threshold %s\n", args[0], s.reg.Get(args[0]))
}

func (s *shell) cmdLog(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.rl.Stdout(), "usage: log <level> <message...>")
		return
	}
	lvl, err := log.ParseLevel(args[0])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "%v\n", err)
		return
	}
	// A fatal record terminates the host, as it would for any call site.
	s.d.Log(lvl, "0", "shell.go", "%s", strings.Join(args[1:], " "))
}

func (s *shell) printHelp() {
	fmt.Fprint(s.rl.Stdout(), `Commands:
  verbosity <group> <level>  set a group threshold (fatal error warn info verbose debug)
  show <group>               print the effective threshold for a group
  log <level> <message...>   emit a record locally
  help                       show this help
  quit                       exit
`)
}
