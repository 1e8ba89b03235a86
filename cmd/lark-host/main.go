// Command lark-host is a demo controlling process.
//
// It listens on a unix socket for extension-process log channels,
// replays every forwarded record through its local dispatcher, and
// offers an interactive shell for runtime verbosity control.
//
// Usage:
//
//	lark-host [flags]
//
// Flags:
//
//	-socket string     Unix socket path for extension log channels (default "/tmp/lark-log.sock")
//	-config string     YAML logging configuration file
//	-verbosity string  Verbosity spec, e.g. "core/session=debug,script=warn"
//
// Examples:
//
//	# Listen with everything at verbose
//	lark-host -verbosity verbose
//
//	# Per-group thresholds from a config file
//	lark-host -config /etc/lark/log.yaml
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/larkengine/lark-log/pkg/config"
	"github.com/larkengine/lark-log/pkg/ipc"
	"github.com/larkengine/lark-log/pkg/log"
)

var (
	socketPath string
	configPath string
	verbosity  string
)

func init() {
	flag.StringVar(&socketPath, "socket", "/tmp/lark-log.sock", "Unix socket path for extension log channels")
	flag.StringVar(&configPath, "config", "", "YAML logging configuration file")
	flag.StringVar(&verbosity, "verbosity", "", `Verbosity spec, e.g. "core/session=debug,script=warn"`)
}

func main() {
	flag.Parse()

	reg := log.NewRegistry()
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lark-host: %v\n", err)
			os.Exit(1)
		}
		if err := cfg.Apply(reg); err != nil {
			fmt.Fprintf(os.Stderr, "lark-host: %v\n", err)
			os.Exit(1)
		}
	}
	if verbosity != "" {
		if err := config.ApplyVerbositySpec(reg, verbosity); err != nil {
			fmt.Fprintf(os.Stderr, "lark-host: %v\n", err)
			os.Exit(1)
		}
	}

	d := log.New(reg, os.Stderr)
	d.SetEpoch(time.Now())

	_ = os.Remove(socketPath)
	ln, err := net.Listen("unix", socketPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lark-host: failed to listen on %s: %v\n", socketPath, err)
		os.Exit(1)
	}
	defer ln.Close()
	defer os.Remove(socketPath)

	d.Log(log.LevelInfo, "0", "host.go", "listening for extension log channels on %s", socketPath)

	// A forwarded fatal record terminates the host, mirroring a local
	// fatal emission.
	fatal := make(chan struct{}, 1)
	go acceptLoop(ln, d, fatal)

	sh, err := newShell(d, reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lark-host: %v\n", err)
		os.Exit(1)
	}
	defer sh.Close()

	go func() {
		<-fatal
		os.Remove(socketPath)
		os.Exit(1)
	}()

	sh.Run()
}

func acceptLoop(ln net.Listener, d *log.Dispatcher, fatal chan<- struct{}) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}

		go func(conn net.Conn) {
			defer conn.Close()

			b := ipc.NewBridge(d)
			d.Log(log.LevelVerbose, "0", "host.go", "extension attached on channel %s", b.ChannelID())

			outcome, err := b.Serve(conn)
			if err != nil {
				d.Log(log.LevelError, "0", "host.go", "channel %s failed: %v", b.ChannelID(), err)
				return
			}
			if outcome == log.OutcomeTerminate {
				select {
				case fatal <- struct{}{}:
				default:
				}
				return
			}
			d.Log(log.LevelVerbose, "0", "host.go", "extension detached from channel %s", b.ChannelID())
		}(conn)
	}
}
