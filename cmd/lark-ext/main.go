// Command lark-ext is a demo extension process.
//
// It connects to a lark-host log socket and forwards a scripted
// sequence of log records, showing that forwarded records are filtered
// and formatted by the host exactly as local emissions would be.
//
// Usage:
//
//	lark-ext [flags]
//
// Flags:
//
//	-socket string   Unix socket path of the host log channel (default "/tmp/lark-log.sock")
//	-count int       Number of scripted records to forward (default 5)
//	-fatal           End the sequence with a fatal record, terminating the host
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/larkengine/lark-log/pkg/ipc"
	"github.com/larkengine/lark-log/pkg/log"
)

var (
	socketPath string
	count      int
	sendFatal  bool
)

func init() {
	flag.StringVar(&socketPath, "socket", "/tmp/lark-log.sock", "Unix socket path of the host log channel")
	flag.IntVar(&count, "count", 5, "Number of scripted records to forward")
	flag.BoolVar(&sendFatal, "fatal", false, "End the sequence with a fatal record")
}

func main() {
	flag.Parse()

	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lark-ext: failed to connect to %s: %v\n", socketPath, err)
		os.Exit(1)
	}
	defer conn.Close()

	f := ipc.NewForwarder(conn)

	check(f.Forward(log.LevelInfo, "1", "./boot.lua", "extension %d starting", os.Getpid()))
	for i := 0; i < count; i++ {
		check(f.Forward(log.LevelVerbose, "12", "./tabs.lua", "tab %d refreshed", i))
		check(f.Forward(log.LevelDebug, "30", "./tabs.lua", "state:\nqueue=%d\nidle=%v", i, i%2 == 0))
		time.Sleep(100 * time.Millisecond)
	}
	check(f.Forward(log.LevelWarn, "44", "./hooks.lua", "hook took longer than expected"))

	if sendFatal {
		check(f.Forward(log.LevelFatal, "50", "./boot.lua", "unrecoverable extension state"))
	}
}

func check(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "lark-ext: forward failed: %v\n", err)
		os.Exit(1)
	}
}
