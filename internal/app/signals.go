package app

import (
	"os"
	"os/signal"
	"syscall"
)

// notifyQuitSignals registers for external termination signals. The
// main loop polls the channel between frames; the read timeout on the
// terminal keeps the poll interval short.
func notifyQuitSignals() chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	return ch
}

func stopQuitSignals(ch chan os.Signal) {
	signal.Stop(ch)
}
