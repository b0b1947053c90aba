package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/pigeonlinux/menuconfig/internal/logging"
)

// Signals that end the session
var terminationSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGHUP,
	syscall.SIGQUIT,
}

// Guard runs a cleanup function exactly once on every way out of the
// process: normal release, panic or a termination signal.
type Guard struct {
	cleanup func() error
	exit    func(code int)

	once sync.Once
	err  error

	sigs chan os.Signal
	done chan struct{}
	stop sync.Once
}

// NewGuard installs signal handlers that run cleanup and exit the process.
func NewGuard(cleanup func() error) *Guard {
	g := newGuard(cleanup, os.Exit)
	signal.Notify(g.sigs, terminationSignals...)
	go g.watch()
	return g
}

func newGuard(cleanup func() error, exit func(int)) *Guard {
	return &Guard{
		cleanup: cleanup,
		exit:    exit,
		sigs:    make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}
}

func (g *Guard) watch() {
	select {
	case sig := <-g.sigs:
		logging.Info("Signal received, restoring terminal", zap.String("signal", sig.String()))
		if err := g.run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		logging.Sync()
		g.exit(ExitCode(sig))
	case <-g.done:
	}
}

// run executes the cleanup once and returns its result on every call
func (g *Guard) run() error {
	g.once.Do(func() {
		if g.cleanup != nil {
			g.err = g.cleanup()
		}
	})
	return g.err
}

// Release runs the cleanup and stops watching for signals.
func (g *Guard) Release() error {
	g.stop.Do(func() {
		signal.Stop(g.sigs)
		close(g.done)
	})
	return g.run()
}

// Recover runs the cleanup when the deferring function panics, then
// re-panics. Use it as: defer guard.Recover()
func (g *Guard) Recover() {
	if r := recover(); r != nil {
		g.run()
		panic(r)
	}
}

// ExitCode returns the shell convention exit status for a process killed by
// sig: 128 plus the signal number.
func ExitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}
