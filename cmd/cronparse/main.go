// cronparse expands a cron expression into the explicit minutes, hours,
// days, months and weekdays it matches.
//
//	cronparse "*/15 0 1,15 * 1-5 /usr/bin/find"
//
// With --file it reads one expression per line from a crontab-style file,
// and with --watch it re-renders that file whenever it changes.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
