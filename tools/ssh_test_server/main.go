package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	srv "deploy-sync/tools/sshserv"
)

// Runs the in-process test SSH server on 127.0.0.1:20222 for manual checks
// of "deploy-sync --provision native". Set DEPLOY_SYNC_TEST_PASSWORD to
// require password authentication.
func main() {
	s, err := srv.Start("127.0.0.1:20222", os.Getenv("DEPLOY_SYNC_TEST_PASSWORD"))
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "failed to start test ssh server:", err)
		os.Exit(1)
	}
	_, _ = fmt.Fprintln(os.Stderr, "test ssh server listening on", s.Addr)
	defer s.Stop()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}
