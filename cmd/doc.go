// Package cmd implements the deploy-sync command-line interface.
//
// deploy-sync copies a local project directory to a remote server. It first
// tries one rsync mirror of the whole tree and, when that fails, falls back
// to copying the manifest's files and directories one by one with scp.
//
// Start with rootCmd.go for the cobra wiring, transferDriver.go for the run
// sequence and syncPlanner.go for the bulk/itemized state machine. Commands
// reach the remote side only through an executor: toolExecutor.go runs the
// local ssh/scp/rsync clients (under sshpass for password credentials) and
// sshExecutor.go runs remote commands over a native SSH session.
package cmd
