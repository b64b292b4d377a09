package cmd

// mkdirRemote is the idempotent directory creation run on the remote shell:
// it succeeds whether or not the directory already exists.
func mkdirRemote(t transferTarget) command {
	return command{Name: "mkdir", Args: []string{"-p", t.Path}}
}

// sshCommand wraps a remote command in a local ssh invocation.
func sshCommand(t transferTarget, o transportOptions, remote command) command {
	args := append(o.sshArgs(t), t.Remote(), remote.line())
	return command{Name: "ssh", Args: args}
}

// mirrorCommand is the bulk rsync of the whole project root, honoring the
// exclusion policy and, when requested, pruning remote files that no longer
// exist locally.
func mirrorCommand(t transferTarget, o transportOptions, root string, exclude exclusionPolicy, deleteExtraneous bool) command {
	args := []string{"-az"}
	if deleteExtraneous {
		args = append(args, "--delete")
	}
	args = append(args, exclude.rsyncArgs()...)
	args = append(args, "-e", o.rsyncShell(t), "./", t.remoteSpec())
	return command{Name: "rsync", Args: args, Dir: root}
}

// copyCommand copies a single item with scp, recursively for directories.
func copyCommand(t transferTarget, o transportOptions, root string, item transferItem) command {
	var args []string
	if item.isDir() {
		args = append(args, "-r")
	}
	args = append(args, o.scpArgs(t)...)
	args = append(args, "--", item.Path, t.remoteSpec())
	return command{Name: "scp", Args: args, Dir: root}
}
