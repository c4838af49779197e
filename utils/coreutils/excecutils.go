package coreutils

import (
	"io"
	"os"
	"os/exec"
)

// Command used to execute an environment-setup script, inheriting the
// process's standard streams.
type ScriptExecCmd struct {
	ScriptPath string
	Args       []string
}

func (scriptCmd *ScriptExecCmd) GetCmd() *exec.Cmd {
	var cmd []string
	cmd = append(cmd, scriptCmd.ScriptPath)
	cmd = append(cmd, scriptCmd.Args...)
	execCmd := exec.Command(cmd[0], cmd[1:]...)
	execCmd.Stdin = os.Stdin
	return execCmd
}

func (scriptCmd *ScriptExecCmd) GetEnv() map[string]string {
	return map[string]string{}
}

func (scriptCmd *ScriptExecCmd) GetStdWriter() io.WriteCloser {
	return nil
}

func (scriptCmd *ScriptExecCmd) GetErrWriter() io.WriteCloser {
	return nil
}
