package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/go-kit/log/level"
)

// RunExtension attempts to find and execute an external vt-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "vt-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		level.Debug(Logger()).Log("msg", "external command not found", "cmd", externalCmdName, "err", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvDataDir+"="+config.DataDir)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(config.Verbose))
	cmd.Env = append(cmd.Env, EnvLogFormat+"="+config.LogFormat)
	cmd.Env = append(cmd.Env, EnvPlain+"="+strconv.FormatBool(config.Plain))

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}

	return true, 0
}
