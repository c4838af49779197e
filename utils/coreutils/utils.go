package coreutils

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/jfrog/gofrog/version"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/io/fileutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
)

// Error modes (how should the application behave when the CheckError function is invoked):
type OnError string

var cliExecutableName string

func init() {
	// Initialize error handling.
	if os.Getenv(ErrorHandling) == string(OnErrorPanic) {
		errorutils.CheckError = PanicOnError
	}

	cliExecutableName = defaultExecutableName
}

// Exit codes:
type ExitCode struct {
	Code int
}

var ExitCodeNoError = ExitCode{0}
var ExitCodeError = ExitCode{1}

type CliError struct {
	ExitCode
	ErrorMsg string
}

func (err CliError) Error() string {
	return err.ErrorMsg
}

func PanicOnError(err error) error {
	if err != nil {
		panic(err)
	}
	return err
}

func ExitOnErr(err error) {
	if err, ok := err.(CliError); ok {
		traceExit(err.ExitCode, err)
	}
	if exitCode := GetExitCode(err); exitCode != ExitCodeNoError {
		traceExit(exitCode, err)
	}
}

// Errors may carry a stack captured at creation time.
type stackTracer interface {
	Stack() string
}

func traceExit(exitCode ExitCode, err error) {
	if err != nil && len(err.Error()) > 0 {
		log.Output()
		log.Error(err)
		log.Output()
		var tracer stackTracer
		if errors.As(err, &tracer) {
			log.Output(tracer.Stack())
			log.Output()
		}
	}
	os.Exit(exitCode.Code)
}

func GetExitCode(err error) ExitCode {
	if err != nil {
		return ExitCodeError
	}
	return ExitCodeNoError
}

// When running a command in an external process, if the command fails to run or doesn't complete successfully ExitError is returned.
// We would like to return a regular error instead of ExitError,
// because some frameworks (such as urfave/cli used by the dispatcher) automatically exit when this error is returned.
func ConvertExitCodeError(err error) error {
	if _, ok := err.(*exec.ExitError); ok {
		err = errors.New(err.Error())
	}
	return err
}

// CheckMinimumVersion verifies that the running core is not older than the
// version a project declares as its minimum.
func CheckMinimumVersion(runningVersion, minVersion string) error {
	if minVersion == "" {
		return nil
	}
	if !version.NewVersion(runningVersion).AtLeast(minVersion) {
		return errorutils.CheckErrorf(
			"this project requires %s version %s or higher, while version %s is running",
			GetCliExecutableName(), minVersion, runningVersion)
	}
	return nil
}

func GetForgeHomeDir() (string, error) {
	if os.Getenv(HomeDir) != "" {
		return os.Getenv(HomeDir), nil
	}

	userHomeDir := fileutils.GetHomeDir()
	if userHomeDir == "" {
		return "", errorutils.CheckErrorf("couldn't find home directory. Make sure your HOME environment variable is set")
	}
	return filepath.Join(userHomeDir, ForgeHomeDirName), nil
}

func CreateDirInForgeHome(dirName string) (string, error) {
	homeDir, err := GetForgeHomeDir()
	if err != nil {
		return "", err
	}
	folderName := filepath.Join(homeDir, dirName)
	err = fileutils.CreateDirIfNotExist(folderName)
	return folderName, err
}

func IsWindows() bool {
	return runtime.GOOS == "windows"
}

func SetCliExecutableName(executableName string) {
	cliExecutableName = executableName
}

func GetCliExecutableName() string {
	return cliExecutableName
}
