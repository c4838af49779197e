package log

import (
	golangLog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/forgecli/forge-cli-core/utils/coreutils"
	"github.com/jfrog/jfrog-client-go/utils"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
)

func GetCliLogLevel() log.LevelType {
	switch os.Getenv(coreutils.LogLevel) {
	case "ERROR":
		return log.ERROR
	case "WARN":
		return log.WARN
	case "DEBUG":
		return log.DEBUG
	default:
		return log.INFO
	}
}

func getCliLogTimestamp() int {
	switch os.Getenv(coreutils.LogTimestamp) {
	case "DATE_AND_TIME":
		return golangLog.Ldate | golangLog.Ltime | golangLog.Lmsgprefix
	case "OFF":
		return 0
	default:
		return golangLog.Ltime | golangLog.Lmsgprefix
	}
}

func SetDefaultLogger() {
	log.SetLogger(log.NewLoggerWithFlags(GetCliLogLevel(), nil, getCliLogTimestamp()))
}

// SetDebugLogger raises the log level to DEBUG regardless of the environment.
func SetDebugLogger() {
	log.SetLogger(log.NewLoggerWithFlags(log.DEBUG, nil, getCliLogTimestamp()))
}

// CreateLogFile opens a per-run log file under the logs directory of the CLI
// home. The file name carries the start time and the invocation id, so
// records of a single run can be correlated across files.
func CreateLogFile(invocationId string) (*os.File, error) {
	logDir, err := coreutils.CreateDirInForgeHome(coreutils.ForgeLogsDirName)
	if err != nil {
		return nil, err
	}

	currentTime := time.Now().Format("2006-01-02.15-04-05")

	fileName := filepath.Join(logDir, coreutils.GetCliExecutableName()+"."+currentTime+"."+invocationId+".log")
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
	if err != nil {
		return nil, errorutils.CheckError(err)
	}

	return file, nil
}

// Closes the log file and resets to the default logger
func CloseLogFile(logFile *os.File) error {
	if logFile != nil {
		SetDefaultLogger()
		err := logFile.Close()
		return utils.CheckErrorWithMessage(err, "Failed closing the log file")
	}
	return nil
}
