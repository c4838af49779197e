package coreutils

const (
	// Environment variables recognized by the CLI core:
	LogLevel      = "FORGE_CLI_LOG_LEVEL"
	LogTimestamp  = "FORGE_CLI_LOG_TIMESTAMP"
	ErrorHandling = "FORGE_CLI_ERROR_HANDLING"
	HomeDir       = "FORGE_CLI_HOME_DIR"

	ForgeHomeDirName = ".forge"
	ForgeLogsDirName = "logs"

	// Values for ErrorHandling:
	OnErrorPanic OnError = "panic"

	// The default name used when the caller doesn't set one.
	defaultExecutableName = "forge"

	// ConfigFlag is reserved on every command for an external configuration
	// file consumed before per-command parsing.
	ConfigFlag = "config"

	// Project config key naming the lowest core version the project accepts.
	MinCoreVersionKey = "minCoreVersion"
)
