package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/beyond-event-horizon/HAI3-sub001/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "hai3"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName        = "output"
	noReportFlagName      = "no-report"
	rootFlagName          = "root"
	screensetsDirFlagName = "screensets-dir"
	logFileFlagName       = "log-file"
	verboseFlagName       = "verbose"

	categoryFlagName = "category"
	dryRunFlagName   = "dry-run"
	parallelFlagName = "parallel"
	noVerifyFlagName = "no-verify"

	projectRootKey      = "project.root"
	screensetsDirKey    = "project.screensets_dir"
	idsFileKey          = "project.ids_file"
	copyParallelKey     = "copy.parallel"
	copyVerifyKey       = "copy.verify"
	copyCategoryKey     = "copy.category"
	copyTextExtsKey     = "copy.text_extensions"
	hooksPostCopyKey    = "hooks.post_copy"
	hooksTimeoutKey     = "hooks.timeout"
	defaultHooksTimeout = time.Minute

	defaultReportsDir    = ".hai3-reports"
	defaultNoReport      = false
	defaultScreensetsDir = "src/screensets"
	defaultCopyVerify    = true

	envPrefix = "HAI3"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".hai3.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setConfigDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		// The logger is not configured yet.
		fmt.Fprintf(os.Stderr, "hai3: ignoring %s: %v\n", configFileName, err)
	}
}

func setConfigDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(noReportFlagName, defaultNoReport)

	viper.SetDefault(projectRootKey, "")
	viper.SetDefault(screensetsDirKey, defaultScreensetsDir)
	viper.SetDefault(idsFileKey, domain.DefaultIDsFile)

	viper.SetDefault(copyParallelKey, domain.DefaultParallel)
	viper.SetDefault(copyVerifyKey, defaultCopyVerify)
	viper.SetDefault(copyCategoryKey, "")
	viper.SetDefault(copyTextExtsKey, domain.DefaultTextExtensions)

	viper.SetDefault(hooksPostCopyKey, []string{})
	viper.SetDefault(hooksTimeoutKey, int64(defaultHooksTimeout.Seconds()))

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// hooksTimeout returns the configured per-hook timeout. Zero or negative disables it.
func hooksTimeout() time.Duration {
	seconds := viper.GetInt64(hooksTimeoutKey)
	if seconds <= 0 {
		return 0
	}

	return time.Duration(seconds) * time.Second
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels are accepted too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
