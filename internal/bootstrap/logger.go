package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/config"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/logger"
)

// SetupLogger installs the process-wide logger. With LOG_DIR set it writes to a
// timestamped session file as well as stdout, keeping only the newest session
// files. The returned closer is nil when no file was opened.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		isDevelopment(cfg.Environment),
	)

	if cfg.LogDir == "" {
		logger.InitLogger(loggerConfig)
		logStartup(cfg)
		return nil, nil
	}

	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	// Make room for the new session file
	cleanupLogs(cfg.LogDir, LogFileRetentionCount-1)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	logger.InitLoggerWithWriter(loggerConfig, io.MultiWriter(os.Stdout, logFile))
	logStartup(cfg)
	slog.Info(LogMsgLoggingInitialized, "file", logFileName)

	return logFile, nil
}

func isDevelopment(env string) bool {
	return env == "dev" || env == "development"
}

func logStartup(cfg *config.Config) {
	slog.Info(LogMsgStartingOptimizer,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"price_guide_dir", cfg.PriceGuideDir,
		"drop_table_path", cfg.DropTablePath,
		"quests_path", cfg.QuestsPath,
		"quest_times_path", cfg.QuestTimesPath,
		"price_strategy", cfg.PriceStrategy,
		"item_cache_size", cfg.ItemCacheSize)
}

// cleanupLogs removes the oldest session logs until at most keep remain.
// Session file names sort chronologically.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) <= keep {
		return
	}

	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
