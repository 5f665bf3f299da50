package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"assetlink.dev/pkg/assetlink/internal/domain"
	m "assetlink.dev/pkg/assetlink/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "assetlink"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	fileFlagName    = "f"
	dirFlagName     = "dir"
	dryRunFlagName  = "dry-run"
	reportFlagName  = "report"
	verboseFlagName = "verbose"

	baseDirKey     = "base_dir"
	frontendDirKey = "frontend_dir"
	filenameKey    = "filename"

	staticPrefixKey     = "rewrite.static_prefix"
	loadTagKey          = "rewrite.load_tag"
	templateOpenKey     = "rewrite.template_open"
	templateCloseKey    = "rewrite.template_close"
	externalPrefixesKey = "rewrite.external_prefixes"
	tagsKey             = "rewrite.tags"
	categoriesKey       = "rewrite.categories"
	extensionsKey       = "rewrite.extensions"

	defaultBaseDir         = "."
	defaultFrontendDirName = "templates"
	defaultFilename        = "index.html"

	envPrefix = "ASSETLINK"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".assetlink.log"
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

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func setDefaults() {
	defaults := domain.DefaultRewriteConfig()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(baseDirKey, defaultBaseDir)
	viper.SetDefault(frontendDirKey, "")
	viper.SetDefault(filenameKey, defaultFilename)

	viper.SetDefault(staticPrefixKey, defaults.StaticPrefix)
	viper.SetDefault(loadTagKey, defaults.LoadTag)
	viper.SetDefault(templateOpenKey, defaults.TemplateOpen)
	viper.SetDefault(templateCloseKey, defaults.TemplateClose)
	viper.SetDefault(externalPrefixesKey, defaults.ExternalPrefixes)
	viper.SetDefault(tagsKey, map[string]string{
		string(m.TagLink):   defaults.TagAttrs[m.TagLink],
		string(m.TagScript): defaults.TagAttrs[m.TagScript],
		string(m.TagImg):    defaults.TagAttrs[m.TagImg],
	})
	viper.SetDefault(categoriesKey, map[string]string{
		string(m.CategoryJS):    defaults.Categories[m.CategoryJS],
		string(m.CategoryCSS):   defaults.Categories[m.CategoryCSS],
		string(m.CategoryImage): defaults.Categories[m.CategoryImage],
	})
	viper.SetDefault(extensionsKey, map[string]string{})

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// rewriteConfig builds the rewrite configuration from config file, env and defaults.
func rewriteConfig() domain.RewriteConfig {
	cfg := domain.RewriteConfig{
		TagAttrs:         make(map[m.Tag]string),
		StaticPrefix:     viper.GetString(staticPrefixKey),
		LoadTag:          viper.GetString(loadTagKey),
		TemplateOpen:     viper.GetString(templateOpenKey),
		TemplateClose:    viper.GetString(templateCloseKey),
		ExternalPrefixes: viper.GetStringSlice(externalPrefixesKey),
		Categories:       make(map[m.Category]string),
	}

	for tag, attr := range viper.GetStringMapString(tagsKey) {
		cfg.TagAttrs[m.Tag(strings.ToLower(tag))] = attr
	}

	for category, dir := range viper.GetStringMapString(categoriesKey) {
		cfg.Categories[m.Category(strings.ToLower(category))] = dir
	}

	extensions := viper.GetStringMapString(extensionsKey)
	if len(extensions) > 0 {
		cfg.Extensions = make(map[string]m.Category, len(extensions))
		for ext, category := range extensions {
			cfg.Extensions[normalizeExtension(ext)] = m.Category(strings.ToLower(category))
		}
	}

	return cfg
}

// normalizeExtension accepts "svg", ".svg" or ".SVG" and returns ".svg".
func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext
}

// frontendDir returns the directory holding the document to rewrite.
func frontendDir() string {
	if dir := strings.TrimSpace(viper.GetString(frontendDirKey)); dir != "" {
		return dir
	}

	baseDir := strings.TrimSpace(viper.GetString(baseDirKey))
	if baseDir == "" {
		baseDir = defaultBaseDir
	}

	return filepath.Join(baseDir, defaultFrontendDirName)
}

// documentPath resolves filename inside the frontend directory.
func documentPath(filename string) m.Path {
	if strings.TrimSpace(filename) == "" {
		filename = defaultFilename
	}

	return m.Path(filepath.Join(frontendDir(), filename))
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

	// Allow numeric slog levels as well (e.g. -4 for debug).
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
