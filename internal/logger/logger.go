// internal/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/configs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2" // Rotasi file log
)

// Setup mengkonfigurasi logger global Zerolog dari LogConfig.
// Output selalu ke Stderr (console human-readable atau JSON), dan opsional ke file
// dengan rotasi lumberjack.
//
// Mengembalikan io.Closer untuk file log (nil jika file logging tidak aktif);
// pemanggil wajib menutupnya saat proses selesai agar buffer tertulis.
func Setup(cfg configs.LogConfig) io.Closer {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
		fmt.Fprintf(os.Stderr, "[WARN] Invalid or missing LOG_LEVEL ('%s'), using default: %s\n", cfg.Level, level)
	}
	zerolog.SetGlobalLevel(level)

	var writers []io.Writer
	if cfg.Format == "json" {
		writers = append(writers, os.Stderr)
	} else {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	var fileCloser io.Closer
	if cfg.FileEnabled {
		dir := filepath.Dir(cfg.FilePath)
		if err := os.MkdirAll(dir, 0o744); err != nil {
			fmt.Fprintf(os.Stderr, "[ERROR] Can't create log directory '%s': %v. File logging disabled.\n", dir, err)
		} else {
			fileWriter := &lumberjack.Logger{
				Filename:   cfg.FilePath,
				MaxSize:    cfg.FileMaxSizeMB,
				MaxBackups: cfg.FileMaxBackups,
				MaxAge:     cfg.FileMaxAgeDays,
				Compress:   cfg.FileCompress,
			}
			writers = append(writers, fileWriter)
			fileCloser = fileWriter
		}
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Caller().Logger()

	log.Info().
		Str("level", zerolog.GlobalLevel().String()).
		Str("format", cfg.Format).
		Bool("file_logging", fileCloser != nil).
		Msg("Global logger initialized")

	return fileCloser
}
