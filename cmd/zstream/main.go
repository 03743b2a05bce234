package main

import (
	"bytes"
	"io"
	"os"

	"github.com/iamNilotpal/zstream/config"
	"github.com/iamNilotpal/zstream/internal/adapters/compression"
	"github.com/iamNilotpal/zstream/pkg/errors"
	"github.com/iamNilotpal/zstream/pkg/logger"
	"github.com/iamNilotpal/zstream/pkg/xorshift"
)

func main() {
	logger := logger.New("zstream")
	defer logger.Sync()

	cfg := config.DefaultConfig()
	cfg.Compression.Gzip = true

	// Deterministic sample payload.
	payload := make([]byte, 1<<16)
	xorshift.New(0, 0, 0, 0).Fill(payload)

	var compressed bytes.Buffer
	compressor, err := compression.NewCompressor(&compressed, &compression.Options{
		Gzip:       cfg.Compression.Gzip,
		Level:      cfg.Compression.Level,
		BufferSize: cfg.Compression.BufferSize,
		Logger:     logger,
	})
	if err != nil {
		if errors.IsValidationError(err) {
			err := errors.AsValidationError(err)
			logger.Infow("create compressor error", "field", err.Field, "value", err.Value, "error", err.Err)
		} else {
			logger.Infow("create compressor error", "error", err)
		}
		os.Exit(1)
	}

	if _, err := compressor.Write(payload); err != nil {
		logger.Infow("compress error", "error", err)
		os.Exit(1)
	}
	if err := compressor.Close(); err != nil {
		logger.Infow("finalize error", "error", err)
		os.Exit(1)
	}

	logger.Infow("compressed", "in", len(payload), "out", compressed.Len())

	decompressor, err := compression.NewDecompressor(&compressed, &compression.Options{
		Gzip:       cfg.Compression.Gzip,
		BufferSize: cfg.Compression.BufferSize,
		Logger:     logger,
	})
	if err != nil {
		logger.Infow("create decompressor error", "error", err)
		os.Exit(1)
	}
	defer decompressor.Close()

	restored, err := io.ReadAll(decompressor)
	if err != nil {
		logger.Infow("decompress error", "error", err)
		os.Exit(1)
	}

	logger.Infow("round trip complete", "restored", len(restored), "match", bytes.Equal(payload, restored))
}
