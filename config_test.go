package markdownview

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestConfigValidateRejectsUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidateRejectsInvalidLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"

	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestConfigValidateRejectsInvalidFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Format = "xml"

	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestConfigValidateRejectsBlankExtension(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Parser.Extensions = append(cfg.Parser.Extensions, "  ")

	if err := cfg.Validate(); !errors.Is(err, ErrParserExtensionEmpty) {
		t.Fatalf("expected ErrParserExtensionEmpty, got %v", err)
	}
}
