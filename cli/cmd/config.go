package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/doublescale/anagrind"
	"github.com/doublescale/anagrind/dict"
)

const defaultDictPath = "data/words.txt"

// Config is the optional anagrind.yaml in the working directory. Flags
// override its values.
type Config struct {
	Dictionary string `yaml:"dictionary"`
	Upper      bool   `yaml:"upper"`
	Log        string `yaml:"log"`
}

// LoadConfig reads anagrind.yaml from the working directory. A missing
// file is not an error; the zero Config is returned.
func LoadConfig() (Config, error) {
	var result Config

	yamlFile, err := os.ReadFile("anagrind.yaml")
	if errors.Is(err, os.ErrNotExist) {
		return result, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(yamlFile, &result); err != nil {
		return Config{}, err
	}
	return result, nil
}

// resolve merges the command line flags over the config file.
func resolve() (Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return Config{}, err
	}
	if dictPath != "" {
		cfg.Dictionary = dictPath
	}
	if cfg.Dictionary == "" {
		cfg.Dictionary = defaultDictPath
	}
	if allowUpper {
		cfg.Upper = true
	}
	if logPath != "" {
		cfg.Log = logPath
	}
	return cfg, nil
}

// setupLogger points the standard logger at the configured sink. In
// interactive mode the screen owns the terminal, so without a log file
// everything is discarded.
func setupLogger(cfg Config, interactive bool) (*logrus.Logger, error) {
	logger := logrus.StandardLogger()
	if cfg.Log != "" {
		f, err := os.OpenFile(cfg.Log, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		logger.SetOutput(f)
		logger.SetLevel(logrus.DebugLevel)
	} else if interactive {
		logger.SetOutput(io.Discard)
	}
	return logger, nil
}

// loadIndex resolves the configuration and builds the dictionary index.
// An unreadable word list logs a warning and yields an empty index: the
// finder still runs and finds nothing, matching an empty dictionary file.
func loadIndex(interactive bool) (*dict.Index, error) {
	cfg, err := resolve()
	if err != nil {
		return nil, err
	}
	logger, err := setupLogger(cfg, interactive)
	if err != nil {
		return nil, err
	}

	idx, err := anagrind.LoadIndex(cfg.Dictionary, dict.BuildOptions{AllowUpper: cfg.Upper}, logger)
	if err != nil {
		logger.WithError(err).Warn("word list unavailable")
	}
	return idx, nil
}
