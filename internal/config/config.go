package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	configDirName  = ".wordtable"
	configFileName = "wordtable.conf"

	defaultTable     = "words"
	defaultFamily    = "word_attributes"
	defaultPointKey  = "internet"
	defaultScanStart = "inte"
	defaultScanEnd   = "internet"
	defaultBatchSize = 500
)

// Config is the fully resolved run configuration: the three required
// positional arguments plus optional overrides from the config file.
type Config struct {
	ProjectID  string
	InstanceID string
	WordsFile  string

	Table     string
	Family    string
	PointKey  string
	ScanStart string
	ScanEnd   string
	BatchSize int
	Debug     bool
}

// New resolves the configuration from the positional command-line arguments
// and the optional ~/.wordtable/wordtable.conf file. Credentials are not
// handled here; the Bigtable client reads them from the environment.
func New(args []string) (*Config, error) {
	if len(args) != 3 {
		return nil, errors.New("usage: wordtable <project-id> <instance-id> <words-file>")
	}

	cfg := &Config{
		ProjectID:  args[0],
		InstanceID: args[1],
		WordsFile:  args[2],
		Table:      defaultTable,
		Family:     defaultFamily,
		PointKey:   defaultPointKey,
		ScanStart:  defaultScanStart,
		ScanEnd:    defaultScanEnd,
		BatchSize:  defaultBatchSize,
	}

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	var errGrp []error
	if c.ProjectID == "" {
		errGrp = append(errGrp, errors.New("project id is required"))
	}
	if c.InstanceID == "" {
		errGrp = append(errGrp, errors.New("instance id is required"))
	}
	if c.WordsFile == "" {
		errGrp = append(errGrp, errors.New("words file is required"))
	}
	if c.BatchSize <= 0 {
		errGrp = append(errGrp, errors.New("batch size must be greater than 0"))
	}
	return errors.Join(errGrp...)
}

// loadFile applies overrides from the config file in the user's home
// directory. A missing file is not an error; defaults stand.
func (c *Config) loadFile() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, configDirName, configFileName)
	file, err := os.Open(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "table":
			c.Table = value
		case "family":
			c.Family = value
		case "point_key":
			c.PointKey = value
		case "scan_start":
			c.ScanStart = value
		case "scan_end":
			c.ScanEnd = value
		case "batch_size":
			c.BatchSize, err = strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid batch size value: %w", err)
			}
		case "debug":
			c.Debug = value == "true"
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}
