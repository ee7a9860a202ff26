package file

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/joeshaw/envdecode"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/cloudkit/internal/core/domain"
	"github.com/custodia-labs/cloudkit/internal/core/ports/driven"
	"github.com/custodia-labs/cloudkit/internal/logger"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsFileName is the name of the settings file inside the config directory.
const SettingsFileName = "settings.toml"

var log = logger.Component("config")

// settingsFile is the on-disk TOML layout.
type settingsFile struct {
	Dates struct {
		Format string `toml:"format"`
	} `toml:"dates"`
	Codec struct {
		ResolveHosts bool `toml:"resolve_hosts"`
	} `toml:"codec"`
	XML struct {
		NamespaceAware   bool              `toml:"namespace_aware"`
		Validating       bool              `toml:"validating"`
		ExternalEntities bool              `toml:"external_entities"`
		Entities         map[string]string `toml:"entities,omitempty"`
	} `toml:"xml"`
}

// settingsEnv holds environment overrides. Unset variables leave the file
// values in place.
type settingsEnv struct {
	// DateFormat overrides [dates] format. ENV: CLOUDKIT_DATE_FORMAT
	DateFormat string `env:"CLOUDKIT_DATE_FORMAT"`
	// ResolveHosts overrides [codec] resolve_hosts. ENV: CLOUDKIT_RESOLVE_HOSTS
	ResolveHosts string `env:"CLOUDKIT_RESOLVE_HOSTS"`
	// Entities adds [xml.entities], as "name=text" pairs separated by ";".
	// ENV: CLOUDKIT_XML_ENTITIES
	Entities []string `env:"CLOUDKIT_XML_ENTITIES"`
}

// SettingsStore is a file-based implementation of driven.SettingsStore using TOML.
// Settings are stored in a TOML file within the cloudkit config directory.
type SettingsStore struct {
	mu       sync.RWMutex
	filePath string
}

// NewSettingsStore creates a new TOML-based settings store.
// If configDir is empty, defaults to ~/.cloudkit/settings.toml.
func NewSettingsStore(configDir string) (*SettingsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".cloudkit")
	}
	return &SettingsStore{filePath: filepath.Join(configDir, SettingsFileName)}, nil
}

// NewSettingsStoreForFile creates a store backed by an explicit file path.
func NewSettingsStoreForFile(path string) *SettingsStore {
	return &SettingsStore{filePath: path}
}

// Path returns the settings file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}

// Load reads the settings file, applies environment overrides and validates
// the result. A missing file yields the defaults.
func (s *SettingsStore) Load() (domain.ParserSettings, error) {
	settings, err := s.readFile()
	if err != nil {
		return domain.ParserSettings{}, err
	}
	if err := applyEnv(&settings); err != nil {
		return domain.ParserSettings{}, err
	}
	if err := settings.Validate(); err != nil {
		return domain.ParserSettings{}, err
	}
	return settings, nil
}

// LoadStored reads the settings file without environment overrides.
func (s *SettingsStore) LoadStored() (domain.ParserSettings, error) {
	settings, err := s.readFile()
	if err != nil {
		return domain.ParserSettings{}, err
	}
	if err := settings.Validate(); err != nil {
		return domain.ParserSettings{}, err
	}
	return settings, nil
}

// readFile returns the defaults overlaid with the file contents.
func (s *SettingsStore) readFile() (domain.ParserSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file := toFile(domain.DefaultParserSettings())

	data, err := os.ReadFile(s.filePath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Debug("no settings file at %s, using defaults", s.filePath)
	case err != nil:
		return domain.ParserSettings{}, configError(err)
	default:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return domain.ParserSettings{}, configError(describeTOMLError(err))
		}
		log.Debug("loaded settings from %s", s.filePath)
	}
	return file.toSettings(), nil
}

// Save validates settings and writes them to the file.
func (s *SettingsStore) Save(settings domain.ParserSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	data, err := toml.Marshal(toFile(settings))
	if err != nil {
		return configError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0700); err != nil {
		return configError(err)
	}
	// Write with restricted permissions
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return configError(err)
	}
	return nil
}

func toFile(settings domain.ParserSettings) settingsFile {
	var f settingsFile
	f.Dates.Format = string(settings.DateFormat)
	f.Codec.ResolveHosts = settings.ResolveHosts
	f.XML.NamespaceAware = settings.XML.NamespaceAware
	f.XML.Validating = settings.XML.Validating
	f.XML.ExternalEntities = settings.XML.ExternalEntities
	f.XML.Entities = settings.XML.Entities
	return f
}

func (f settingsFile) toSettings() domain.ParserSettings {
	return domain.ParserSettings{
		DateFormat:   domain.DateFormat(strings.ToLower(strings.TrimSpace(f.Dates.Format))),
		ResolveHosts: f.Codec.ResolveHosts,
		XML: domain.XMLSettings{
			NamespaceAware:   f.XML.NamespaceAware,
			Validating:       f.XML.Validating,
			ExternalEntities: f.XML.ExternalEntities,
			Entities:         f.XML.Entities,
		},
	}
}

// applyEnv overlays CLOUDKIT_* environment variables onto settings.
func applyEnv(settings *domain.ParserSettings) error {
	var env settingsEnv
	if err := envdecode.Decode(&env); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return nil
		}
		return configError(err)
	}

	if env.DateFormat != "" {
		log.Debug("date format from environment: %s", env.DateFormat)
		settings.DateFormat = domain.DateFormat(strings.ToLower(strings.TrimSpace(env.DateFormat)))
	}
	if env.ResolveHosts != "" {
		v, err := strconv.ParseBool(env.ResolveHosts)
		if err != nil {
			return configError(fmt.Errorf("CLOUDKIT_RESOLVE_HOSTS: %w", err))
		}
		settings.ResolveHosts = v
	}
	if len(env.Entities) > 0 {
		entities := make(map[string]string, len(settings.XML.Entities)+len(env.Entities))
		for k, v := range settings.XML.Entities {
			entities[k] = v
		}
		for _, pair := range env.Entities {
			name, text, ok := strings.Cut(pair, "=")
			if !ok {
				return configError(fmt.Errorf("CLOUDKIT_XML_ENTITIES: %q is not name=text", pair))
			}
			entities[strings.TrimSpace(name)] = text
		}
		settings.XML.Entities = entities
	}
	return nil
}

// describeTOMLError adds the row and column to TOML decode errors.
func describeTOMLError(err error) error {
	var decErr *toml.DecodeError
	if errors.As(err, &decErr) {
		row, col := decErr.Position()
		return fmt.Errorf("line %d, column %d: %w", row, col, err)
	}
	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) {
		keys := make([]string, 0, len(strictErr.Errors))
		for _, e := range strictErr.Errors {
			keys = append(keys, strings.Join(e.Key(), "."))
		}
		return fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), err)
	}
	return err
}

func configError(err error) error {
	return &domain.ConfigurationError{Component: "config", Err: err}
}
