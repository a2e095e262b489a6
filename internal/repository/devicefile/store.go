// Package devicefile keeps the device identity and credential in a small
// YAML file with a single "device" section.
package devicefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kurochkinivan/onep_client/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	SectionDevice = "device"

	KeyCIK                     = "cik"
	KeyModel                   = "model"
	KeyVendor                  = "vendor"
	KeyUUID                    = "uuid"
	KeyActivationRetryInterval = "activation_retry_interval"
)

var ErrMissingSection = fmt.Errorf("missing %q section", SectionDevice)

type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing %q key in %q section", e.Key, SectionDevice)
}

type section struct {
	CIK                     *string  `yaml:"cik"`
	Model                   *string  `yaml:"model"`
	Vendor                  *string  `yaml:"vendor"`
	UUID                    *string  `yaml:"uuid"`
	ActivationRetryInterval *float64 `yaml:"activation_retry_interval,omitempty"`
}

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load() (*domain.Settings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read device file: %w", err)
	}

	var doc map[string]*section
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode device file %q: %w", s.path, err)
	}

	sect, ok := doc[SectionDevice]
	if !ok || sect == nil {
		return nil, ErrMissingSection
	}

	for _, req := range []struct {
		key   string
		value *string
	}{
		{KeyCIK, sect.CIK},
		{KeyModel, sect.Model},
		{KeyVendor, sect.Vendor},
		{KeyUUID, sect.UUID},
	} {
		if req.value == nil {
			return nil, &MissingKeyError{Key: req.key}
		}
	}

	settings := &domain.Settings{
		Identity: domain.Identity{
			Vendor: *sect.Vendor,
			Model:  *sect.Model,
			Serial: *sect.UUID,
		},
		CIK:                     *sect.CIK,
		ActivationRetryInterval: domain.DefaultActivationRetryInterval,
	}

	if sect.ActivationRetryInterval != nil {
		settings.ActivationRetryInterval = time.Duration(*sect.ActivationRetryInterval * float64(time.Second))
	}

	return settings, nil
}

// Save writes a fresh device file for settings.
func (s *Store) Save(settings *domain.Settings) error {
	interval := settings.ActivationRetryInterval.Seconds()
	doc := map[string]*section{
		SectionDevice: {
			CIK:                     &settings.CIK,
			Model:                   &settings.Model,
			Vendor:                  &settings.Vendor,
			UUID:                    &settings.Serial,
			ActivationRetryInterval: &interval,
		},
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode device file: %w", err)
	}

	return s.replace(data)
}

func (s *Store) SaveCIK(cik string) error {
	return s.set(KeyCIK, cik, "!!str")
}

func (s *Store) SaveActivationRetryInterval(interval time.Duration) error {
	return s.set(KeyActivationRetryInterval, strconv.FormatFloat(interval.Seconds(), 'f', -1, 64), "")
}

// set updates one key of the device section and keeps the rest of the file intact.
func (s *Store) set(key, value, tag string) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read device file: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("failed to decode device file %q: %w", s.path, err)
	}

	sect := findMapping(&root, SectionDevice)
	if sect == nil {
		return ErrMissingSection
	}

	if valueNode := findMapping(sect, key); valueNode != nil {
		valueNode.Kind = yaml.ScalarNode
		valueNode.Tag = tag
		valueNode.Value = value
		valueNode.Style = 0
	} else {
		sect.Content = append(sect.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value},
		)
	}

	out, err := yaml.Marshal(&root)
	if err != nil {
		return fmt.Errorf("failed to encode device file: %w", err)
	}

	return s.replace(out)
}

// replace swaps the file through a sibling temp file so a power loss never
// leaves an empty device file behind.
func (s *Store) replace(data []byte) (err error) {
	if len(data) == 0 {
		return errors.New("refusing to write empty device file")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".device-*.yml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, os.Remove(tmp.Name()))
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.Join(fmt.Errorf("failed to write temp file: %w", err), tmp.Close())
	}

	if err := tmp.Sync(); err != nil {
		return errors.Join(fmt.Errorf("failed to sync temp file: %w", err), tmp.Close())
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace device file: %w", err)
	}

	return nil
}

func findMapping(node *yaml.Node, key string) *yaml.Node {
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil
		}
		node = node.Content[0]
	}

	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}

	return nil
}
