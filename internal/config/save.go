package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lep/jassbot/internal/ui/styles"
)

// ErrUnknownSetting is returned by SaveSetting for a key jassbot does not read.
var ErrUnknownSetting = errors.New("unknown setting")

// Settings lists the keys SaveSetting accepts, besides theme.colors.<token>.
var Settings = []string{
	"db",
	"api",
	"auto_reload",
	"log_level",
	"server.addr",
	"server.url_prefix",
	"server.base_url",
	"search.debounce",
	"search.timeout",
	"cache.markdown_ttl",
	"ui.markdown_style",
	"theme.preset",
	"tracing.enabled",
	"tracing.exporter",
	"tracing.file_path",
	"tracing.otlp_endpoint",
	"tracing.sample_rate",
}

const colorsPrefix = "theme.colors."

// settingPath splits key into the mapping keys leading to it. Color tokens
// contain dots themselves and stay one key.
func settingPath(key string) ([]string, error) {
	if token, ok := strings.CutPrefix(key, colorsPrefix); ok {
		if !slices.Contains(styles.AllTokens(), styles.ColorToken(token)) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSetting, key)
		}
		return []string{"theme", "colors", token}, nil
	}
	if !slices.Contains(Settings, key) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}
	return strings.Split(key, "."), nil
}

// SaveSetting sets one key, in dot notation, to value in the config file.
// Comments and formatting elsewhere in the file are kept by editing the
// yaml.Node tree. The file is created when missing.
func SaveSetting(configPath, key, value string) error {
	path, err := settingPath(key)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}
	if doc.Kind == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode}
	}
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 0 {
		doc.Content = []*yaml.Node{{Kind: yaml.MappingNode}}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("parsing config: top level is not a mapping")
	}

	node := doc.Content[0]
	for i, k := range path {
		last := i == len(path)-1
		child := lookup(node, k)
		if child == nil {
			child = &yaml.Node{Kind: yaml.MappingNode}
			if last {
				child = &yaml.Node{Kind: yaml.ScalarNode}
			}
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: k}, child)
		}
		if last {
			// Replace in place so a trailing comment on the line survives.
			child.Kind = yaml.ScalarNode
			child.Tag = ""
			child.Style = 0
			child.Content = nil
			child.Value = value
			break
		}
		if child.Kind != yaml.MappingNode {
			if child.Kind == yaml.ScalarNode && child.Value == "" {
				child.Kind = yaml.MappingNode
				child.Tag = ""
			} else {
				return fmt.Errorf("setting %s: %s is not a mapping", key, strings.Join(path[:i+1], "."))
			}
		}
		node = child
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	return writeAtomic(configPath, buf.Bytes())
}

// lookup returns the value node for key in mapping m, or nil.
func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i < len(m.Content)-1; i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// writeAtomic writes data to a temp file next to path and renames it over path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".jassbot.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
