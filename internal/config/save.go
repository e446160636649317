package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SaveThresholds updates the coverage thresholds in the config file.
// This preserves comments and formatting in other sections by using
// yaml.Node. The ratchet flow calls this after a passing coverage run.
func SaveThresholds(configPath string, th ThresholdsConfig) error {
	data, err := os.ReadFile(configPath) // #nosec G304 -- user-chosen config path
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	thresholdsNode := buildThresholdsNode(th)

	if doc.Kind == 0 {
		// Empty or new file - create the document structure.
		doc = yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{
				{
					Kind: yaml.MappingNode,
					Content: []*yaml.Node{
						{Kind: yaml.ScalarNode, Value: "coverage"},
						{
							Kind: yaml.MappingNode,
							Content: []*yaml.Node{
								{Kind: yaml.ScalarNode, Value: "thresholds"},
								thresholdsNode,
							},
						},
					},
				},
			},
		}
	} else if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root := doc.Content[0]
		if root.Kind == yaml.MappingNode {
			coverageNode := ensureMappingKey(root, "coverage")
			setMappingKey(coverageNode, "thresholds", thresholdsNode)
		}
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

// buildThresholdsNode creates a yaml.Node representing the thresholds mapping.
func buildThresholdsNode(th ThresholdsConfig) *yaml.Node {
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "min_overall"},
			{Kind: yaml.ScalarNode, Value: formatThreshold(th.MinOverall)},
			{Kind: yaml.ScalarNode, Value: "min_safety"},
			{Kind: yaml.ScalarNode, Value: formatThreshold(th.MinSafety)},
			{Kind: yaml.ScalarNode, Value: "min_integrity"},
			{Kind: yaml.ScalarNode, Value: formatThreshold(th.MinIntegrity)},
			{Kind: yaml.ScalarNode, Value: "max_errors"},
			{Kind: yaml.ScalarNode, Value: strconv.Itoa(th.MaxErrors)},
		},
	}
}

func formatThreshold(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ensureMappingKey returns the mapping node stored under key in parent,
// creating an empty one when the key is missing or holds a non-mapping.
func ensureMappingKey(parent *yaml.Node, key string) *yaml.Node {
	for i := 0; i < len(parent.Content)-1; i += 2 {
		if parent.Content[i].Value == key {
			if parent.Content[i+1].Kind == yaml.MappingNode {
				return parent.Content[i+1]
			}
			node := &yaml.Node{Kind: yaml.MappingNode}
			parent.Content[i+1] = node
			return node
		}
	}
	node := &yaml.Node{Kind: yaml.MappingNode}
	parent.Content = append(parent.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		node,
	)
	return node
}

// setMappingKey replaces the value stored under key in parent, appending
// the key when missing.
func setMappingKey(parent *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i < len(parent.Content)-1; i += 2 {
		if parent.Content[i].Value == key {
			parent.Content[i+1] = value
			return
		}
	}
	parent.Content = append(parent.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		value,
	)
}

// writeAtomic writes data to path via a temp file in the same directory.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".semreg.yaml.tmp.*")
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
