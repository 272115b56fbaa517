package commands

import (
	"encoding/json"
	"fmt"

	"github.com/akasprzok/litedye/internal/dye"
	"gopkg.in/yaml.v2"
)

func formatCounts(demand, dyes dye.Counts, mode dye.Mode) map[string]any {
	result := map[string]any{
		"mode":   mode.String(),
		"colors": demand,
	}
	if mode != dye.NoCalc {
		result["dyes"] = dyes
	}
	return result
}

func formatItems(items []dye.Item) []map[string]any {
	data := make([]map[string]any, 0, len(items))
	for _, item := range items {
		entry := map[string]any{
			"item":  item.FullName(),
			"name":  item.Name,
			"count": item.Count,
		}
		if item.Color != dye.None {
			entry["color"] = item.Color.String()
		}
		data = append(data, entry)
	}
	return data
}

func toJSON(v any) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling to JSON: %w", err)
	}
	return out, nil
}

func toYAML(v any) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshalling to YAML: %w", err)
	}
	return out, nil
}
