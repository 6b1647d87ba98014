package osm

import (
	"encoding/json"
	"fmt"
	"os"
)

// Elements содержит разобранные элементы входных данных
type Elements struct {
	Nodes     []Node     `json:"nodes,omitempty"`
	Ways      []Way      `json:"ways,omitempty"`
	Relations []Relation `json:"relations,omitempty"`
}

// LoadElements читает JSON файл с проецированными элементами
func LoadElements(path string) (*Elements, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл элементов: %w", err)
	}

	var elements Elements
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("ошибка разбора элементов: %w", err)
	}

	return &elements, nil
}
