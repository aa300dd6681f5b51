package render

import (
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/personalens/internal/domain"
)

// JSON renders the persona as indented JSON.
func JSON(p *domain.Persona) (string, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render json: %w", err)
	}
	return string(data), nil
}
