package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NVIDIA/cookbook/pkg/errors"
)

type testMenu struct {
	Dishes   []string `json:"dishes" yaml:"dishes"`
	Servings int      `json:"servings" yaml:"servings"`
}

func TestFromFile(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		want     testMenu
		wantCode errors.ErrorCode
	}{
		{
			name:    "yaml",
			file:    "menu.yaml",
			content: "dishes:\n  - Omelette\nservings: 4\n",
			want:    testMenu{Dishes: []string{"Omelette"}, Servings: 4},
		},
		{
			name:    "yml with cyrillic",
			file:    "menu.YML",
			content: "dishes:\n  - Омлет\nservings: 2\n",
			want:    testMenu{Dishes: []string{"Омлет"}, Servings: 2},
		},
		{
			name:    "json",
			file:    "menu.json",
			content: `{"dishes":["Toast"],"servings":2}`,
			want:    testMenu{Dishes: []string{"Toast"}, Servings: 2},
		},
		{
			name:    "empty file",
			file:    "menu.yaml",
			content: "",
			want:    testMenu{},
		},
		{
			name:     "unknown yaml field",
			file:     "menu.yaml",
			content:  "dish: Toast\n",
			wantCode: errors.ErrCodeParse,
		},
		{
			name:     "unknown json field",
			file:     "menu.json",
			content:  `{"servings":2,"guests":4}`,
			wantCode: errors.ErrCodeParse,
		},
		{
			name:     "invalid json",
			file:     "menu.json",
			content:  `{"dishes":`,
			wantCode: errors.ErrCodeParse,
		},
		{
			name:     "invalid yaml",
			file:     "menu.yaml",
			content:  "dishes: [unterminated",
			wantCode: errors.ErrCodeParse,
		},
		{
			name:     "unsupported extension",
			file:     "menu.txt",
			content:  "Toast\n",
			wantCode: errors.ErrCodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("failed to write file: %v", err)
			}

			got, err := FromFile[testMenu](path)
			if tt.wantCode != "" {
				if errors.CodeOf(err) != tt.wantCode {
					t.Fatalf("FromFile() error = %v, want code %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromFile() unexpected error: %v", err)
			}
			if got.Servings != tt.want.Servings || strings.Join(got.Dishes, ",") != strings.Join(tt.want.Dishes, ",") {
				t.Errorf("FromFile() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile[testMenu](filepath.Join(t.TempDir(), "missing.yaml"))
	if errors.CodeOf(err) != errors.ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}
