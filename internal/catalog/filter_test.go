package catalog_test

import (
	"testing"

	"github.com/aitoolhub/aitoolhub/internal/catalog"
	"github.com/aitoolhub/aitoolhub/internal/store"
)

func sampleTools() []store.Tool {
	return []store.Tool{
		{ID: "1", Name: "ChatGPT", Category: store.CategoryText, Description: "Conversational assistant"},
		{ID: "2", Name: "Copilot", Category: store.CategoryCode, Description: "Pair programming with GPT models"},
		{ID: "3", Name: "Midjourney", Category: store.CategoryImage, Description: "Image generation"},
	}
}

func ids(tools []store.Tool) []string {
	out := make([]string, 0, len(tools))
	for _, t := range tools {
		out = append(out, t.ID)
	}
	return out
}

func TestFilterTools(t *testing.T) {
	tests := []struct {
		name     string
		category string
		search   string
		want     []string
	}{
		{"no filters", "", "", []string{"1", "2", "3"}},
		{"category all", "all", "", []string{"1", "2", "3"}},
		{"category exact", "code", "", []string{"2"}},
		{"category case-insensitive", "CODE", "", []string{"2"}},
		{"category no match", "audio", "", nil},
		{"search name", "", "midjourney", []string{"3"}},
		{"search description", "", "gpt", []string{"1", "2"}},
		{"search case-insensitive", "", "GPT", []string{"1", "2"}},
		{"category and search", "text", "gpt", []string{"1"}},
		{"search no match", "", "blockchain", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(catalog.FilterTools(sampleTools(), tt.category, tt.search))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}
