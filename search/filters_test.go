package search

import (
	"testing"
)

func TestAnyPrefixMatch(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		prefixes []string
		want     bool
	}{
		{
			name:     "single matching prefix",
			title:    "Опис проекта",
			prefixes: []string{"Опис"},
			want:     true,
		},
		{
			name:     "second prefix matches",
			title:    "План виконання",
			prefixes: []string{"Опис", "План"},
			want:     true,
		},
		{
			name:     "case-sensitive",
			title:    "Опис проекта",
			prefixes: []string{"опис"},
			want:     false,
		},
		{
			name:     "substring in the middle is not a prefix",
			title:    "Опис проекта",
			prefixes: []string{"проекта"},
			want:     false,
		},
		{
			name:     "empty prefix matches everything",
			title:    "anything",
			prefixes: []string{""},
			want:     true,
		},
		{
			name:     "no prefixes",
			title:    "anything",
			prefixes: nil,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := anyPrefixMatch(tt.title, tt.prefixes)
			if got != tt.want {
				t.Errorf("anyPrefixMatch(%q, %v) = %v, want %v", tt.title, tt.prefixes, got, tt.want)
			}
		})
	}
}

func TestAnyContainsFold(t *testing.T) {
	tests := []struct {
		name    string
		content string
		needles []string
		want    bool
	}{
		{
			name:    "exact substring",
			content: "опис проекту",
			needles: []string{"проект"},
			want:    true,
		},
		{
			name:    "case folds both sides",
			content: "задачі ПРОЕКТА",
			needles: []string{"Проект"},
			want:    true,
		},
		{
			name:    "ascii case folding",
			content: "Design Document",
			needles: []string{"design"},
			want:    true,
		},
		{
			name:    "absent substring",
			content: "технічне завдання",
			needles: []string{"проект"},
			want:    false,
		},
		{
			name:    "second needle matches",
			content: "перша фіча",
			needles: []string{"друга", "фіча"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := anyContainsFold(tt.content, tt.needles)
			if got != tt.want {
				t.Errorf("anyContainsFold(%q, %v) = %v, want %v", tt.content, tt.needles, got, tt.want)
			}
		})
	}
}

func TestAnyAuthorMatch(t *testing.T) {
	tests := []struct {
		name     string
		authorId string
		ids      []string
		want     bool
	}{
		{
			name:     "exact match",
			authorId: "author-1",
			ids:      []string{"author-1"},
			want:     true,
		},
		{
			name:     "match among several",
			authorId: "author-2",
			ids:      []string{"author-1", "author-2", "author-3"},
			want:     true,
		},
		{
			name:     "no match",
			authorId: "author-9",
			ids:      []string{"author-1", "author-2"},
			want:     false,
		},
		{
			name:     "empty id list",
			authorId: "author-1",
			ids:      nil,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := anyAuthorMatch(tt.authorId, tt.ids)
			if got != tt.want {
				t.Errorf("anyAuthorMatch(%q, %v) = %v, want %v", tt.authorId, tt.ids, got, tt.want)
			}
		})
	}
}
