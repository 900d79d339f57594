package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/duplocloud-labs/assistant/internal/rag"
	"github.com/duplocloud-labs/assistant/internal/websearch"
)

func TestDocSearchTool_Invoke(t *testing.T) {
	tests := []struct {
		name         string
		setupMocks   func(*MockRetriever)
		wantErr      bool
		wantContains []string
	}{
		{
			name: "formats passages with sources",
			setupMocks: func(retriever *MockRetriever) {
				retriever.EXPECT().Search(gomock.Any(), "tenant").Return([]rag.Passage{
					{Text: "A tenant is an isolated environment.", Source: "tenants.md", Score: 0.9},
				}, nil)
			},
			wantContains: []string{"[tenants.md]", "A tenant is an isolated environment."},
		},
		{
			name: "no matches",
			setupMocks: func(retriever *MockRetriever) {
				retriever.EXPECT().Search(gomock.Any(), "tenant").Return(nil, nil)
			},
			wantContains: []string{"No matching documentation found."},
		},
		{
			name: "search failure propagates",
			setupMocks: func(retriever *MockRetriever) {
				retriever.EXPECT().Search(gomock.Any(), "tenant").Return(nil, errors.New("index down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRetriever := NewMockRetriever(ctrl)
			tt.setupMocks(mockRetriever)

			tool := NewDocSearchTool(mockRetriever)
			got, err := tool.Invoke(context.Background(), "tenant")

			if tt.wantErr {
				if err == nil {
					t.Fatal("Invoke() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Invoke() unexpected error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Invoke() = %q, want containing %q", got, want)
				}
			}
		})
	}
}

func TestWebSearchTool_Invoke(t *testing.T) {
	tests := []struct {
		name         string
		setupMocks   func(*MockWebSearcher)
		wantErr      bool
		wantContains []string
	}{
		{
			name: "formats results with titles and links",
			setupMocks: func(searcher *MockWebSearcher) {
				searcher.EXPECT().Search(gomock.Any(), "weather in Paris").Return([]websearch.Result{
					{Title: "Paris weather", URL: "https://example.com/paris", Content: "Sunny, 21C"},
				}, nil)
			},
			wantContains: []string{"Paris weather", "https://example.com/paris", "Sunny, 21C"},
		},
		{
			name: "no results",
			setupMocks: func(searcher *MockWebSearcher) {
				searcher.EXPECT().Search(gomock.Any(), "weather in Paris").Return(nil, nil)
			},
			wantContains: []string{"No web results found."},
		},
		{
			name: "search failure propagates",
			setupMocks: func(searcher *MockWebSearcher) {
				searcher.EXPECT().Search(gomock.Any(), "weather in Paris").Return(nil, errors.New("engine unreachable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSearcher := NewMockWebSearcher(ctrl)
			tt.setupMocks(mockSearcher)

			tool := NewWebSearchTool(mockSearcher)
			got, err := tool.Invoke(context.Background(), "weather in Paris")

			if tt.wantErr {
				if err == nil {
					t.Fatal("Invoke() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Invoke() unexpected error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Invoke() = %q, want containing %q", got, want)
				}
			}
		})
	}
}
