package message

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// scenario is one golden pipeline case loaded from testdata/scenarios.yaml.
// Hide flags are pointers so an omitted flag inherits the pipeline default
// (true) rather than the YAML zero value.
type scenario struct {
	Name                 string   `yaml:"name"`
	Raw                  string   `yaml:"raw"`
	HideCodeBlocks       *bool    `yaml:"hide_code_blocks"`
	HideFileMarkers      *bool    `yaml:"hide_file_markers"`
	ShowTechnicalDetails bool     `yaml:"show_technical_details"`
	UserType             string   `yaml:"user_type"`
	WantHasCode          bool     `yaml:"want_has_code"`
	WantStatus           string   `yaml:"want_status"`
	WantFiles            []string `yaml:"want_files"`
	ContentContains      []string `yaml:"content_contains"`
	ContentExcludes      []string `yaml:"content_excludes"`
}

func (s scenario) options() Options {
	opts := DefaultOptions()
	if s.HideCodeBlocks != nil {
		opts.HideCodeBlocks = *s.HideCodeBlocks
	}
	if s.HideFileMarkers != nil {
		opts.HideFileMarkers = *s.HideFileMarkers
	}
	opts.ShowTechnicalDetails = s.ShowTechnicalDetails
	if s.UserType != "" {
		opts.UserType = UserType(s.UserType)
	}
	return opts
}

func TestParseMessage_Scenarios(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(filepath.Join("testdata", "scenarios.yaml"))
	if err != nil {
		t.Fatalf("reading scenarios: %v", err)
	}

	var scenarios []scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		t.Fatalf("decoding scenarios: %v", err)
	}
	if len(scenarios) == 0 {
		t.Fatal("no scenarios loaded")
	}

	for _, sc := range scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			t.Parallel()

			got := ParseMessage(sc.Raw, sc.options())

			if got.HasCode != sc.WantHasCode {
				t.Errorf("HasCode = %v, want %v", got.HasCode, sc.WantHasCode)
			}
			if string(got.DeploymentStatus) != sc.WantStatus {
				t.Errorf("DeploymentStatus = %q, want %q", got.DeploymentStatus, sc.WantStatus)
			}
			if len(got.FilesGenerated) != len(sc.WantFiles) {
				t.Fatalf("FilesGenerated = %v, want %v", got.FilesGenerated, sc.WantFiles)
			}
			for i, want := range sc.WantFiles {
				if got.FilesGenerated[i] != want {
					t.Errorf("FilesGenerated[%d] = %q, want %q", i, got.FilesGenerated[i], want)
				}
			}
			for _, want := range sc.ContentContains {
				if !strings.Contains(got.Content, want) {
					t.Errorf("Content = %q, want it to contain %q", got.Content, want)
				}
			}
			for _, unwanted := range sc.ContentExcludes {
				if strings.Contains(got.Content, unwanted) {
					t.Errorf("Content = %q, must not contain %q", got.Content, unwanted)
				}
			}
		})
	}
}
