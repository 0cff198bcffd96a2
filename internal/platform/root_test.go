package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindRoot(t *testing.T) {
	// Create a temp directory structure
	// /tmp/
	//   site/ (chordsense.yaml)
	//     subdir/
	//       nested/
	//   blog/ (content/)
	//   empty/

	baseDir := t.TempDir()
	siteDir := filepath.Join(baseDir, "site")
	subDir := filepath.Join(siteDir, "subdir")
	nestedDir := filepath.Join(subDir, "nested")
	blogDir := filepath.Join(baseDir, "blog")
	emptyDir := filepath.Join(baseDir, "empty")

	for _, d := range []string{nestedDir, filepath.Join(blogDir, "content"), emptyDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			t.Fatal(err)
		}
	}

	// Create marker
	if err := os.WriteFile(filepath.Join(siteDir, ConfigFileName), []byte("title: x\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		startPath string
		wantRoot  string
		wantErr   bool
	}{
		{
			name:      "Start at Root",
			startPath: siteDir,
			wantRoot:  siteDir,
		},
		{
			name:      "Start in Subdir",
			startPath: subDir,
			wantRoot:  siteDir,
		},
		{
			name:      "Start Nested Deeply",
			startPath: nestedDir,
			wantRoot:  siteDir,
		},
		{
			name:      "Content Directory Marker",
			startPath: filepath.Join(blogDir, "content"),
			wantRoot:  blogDir,
		},
		{
			name:      "No Root Found",
			startPath: emptyDir,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindRoot(tt.startPath)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FindRoot() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.wantRoot {
				t.Errorf("FindRoot() = %v, want %v", got, tt.wantRoot)
			}
		})
	}
}
