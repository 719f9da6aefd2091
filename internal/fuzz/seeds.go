package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxFuzzInput = 64 << 10 // 64 KiB

var builtinSeeds = []string{
	"",
	"let x = 5;",
	"1 + 2 * 3",
	"f(1, g(2), 'x').y",
	"a.b.c(d)",
	"!!done && -1 >= 2.5",
	"'unterminated",
	"\"mixed'",
	"f(1, 2",
	"=- --",
	"1.2.3",
	"{ [ ( ) ] };",
	"привет(мир)",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds every *.hy file under the repository testdata.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".hy" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clamp(src))
		return nil
	})
}

func clamp(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
