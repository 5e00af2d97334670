package pdf

import (
	"bytes"
	"os"
	"sync"
	"testing"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return &Extractor{tempDir: t.TempDir()}
}

func TestStageUsesUniquePathsPerCall(t *testing.T) {
	e := newTestExtractor(t)

	fileA, dirA, err := e.stage([]byte("payload-a"))
	if err != nil {
		t.Fatalf("stage: %v", err)
	}
	fileB, dirB, err := e.stage([]byte("payload-b"))
	if err != nil {
		t.Fatalf("stage: %v", err)
	}

	if fileA == fileB {
		t.Fatalf("staged files share a path: %s", fileA)
	}
	if dirA == dirB {
		t.Fatalf("output dirs share a path: %s", dirA)
	}

	gotA, err := os.ReadFile(fileA)
	if err != nil {
		t.Fatalf("read staged file: %v", err)
	}
	if !bytes.Equal(gotA, []byte("payload-a")) {
		t.Fatalf("first staging overwritten, got %q", gotA)
	}
	gotB, err := os.ReadFile(fileB)
	if err != nil {
		t.Fatalf("read staged file: %v", err)
	}
	if !bytes.Equal(gotB, []byte("payload-b")) {
		t.Fatalf("second staging corrupted, got %q", gotB)
	}
}

func TestStageConcurrentCallsDoNotCollide(t *testing.T) {
	e := newTestExtractor(t)

	const workers = 8
	files := make([]string, workers)
	payloads := make([][]byte, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		payloads[i] = []byte{'p', byte('0' + i)}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f, d, err := e.stage(payloads[i])
			if err != nil {
				t.Errorf("stage %d: %v", i, err)
				return
			}
			defer os.RemoveAll(d)
			files[i] = f
		}(i)
	}
	wg.Wait()

	seen := map[string]int{}
	for i, f := range files {
		if f == "" {
			continue
		}
		if prev, ok := seen[f]; ok {
			t.Fatalf("calls %d and %d staged to the same file %s", prev, i, f)
		}
		seen[f] = i

		got, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read staged file %d: %v", i, err)
		}
		if !bytes.Equal(got, payloads[i]) {
			t.Fatalf("staged file %d holds %q, want %q", i, got, payloads[i])
		}
	}
}
