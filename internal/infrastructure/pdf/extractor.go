package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Extractor pulls text content out of uploaded PDF resumes. pdfcpu works on
// files, so the bytes are staged in a per-process temp directory. Staging
// paths are unique per call; one Extractor serves concurrent requests.
type Extractor struct {
	tempDir string
}

func NewExtractor() *Extractor {
	tempDir := filepath.Join(os.TempDir(), "jobradar-pdf")
	_ = os.MkdirAll(tempDir, 0o755)
	return &Extractor{tempDir: tempDir}
}

// stage writes the payload to a fresh temp file and creates a fresh output
// directory for extracted content. The caller removes both.
func (e *Extractor) stage(data []byte) (string, string, error) {
	f, err := os.CreateTemp(e.tempDir, "resume_*.pdf")
	if err != nil {
		return "", "", fmt.Errorf("stage pdf: %w", err)
	}
	tempFile := f.Name()
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tempFile)
		return "", "", fmt.Errorf("stage pdf: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tempFile)
		return "", "", fmt.Errorf("stage pdf: %w", err)
	}

	outDir, err := os.MkdirTemp(e.tempDir, "content_")
	if err != nil {
		_ = os.Remove(tempFile)
		return "", "", fmt.Errorf("stage pdf: %w", err)
	}
	return tempFile, outDir, nil
}

func (e *Extractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty pdf payload")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tempFile, outDir, err := e.stage(data)
	if err != nil {
		return "", err
	}
	defer os.Remove(tempFile)
	defer os.RemoveAll(outDir)

	pdfCtx, err := api.ReadContextFile(tempFile)
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	conf := model.NewDefaultConfiguration()
	if err := api.ExtractContentFile(tempFile, outDir, nil, conf); err != nil {
		return "", fmt.Errorf("extract pdf content: %w", err)
	}

	files, err := os.ReadDir(outDir)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(outDir, f.Name()))
		if err != nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.Write(content)
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("no text content in pdf (%d pages)", pdfCtx.PageCount)
	}
	return b.String(), nil
}
