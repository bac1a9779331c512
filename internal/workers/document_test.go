package workers

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentExtract_Text(t *testing.T) {
	w := NewDocumentWorkerState("")

	input, _ := json.Marshal(map[string]string{
		"data":   base64.StdEncoding.EncodeToString([]byte("plain contract body")),
		"format": "txt",
	})
	out, err := w.Execute(context.Background(), "document_extract", input)
	require.NoError(t, err)

	var resp struct {
		Format string `json:"format"`
		Length int    `json:"length"`
		Text   string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.Equal(t, "txt", resp.Format)
	assert.Equal(t, "plain contract body", resp.Text)
	assert.Equal(t, len(resp.Text), resp.Length)
}

func TestDocumentExtract_Docx(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>Clause one.</w:t></w:r></w:p></w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	w := NewDocumentWorkerState("")
	input, _ := json.Marshal(map[string]string{
		"data":   base64.StdEncoding.EncodeToString(buf.Bytes()),
		"format": "docx",
	})
	out, err := w.Execute(context.Background(), "document_extract", input)
	require.NoError(t, err)

	var resp struct {
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.Equal(t, "Clause one.", resp.Text)
}

func TestDocumentExtract_Errors(t *testing.T) {
	w := NewDocumentWorkerState("")

	_, err := w.Execute(context.Background(), "document_extract", json.RawMessage(`{}`))
	assert.ErrorContains(t, err, "data required")

	input, _ := json.Marshal(map[string]string{"data": "%%% not base64 %%%", "format": "txt"})
	_, err = w.Execute(context.Background(), "document_extract", input)
	assert.ErrorContains(t, err, "failed to decode")

	input, _ = json.Marshal(map[string]string{
		"data":   base64.StdEncoding.EncodeToString([]byte("x")),
		"format": "odt",
	})
	_, err = w.Execute(context.Background(), "document_extract", input)
	assert.ErrorContains(t, err, "unsupported document format")
}

func TestDocumentLoad(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "lease.txt"), []byte("lease terms here"), 0644)
	require.NoError(t, err)

	w := NewDocumentWorkerState(tmpDir)

	input, _ := json.Marshal(map[string]string{"path": "lease.txt"})
	out, err := w.Execute(context.Background(), "document_load", input)
	require.NoError(t, err)

	var resp struct {
		Path   string `json:"path"`
		Format string `json:"format"`
		Text   string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.Equal(t, "lease.txt", resp.Path)
	assert.Equal(t, "txt", resp.Format)
	assert.Equal(t, "lease terms here", resp.Text)
}

func TestDocumentLoad_AbsolutePath(t *testing.T) {
	tmpDir := t.TempDir()
	abs := filepath.Join(tmpDir, "msa.txt")
	require.NoError(t, os.WriteFile(abs, []byte("absolute"), 0644))

	w := NewDocumentWorkerState("/somewhere/else")

	input, _ := json.Marshal(map[string]string{"path": abs})
	out, err := w.Execute(context.Background(), "document_load", input)
	require.NoError(t, err)

	var resp struct {
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.Equal(t, "absolute", resp.Text)
}

func TestDocumentLoad_Errors(t *testing.T) {
	w := NewDocumentWorkerState(t.TempDir())

	_, err := w.Execute(context.Background(), "document_load", json.RawMessage(`{}`))
	assert.ErrorContains(t, err, "path required")

	input, _ := json.Marshal(map[string]string{"path": "picture.png"})
	_, err = w.Execute(context.Background(), "document_load", input)
	assert.ErrorContains(t, err, "unsupported document format")

	input, _ = json.Marshal(map[string]string{"path": "missing.txt"})
	_, err = w.Execute(context.Background(), "document_load", input)
	assert.Error(t, err)
}
