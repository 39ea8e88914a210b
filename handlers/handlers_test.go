package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"casexpert/models"
	ai "casexpert/services/intelligence"
	"casexpert/services/storage"

	"github.com/gin-gonic/gin"
)

func newUploadRequest(t *testing.T, field, name string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if field != "" {
		fw, err := mw.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		fw.Write(content)
	}
	mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadFileHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	r := gin.New()
	r.POST("/upload", NewStorageHandler(store).UploadFileHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, newUploadRequest(t, "file", "brief.pdf", []byte("%PDF-1.4")))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var att models.Attachment
	if err := json.Unmarshal(w.Body.Bytes(), &att); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if att.OriginalName != "brief.pdf" || att.Size != 8 {
		t.Fatalf("unexpected attachment: %+v", att)
	}
	if _, err := os.Stat(filepath.Join(dir, att.Filename)); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, newUploadRequest(t, "", "", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without file, got %d", w.Code)
	}
}

func TestSTTHandlerWithoutAudio(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAIHandler(nil, ai.NewMLService(nil, nil, nil))
	r := gin.New()
	r.POST("/upload", h.STTHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, newUploadRequest(t, "", "", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var tr models.Transcript
	if err := json.Unmarshal(w.Body.Bytes(), &tr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tr.Model != "Whisper-stub" {
		t.Fatalf("expected placeholder transcript, got %+v", tr)
	}
}

func TestHashHandlerDefaultsToSHA256(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAIHandler(nil, ai.NewMLService(nil, nil, nil))
	r := gin.New()
	r.POST("/hash", h.HashHandler)

	req := httptest.NewRequest(http.MethodPost, "/hash", bytes.NewBufferString(`{"content":"abc"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp models.HashResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if resp.Algorithm != "sha256" || resp.Hash != want {
		t.Fatalf("unexpected hash response: %+v", resp)
	}
}
