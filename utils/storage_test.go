package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "garden_photo.jpg", SanitizeFilename("garden photo.jpg"))
	assert.Equal(t, "before-1.jpeg", SanitizeFilename("before-1.jpeg"))
	assert.Equal(t, "__.jpg", SanitizeFilename("庭木.jpg"))
	assert.Equal(t, "a_b_c.png", SanitizeFilename("a/b\\c.png"))
}

func TestUploadFile_Success(t *testing.T) {
	var gotPath, gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/storage/upload", r.URL.Path)
		gotPath = r.URL.Query().Get("path")
		gotAuth = r.Header.Get("Authorization")

		err := r.ParseMultipartForm(1 << 20)
		assert.NoError(t, err)
		_, header, err := r.FormFile("file")
		assert.NoError(t, err)
		assert.NotEmpty(t, header.Filename)

		json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example.com/" + gotPath})
	}))
	defer server.Close()

	t.Setenv("STORAGE_API_URL", server.URL)
	t.Setenv("STORAGE_API_KEY", "test-key")

	up, err := UploadFile([]byte("fake image"), "my garden.jpg", "image/jpeg", "inquiries/42")
	assert.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	// la clé encode <dossier>/<timestamp>-<nom assaini>
	assert.Regexp(t, regexp.MustCompile(`^inquiries/42/\d+-my_garden\.jpg$`), up.FileKey)
	assert.Equal(t, up.FileKey, gotPath)
	assert.Equal(t, "https://cdn.example.com/"+up.FileKey, up.URL)
	assert.Equal(t, "my garden.jpg", up.Filename)
	assert.Equal(t, "image/jpeg", up.MimeType)
	assert.Equal(t, int64(len("fake image")), up.FileSize)
}

func TestUploadFile_DefaultMimeType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example.com/x"})
	}))
	defer server.Close()

	t.Setenv("STORAGE_API_URL", server.URL)
	t.Setenv("STORAGE_API_KEY", "test-key")

	up, err := UploadFile([]byte("data"), "file.bin", "", "inquiries/1")
	assert.NoError(t, err)
	assert.Equal(t, "application/octet-stream", up.MimeType)
}

func TestUploadFile_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer server.Close()

	t.Setenv("STORAGE_API_URL", server.URL)
	t.Setenv("STORAGE_API_KEY", "test-key")

	_, err := UploadFile([]byte("data"), "file.jpg", "image/jpeg", "inquiries/1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestUploadFile_MissingCredentials(t *testing.T) {
	t.Setenv("STORAGE_API_URL", "")
	t.Setenv("STORAGE_API_KEY", "")

	_, err := UploadFile([]byte("data"), "file.jpg", "image/jpeg", "inquiries/1")
	assert.Error(t, err)
}
