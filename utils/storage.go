package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path"
	"regexp"
	"strings"
	"time"
)

// Client HTTP vers le proxy de stockage objet. Chaque upload renvoie une URL
// publique durable; la clé encode le chemin <dossier>/<timestamp>-<nom>.

var (
	storageBaseURLEnv = "STORAGE_API_URL"
	storageAPIKeyEnv  = "STORAGE_API_KEY"

	storageHTTPClient = &http.Client{Timeout: 30 * time.Second}
)

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// UploadedFile décrit un fichier stocké avec succès
type UploadedFile struct {
	URL      string
	FileKey  string
	Filename string
	MimeType string
	FileSize int64
}

// SanitizeFilename remplace tout caractère non alphanumérique (hors point et
// tiret) pour obtenir un nom sûr dans une clé de stockage
func SanitizeFilename(name string) string {
	return unsafeKeyChars.ReplaceAllString(name, "_")
}

func storageConfig() (string, string, error) {
	baseURL := strings.TrimRight(os.Getenv(storageBaseURLEnv), "/")
	apiKey := os.Getenv(storageAPIKeyEnv)
	if baseURL == "" || apiKey == "" {
		return "", "", fmt.Errorf("identifiants du proxy de stockage manquants: définir %s et %s", storageBaseURLEnv, storageAPIKeyEnv)
	}
	return baseURL, apiKey, nil
}

// UploadFile pousse les octets d'un fichier vers le proxy de stockage et
// renvoie l'URL publique. L'appelant décide si un échec est fatal; pour le
// pipeline de demandes il ne l'est jamais.
func UploadFile(data []byte, originalName, mimeType, folder string) (UploadedFile, error) {
	baseURL, apiKey, err := storageConfig()
	if err != nil {
		return UploadedFile{}, err
	}

	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	safeName := SanitizeFilename(originalName)
	if safeName == "" {
		safeName = "file"
	}
	key := fmt.Sprintf("%s/%d-%s", strings.Trim(folder, "/"), time.Now().UnixMilli(), safeName)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, path.Base(key)))
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return UploadedFile{}, fmt.Errorf("erreur lors de la préparation du fichier: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		return UploadedFile{}, fmt.Errorf("erreur lors de l'écriture du fichier: %v", err)
	}
	if err := writer.Close(); err != nil {
		return UploadedFile{}, fmt.Errorf("erreur lors de la finalisation du corps multipart: %v", err)
	}

	uploadURL := fmt.Sprintf("%s/v1/storage/upload?path=%s", baseURL, url.QueryEscape(key))
	req, err := http.NewRequest(http.MethodPost, uploadURL, body)
	if err != nil {
		return UploadedFile{}, fmt.Errorf("erreur lors de la création de la requête: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := storageHTTPClient.Do(req)
	if err != nil {
		return UploadedFile{}, fmt.Errorf("erreur lors de l'appel au proxy de stockage: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return UploadedFile{}, fmt.Errorf("upload refusé par le proxy de stockage (%s): %s", resp.Status, string(detail))
	}

	var payload struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return UploadedFile{}, fmt.Errorf("réponse du proxy de stockage illisible: %v", err)
	}

	return UploadedFile{
		URL:      payload.URL,
		FileKey:  key,
		Filename: originalName,
		MimeType: mimeType,
		FileSize: int64(len(data)),
	}, nil
}
