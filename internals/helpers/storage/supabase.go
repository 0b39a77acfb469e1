package storage

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/google/uuid"

	"betulabla_backend/internals/configs"
)

const maxUploadSize = 5 * 1024 * 1024

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Bucket names, one per entity (matches the storage layout of the dashboard)
const (
	BucketOrphanPhotos   = "orphan-photos"
	BucketBoreholePhotos = "borehole-photos"
	BucketOutreachPhotos = "outreach-photos"
)

/* =======================================================================
   Upload / Delete against Supabase Storage (raw HTTP, service-role key)
======================================================================= */

// UploadPhoto reads a multipart image, normalizes it (resize + WebP) and
// uploads it to the given bucket. Returns the public URL and the object
// name (needed for compensation if the row write fails afterwards).
func UploadPhoto(bucket string, fileHeader *multipart.FileHeader) (publicURL, objectName string, err error) {
	if fileHeader.Size > maxUploadSize {
		return "", "", fmt.Errorf("image exceeds %dMB limit", maxUploadSize/(1024*1024))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open image: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", "", fmt.Errorf("failed to read image: %w", err)
	}

	data, contentType, ext, err := NormalizePhoto(buf.Bytes())
	if err != nil {
		return "", "", err
	}

	objectName = GenerateUniqueFilename(fileHeader.Filename, ext)
	if err := putObject(bucket, objectName, contentType, data); err != nil {
		return "", "", fmt.Errorf("image upload failed: %w", err)
	}

	publicURL = PublicURL(bucket, objectName)
	return publicURL, objectName, nil
}

// DeleteObject removes an uploaded object. Used as best-effort
// compensation when the row insert fails after a successful upload.
func DeleteObject(bucket, objectName string) error {
	base, key := supabaseCreds()
	if base == "" || key == "" {
		return fmt.Errorf("SUPABASE_PROJECT_URL or SUPABASE_SERVICE_ROLE_KEY not set")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", base, bucket, objectName)
	req, err := http.NewRequest(http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+key)

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("storage delete failed (%d): %s", resp.StatusCode, string(body))
	}
	return nil
}

func PublicURL(bucket, objectName string) string {
	base, _ := supabaseCreds()
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", base, bucket, url.PathEscape(objectName))
}

func putObject(bucket, objectName, contentType string, data []byte) error {
	base, key := supabaseCreds()
	if base == "" || key == "" {
		return fmt.Errorf("SUPABASE_PROJECT_URL or SUPABASE_SERVICE_ROLE_KEY not set")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", base, bucket, objectName)
	req, err := http.NewRequest(http.MethodPut, endpoint, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("storage upload failed (%d): %s", resp.StatusCode, string(body))
	}
	return nil
}

func supabaseCreds() (baseURL, serviceKey string) {
	return configs.SupabaseProjectURL, configs.SupabaseServiceKey
}

/* =======================================================================
   Object naming
=================================================================== */

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func SanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename builds <yyyymmdd>-<uuid>-<safe-name>.<ext>.
// The original extension is replaced since the photo is re-encoded.
func GenerateUniqueFilename(originalFilename, ext string) string {
	timestamp := time.Now().Format("20060102")
	safe := SanitizeFilename(trimExt(originalFilename))
	if safe == "" {
		safe = "photo"
	}
	return fmt.Sprintf("%s-%s-%s.%s", timestamp, uuid.New().String(), safe, ext)
}

func trimExt(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[:i]
		}
		if name[i] == '/' || name[i] == '\\' {
			break
		}
	}
	return name
}
