package storageControllers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Product and category images live in an S3-compatible bucket (Cloudflare R2
// in production). The API hands the browser a presigned PUT URL and later
// serves the object back through /objects/*.

type storageConfig struct {
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Endpoint        string
}

func getStorageConfig() (storageConfig, error) {
	cfg := storageConfig{
		AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		Bucket:          os.Getenv("R2_BUCKET_NAME"),
		Endpoint:        os.Getenv("R2_ENDPOINT"),
	}
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" || cfg.Bucket == "" || cfg.Endpoint == "" {
		return cfg, fmt.Errorf("object storage configuration missing")
	}
	return cfg, nil
}

func newClient(cfg storageConfig) *s3.Client {
	return s3.NewFromConfig(aws.Config{
		Region:       "auto",
		BaseEndpoint: aws.String(cfg.Endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	})
}

type UploadURLInput struct {
	FileName string `json:"fileName"`
}

// POST /api/objects/upload
func GetUploadURL() gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := getStorageConfig()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var input UploadURLInput
		_ = c.ShouldBindJSON(&input)

		ext := "jpg"
		if input.FileName != "" {
			if e := strings.TrimPrefix(path.Ext(input.FileName), "."); e != "" {
				ext = e
			}
		}
		objectKey := "products/" + uuid.NewString() + "." + ext

		presigner := s3.NewPresignClient(newClient(cfg))
		presigned, err := presigner.PresignPutObject(c.Request.Context(), &s3.PutObjectInput{
			Bucket:      aws.String(cfg.Bucket),
			Key:         aws.String(objectKey),
			ContentType: aws.String("image/" + ext),
		}, s3.WithPresignExpires(15*time.Minute))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get upload URL"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"uploadURL": presigned.URL,
			"publicURL": "/objects/" + objectKey,
		})
	}
}

// GET /objects/*objectPath
func ServeObject() gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := getStorageConfig()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		objectKey := strings.TrimPrefix(c.Param("objectPath"), "/")
		if objectKey == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Object path is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		out, err := newClient(cfg).GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(cfg.Bucket),
			Key:    aws.String(objectKey),
		})
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Object not found"})
			return
		}
		defer out.Body.Close()

		if out.ContentType != nil {
			c.Header("Content-Type", *out.ContentType)
		}
		c.Header("Cache-Control", "public, max-age=3600")
		c.Status(http.StatusOK)
		_, _ = io.Copy(c.Writer, out.Body)
	}
}

// NormalizeObjectPath rewrites an upload or public URL into the /objects/<key>
// path stored on products and categories. Paths already in that form, and
// external URLs, pass through untouched.
func NormalizeObjectPath(raw string) string {
	if raw == "" || strings.HasPrefix(raw, "/objects/") {
		return raw
	}

	endpoint := os.Getenv("R2_ENDPOINT")
	bucket := os.Getenv("R2_BUCKET_NAME")
	if endpoint == "" || !strings.HasPrefix(raw, endpoint) {
		return raw
	}

	key := strings.TrimPrefix(raw, endpoint)
	key = strings.TrimPrefix(key, "/")
	key = strings.TrimPrefix(key, bucket+"/")
	if i := strings.IndexByte(key, '?'); i >= 0 {
		key = key[:i]
	}
	return "/objects/" + key
}
