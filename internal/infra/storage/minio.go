package storage

import (
	"fmt"
	"log"

	"portfolio-backend/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var Client *minio.Client

// Init connects the object-storage client used by the admin upload flow.
// Storage is optional: without an endpoint the upload endpoints answer 503
// and the rest of the site works normally.
func Init() error {
	if config.MINIO_ENDPOINT == "" {
		log.Println("⚠️  Object storage disabled: MINIO_ENDPOINT not set")
		return nil
	}

	client, err := minio.New(config.MINIO_ENDPOINT, &minio.Options{
		Creds:  credentials.NewStaticV4(config.MINIO_ACCESS_KEY, config.MINIO_SECRET_KEY, ""),
		Secure: config.MINIO_USE_SSL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize storage client: %v", err)
	}

	Client = client
	log.Println("connected to object storage")
	return nil
}

// PublicURL builds the browser-facing URL for an uploaded object.
func PublicURL(objectName string) string {
	if config.MINIO_PUBLIC_URL != "" {
		return fmt.Sprintf("%s/%s/%s", config.MINIO_PUBLIC_URL, config.MINIO_BUCKET, objectName)
	}
	scheme := "http"
	if config.MINIO_USE_SSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, config.MINIO_ENDPOINT, config.MINIO_BUCKET, objectName)
}
