package initializers

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Kariqs/bakebites/images"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var Thumbnails *images.Thumbnailer

func InitImages() {
	size := getIntEnv("IMAGE_SIZE", 250)
	timeout := getDurationEnv("IMAGE_FETCH_TIMEOUT", 5*time.Second)

	var cache images.Cache = images.NewMemoryCache()
	if bucket := os.Getenv("IMAGE_CACHE_BUCKET"); bucket != "" {
		cfg, err := config.LoadDefaultConfig(context.TODO())
		if err != nil {
			log.Printf("Error loading AWS config, thumbnails cached in memory only: %v", err)
		} else {
			cache = images.NewTieredCache(cache, images.NewS3Cache(s3.NewFromConfig(cfg), bucket, "thumbnails/"))
			log.Printf("Thumbnails cached in bucket %s.", bucket)
		}
	}

	Thumbnails = images.NewThumbnailer(cache, size, size, timeout)
}
