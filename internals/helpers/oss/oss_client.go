package helper

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// Bucket handle is process-wide; credentials come from ENV.

var (
	bucketOnce sync.Once
	bucketInst *oss.Bucket
	bucketErr  error
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func GetOSSBucket() (*oss.Bucket, error) {
	bucketOnce.Do(func() {
		endpoint := getEnv("OSS_ENDPOINT")
		keyID := getEnv("OSS_ACCESS_KEY_ID")
		keySecret := getEnv("OSS_ACCESS_KEY_SECRET")
		bucketName := getEnv("OSS_BUCKET")

		if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
			bucketErr = fmt.Errorf("OSS config incomplete (OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET)")
			return
		}

		client, err := oss.New(endpoint, keyID, keySecret)
		if err != nil {
			bucketErr = err
			return
		}
		bucketInst, bucketErr = client.Bucket(bucketName)
	})
	return bucketInst, bucketErr
}

// PublicURL builds the canonical https URL of an uploaded object.
func PublicURL(objectKey string) string {
	bucketName := getEnv("OSS_BUCKET")
	endpoint := strings.TrimPrefix(strings.TrimPrefix(getEnv("OSS_ENDPOINT"), "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", bucketName, endpoint, objectKey)
}
