package main

import (
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/semaphore"

	"github.com/maishanyun/msy-dashboard/internal/storage"
	"github.com/maishanyun/msy-dashboard/pkg/logger"
)

// datasync pulls the source spreadsheets (monthly sales workbooks plus the
// shipment and ingredient CSVs) from an S3-compatible bucket into the local
// data directory the server loads from.

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Log.Debug().Err(err).Msg("no .env file loaded")
	}

	app := &cli.App{
		Name:  "datasync",
		Usage: "Download dashboard source spreadsheets from object storage",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "endpoint",
				Usage:    "S3-compatible storage endpoint",
				Required: true,
				EnvVars:  []string{"STORAGE_ENDPOINT"},
			},
			&cli.StringFlag{
				Name:     "access-key",
				Usage:    "Storage access key",
				Required: true,
				EnvVars:  []string{"STORAGE_ACCESS_KEY"},
			},
			&cli.StringFlag{
				Name:     "secret-key",
				Usage:    "Storage secret key",
				Required: true,
				EnvVars:  []string{"STORAGE_SECRET_KEY"},
			},
			&cli.StringFlag{
				Name:     "bucket",
				Usage:    "Bucket holding the source spreadsheets",
				Required: true,
				EnvVars:  []string{"STORAGE_BUCKET"},
			},
			&cli.StringFlag{
				Name:    "region",
				Usage:   "Storage region",
				EnvVars: []string{"STORAGE_REGION"},
			},
			&cli.BoolFlag{
				Name:    "use-ssl",
				Usage:   "Use HTTPS for the storage endpoint",
				Value:   true,
				EnvVars: []string{"STORAGE_USE_SSL"},
			},
			&cli.StringFlag{
				Name:    "prefix",
				Usage:   "Object key prefix to sync",
				EnvVars: []string{"STORAGE_PREFIX"},
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "Local directory the server loads spreadsheets from",
				Value:   "./data",
				EnvVars: []string{"APP_DATA_DIR"},
			},
			&cli.Int64Flag{
				Name:  "concurrency",
				Usage: "Maximum concurrent downloads",
				Value: 4,
			},
		},
		Action: runSync,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("datasync failed")
	}
}

func runSync(c *cli.Context) error {
	client, err := storage.NewS3Client(storage.S3Config{
		Endpoint:  c.String("endpoint"),
		AccessKey: c.String("access-key"),
		SecretKey: c.String("secret-key"),
		Bucket:    c.String("bucket"),
		Region:    c.String("region"),
		UseSSL:    c.Bool("use-ssl"),
	})
	if err != nil {
		return err
	}

	dataDir := c.String("data-dir")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	prefix := strings.TrimSpace(c.String("prefix"))
	objects, err := client.ListObjects(c.Context, prefix)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(objects))
	for _, obj := range objects {
		if isSpreadsheet(obj.Key) {
			keys = append(keys, obj.Key)
		}
	}
	if len(keys) == 0 {
		logger.Log.Warn().Str("prefix", prefix).Msg("no spreadsheets found in bucket")
		return nil
	}

	// Bound concurrent downloads; the bucket may hold many months of data.
	sem := semaphore.NewWeighted(c.Int64("concurrency"))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, key := range keys {
		if err := sem.Acquire(c.Context, 1); err != nil {
			return err
		}
		wg.Add(1)
		go func(key string) {
			defer sem.Release(1)
			defer wg.Done()

			dest := filepath.Join(dataDir, path.Base(key))
			if err := client.DownloadObject(c.Context, key, dest); err != nil {
				logger.Log.Error().Err(err).Str("key", key).Msg("download failed")
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			logger.Log.Info().Str("key", key).Str("dest", dest).Msg("downloaded")
		}(key)
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	logger.Log.Info().Int("files", len(keys)).Str("dir", dataDir).Msg("sync complete")
	return nil
}

func isSpreadsheet(key string) bool {
	switch strings.ToLower(filepath.Ext(key)) {
	case ".csv", ".xlsx":
		return true
	}
	return false
}
