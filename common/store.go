package common

import (
	"context"
	"database/sql"
	"errors"
	"net/url"

	"github.com/bsthun/gut"
	_ "github.com/lib/pq"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.scnd.dev/open/grove/grouppath"
	"go.scnd.dev/open/grove/store/memory"
	"go.scnd.dev/open/grove/store/object"
	"go.scnd.dev/open/grove/store/postgres"
)

// NewStore constructs the backing store selected by configuration.
func NewStore(config *Config) grouppath.Store {
	switch *config.Store {
	case "postgres":
		return postgres.New(Postgres(config))
	case "object":
		store := object.New(Minio(config), *config.MinioBucket)
		if err := store.EnsureBucket(context.Background()); err != nil {
			gut.Fatal("unable to ensure bucket", err)
		}
		return store
	default:
		return memory.New()
	}
}

func Postgres(config *Config) *sql.DB {
	if config.PostgresDsn == nil {
		gut.Fatal("postgres store requires postgresDsn", errors.New("postgresDsn is not set"))
	}

	// * open connection
	db, err := sql.Open("postgres", *config.PostgresDsn)
	if err != nil {
		gut.Fatal("unable to open postgres", err)
	}
	if err := db.Ping(); err != nil {
		gut.Fatal("unable to ping postgres", err)
	}

	// * migrate schema
	if err := postgres.Migrate(db); err != nil {
		gut.Fatal("unable to migrate postgres", err)
	}

	return db
}

func Minio(config *Config) *minio.Client {
	if config.MinioEndpoint == nil || config.MinioAccessKey == nil || config.MinioSecretKey == nil || config.MinioBucket == nil {
		gut.Fatal("object store requires minio configuration", errors.New("minio settings are not set"))
	}

	// * initialize minio client
	parsed, err := url.Parse(*config.MinioEndpoint)
	if err != nil {
		gut.Fatal("failed to parse minio endpoint", err)
	}

	minioClient, err := minio.New(parsed.Host, &minio.Options{
		Creds:  credentials.NewStaticV4(*config.MinioAccessKey, *config.MinioSecretKey, ""),
		Secure: parsed.Scheme == "https",
	})

	if err != nil {
		gut.Fatal("failed to initialize minio", err)
	}

	return minioClient
}
