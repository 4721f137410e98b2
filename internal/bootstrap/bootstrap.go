// Package bootstrap opens the backing stores selected by configuration.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"

	"blog-api/internal/config"
	"blog-api/internal/repository"
	"blog-api/internal/repository/mongodb"
	"blog-api/internal/repository/sqlite"
	"blog-api/internal/storage"
)

// Stores holds initialised repositories and a function releasing their connection.
type Stores struct {
	Users    repository.UserRepository
	Articles repository.ArticleRepository
	Close    func()
}

func OpenStores(ctx context.Context, cfg config.Config, logger logrus.FieldLogger) (*Stores, error) {
	var stores Stores
	switch cfg.Database.Driver {
	case "mongo":
		client, err := mongodb.Connect(ctx, cfg.Database.URI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Database.Name)
		stores = Stores{
			Users:    mongodb.NewUserRepository(db),
			Articles: mongodb.NewArticleRepository(db),
			Close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					logger.Warnf("mongo disconnect: %v", err)
				}
			},
		}
		logger.Infof("using mongo database %s", cfg.Database.Name)
	case "sqlite":
		db, err := sqlite.Open(cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		stores = Stores{
			Users:    sqlite.NewUserRepository(db),
			Articles: sqlite.NewArticleRepository(db),
			Close:    func() { _ = db.Close() },
		}
		logger.Infof("using sqlite database %s", cfg.Database.Path)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}

	if err := stores.Users.Init(ctx); err != nil {
		stores.Close()
		return nil, fmt.Errorf("init user repository: %w", err)
	}
	if err := stores.Articles.Init(ctx); err != nil {
		stores.Close()
		return nil, fmt.Errorf("init article repository: %w", err)
	}
	return &stores, nil
}

// ImageStorage builds the S3 image store. It returns a nil Service when no bucket is configured.
func ImageStorage(ctx context.Context, cfg config.Config, logger logrus.FieldLogger) (storage.Service, error) {
	if cfg.Storage.Bucket == "" {
		logger.Warn("storage bucket not set, image uploads disabled")
		return nil, nil
	}

	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Storage.Region),
	}
	if cfg.AWS.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.AWS.Profile))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
			o.UsePathStyle = true
		}
	})
	logger.Infof("using s3 bucket %s (region %s)", cfg.Storage.Bucket, cfg.Storage.Region)
	return storage.NewS3Service(client, cfg.Storage.Bucket, cfg.Storage.Region, cfg.Storage.PublicBaseURL), nil
}
