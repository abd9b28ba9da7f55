package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rastechno/internal/cache"
	"github.com/rastechno/internal/config"
	"github.com/rastechno/internal/db"
	"github.com/rastechno/internal/handler"
	"github.com/rastechno/internal/router"
	"github.com/rastechno/internal/storage"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 缓存后端：配置了 Redis 时共享失效，否则使用进程内缓存
	var store cache.Store
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store = cache.NewRedisStore(client)
	} else {
		store = cache.NewMemoryStore()
	}
	readCache := cache.New(store, cache.DefaultTTL)

	// 上传存储：配置了 MinIO 时走对象存储，否则落盘到本地目录
	var uploads storage.Storage
	if cfg.MinIO.Endpoint != "" {
		minioStore, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize minio storage: %v", err)
		}
		uploads = minioStore
	} else {
		uploads = storage.NewLocal(cfg.UploadDir, cfg.UploadURLPath)
	}

	api := handler.NewAPI(db.DB, readCache, uploads)

	// 首次启动时根据环境变量创建管理员账号
	if cfg.AdminUserName != "" && cfg.AdminPassword != "" {
		if err := api.Users().EnsureAdmin(cfg.AdminUserName, cfg.AdminPassword); err != nil {
			log.Fatalf("failed to ensure admin user: %v", err)
		}
	}

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(&cfg, api)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
