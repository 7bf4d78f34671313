package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aigc-audit-admin/db"
	"aigc-audit-admin/middleware"
	"aigc-audit-admin/pkg/config"
	"aigc-audit-admin/pkg/monitoring"
	"aigc-audit-admin/redis"
	"aigc-audit-admin/router"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 构建时注入的变量
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-version", "--version", "-v":
			fmt.Printf("AIGC Audit Admin\n")
			fmt.Printf("Version: %s\n", Version)
			fmt.Printf("Build Time: %s\n", BuildTime)
			fmt.Printf("Git Commit: %s\n", GitCommit)
			return
		}
	}

	// 初始化配置
	if err := config.InitConfig(); err != nil {
		log.Fatalf("配置初始化失败: %v", err)
	}
	cfg := config.GetConfig()

	// 设置时区
	loc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		panic("无法加载时区: " + err.Error())
	}
	time.Local = loc

	// 初始化数据库和 Redis
	db.Init()
	redis.InitRedis(cfg.Redis)

	log.Printf("启动审核服务 (端口: %s)...", cfg.Server.Port)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	app := gin.New()

	// 全局中间件
	app.Use(middleware.Recovery())
	app.Use(middleware.RequestID())
	app.Use(middleware.Performance())
	app.Use(middleware.RateLimit(cfg.Server.RateLimit))
	app.Use(monitoring.PrometheusMiddleware())

	// 监控指标端点
	app.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 健康检查端点
	app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":   "aigc-audit-admin",
			"status":    "healthy",
			"timestamp": time.Now(),
		})
	})

	// 审核后台路由
	router.InitAdmin(app)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      app,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("服务器启动在端口 :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("服务器强制关闭: %v", err)
	}

	redis.CloseRedis()

	log.Printf("服务器已安全关闭")
}
