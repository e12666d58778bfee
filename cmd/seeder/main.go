package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/dependencies"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

func main() {
	// --- 0. 解析命令行参数 ---
	var numUsers int
	var postsPerUser int
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numUsers, "users", 10, "要生成的用户数量 (默认: 10)")
	flag.IntVar(&postsPerUser, "posts", 5, "每个用户生成的帖子数量 (默认: 5)")
	flag.Parse()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		fmt.Printf("无法获取配置文件的绝对路径 '%s': %v\n", configFile, err)
		absConfigFile = configFile
	}
	fmt.Printf("准备使用配置文件 '%s' 生成 %d 个用户、每人 %d 条帖子...\n", absConfigFile, numUsers, postsPerUser)

	if numUsers <= 0 || postsPerUser <= 0 {
		fmt.Println("错误: 用户数量和帖子数量都必须大于 0")
		os.Exit(1)
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.BlogConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}
	fmt.Println("配置加载成功。")

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Logger().Sync()
	}()
	logger.Info("Logger 初始化成功 (Seeder)")

	// --- 3. 初始化 MySQL 数据库连接 ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}
	logger.Info("MySQL 连接成功 (Seeder)")

	// --- 4. 初始化 Repositories ---
	// 种子数据只写 MySQL，浏览量/评论缓存等 Redis 和 Kafka 侧的派生数据
	// 由服务运行后的定时任务与消费者自行补齐，这里不依赖它们。
	deps := &SeedRepos{
		DB:          db,
		UserRepo:    mysql.NewUserRepository(db, logger),
		PostRepo:    mysql.NewPostRepository(db, logger),
		CommentRepo: mysql.NewCommentRepository(db, logger),
		LikeRepo:    mysql.NewLikeRepository(db, logger),
		FollowRepo:  mysql.NewFollowRepository(db, logger),
	}

	// --- 5. 执行数据填充 ---
	ctx := context.Background()
	startTime := time.Now()
	logger.Info("开始执行数据填充...", zap.Int("用户数", numUsers), zap.Int("每人帖子数", postsPerUser))

	Seed(ctx, deps, logger, numUsers, postsPerUser)

	fmt.Printf("数据填充完成！总耗时: %v\n", time.Since(startTime))
	logger.Info("Seeder main: 所有任务完成，准备退出。")
}
