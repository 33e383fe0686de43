package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookadmin/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	// 1. 构建DSN连接字符串
	dsn := cfg.Database.DSN()

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	// 最大打开连接数（建议：CPU核数 * 2 + 磁盘数量）
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)

	// 最大空闲连接数（建议：MaxOpenConns的1/4到1/2）
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	// 连接最大存活时间（防止数据库主动断开连接）
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 6. 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 学习要点：
// 1. AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
// 2. 生产环境应使用版本化的迁移脚本，不要依赖AutoMigrate
func autoMigrate(db *gorm.DB) error {
	// 注意：这里需要使用GORM的模型定义（带tag），不是domain层的实体
	// authors必须先于books迁移（books有指向authors的外键）
	return db.AutoMigrate(
		&AuthorModel{},
		&BookModel{},
		&RoleModel{},
		&UserModel{},
	)
}

// AuthorModel GORM作者模型
// 设计说明:
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/author/entity.go是领域实体，不依赖GORM
// 3. 作者不做软删除：删除受books表外键RESTRICT保护，
//    软删除会绕过外键检查，导致图书引用"已删除"的作者
type AuthorModel struct {
	ID        uint      `gorm:"primaryKey"`
	FirstName string    `gorm:"size:100;not null;comment:名"`
	LastName  string    `gorm:"size:100;not null;comment:姓"`
	Bio       string    `gorm:"size:500;comment:简介"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// BookModel GORM图书模型
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)，可空表示未定价
// 2. ISBN有唯一索引,防止重复
// 3. AuthorID外键关联authors表，RESTRICT删除：
//    - 创建图书引用不存在的作者 → MySQL错误1452
//    - 删除名下仍有图书的作者 → MySQL错误1451
type BookModel struct {
	ID        uint         `gorm:"primaryKey"`
	Title     string       `gorm:"index;size:200;not null;comment:书名"`
	Year      *int         `gorm:"comment:出版年份"`
	ISBN      string       `gorm:"uniqueIndex;size:20;not null;comment:ISBN号"`
	Summary   string       `gorm:"type:text;comment:内容简介"`
	Image     string       `gorm:"size:500;comment:封面图片URL"`
	Price     *int64       `gorm:"comment:价格(分)"`
	AuthorID  uint         `gorm:"index;not null;comment:作者ID"`
	Author    *AuthorModel `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt time.Time    `gorm:"comment:创建时间"`
	UpdatedAt time.Time    `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// RoleModel GORM角色模型
// 与UserModel通过user_roles中间表多对多关联
type RoleModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:50;not null;comment:角色名"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (RoleModel) TableName() string {
	return "roles"
}

// UserModel GORM用户模型
// 设计说明：
// 1. 密码只存bcrypt哈希值
// 2. Roles多对多关联，查询用户时Preload加载角色列表
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	FirstName string         `gorm:"size:100;comment:名"`
	LastName  string         `gorm:"size:100;comment:姓"`
	Roles     []RoleModel    `gorm:"many2many:user_roles"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}
