package app

import (
	"gorm.io/gorm"

	"github.com/talkincode/tinyshop/config"
	"github.com/talkincode/tinyshop/internal/store"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// ProductContextProvider opens per-request persistence contexts
type ProductContextProvider interface {
	ProductContexts() store.Factory
}

// AppContext combines all provider interfaces for full application context
type AppContext interface {
	DBProvider
	ConfigProvider
	ProductContextProvider

	// Application lifecycle methods
	MigrateDB(track bool) error
	InitDb()
	DropAll()
	Release()
}
