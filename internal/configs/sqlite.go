package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "itask.com/itask/internal/models"
)

func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Utilizador{},
		&model.Gestor{},
		&model.Programador{},
		&model.TipoTarefa{},
		&model.Tarefa{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
