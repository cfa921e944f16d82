package espelho

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Conectar abre o banco do espelho e garante o schema. O espelho é
// opcional: quem chama decide se a falha derruba o processo ou só
// desliga o cache.
func Conectar(host, port, user, password, dbname string, sslDisable bool) (*gorm.DB, error) {
	var sslMode string
	if sslDisable {
		sslMode = " sslmode=disable"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s%s", host, user, password, dbname, port, sslMode)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&EmpresaEspelhada{}); err != nil {
		return nil, err
	}
	return db, nil
}
