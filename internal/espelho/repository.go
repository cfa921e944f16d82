package espelho

import "gorm.io/gorm"

type Repository interface {
	SubstituirTodas(db *gorm.DB, registros []EmpresaEspelhada) error
	ListarTodas(db *gorm.DB) ([]EmpresaEspelhada, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// SubstituirTodas troca o espelho inteiro pelo snapshot novo, em transação.
func (r *repositoryImpl) SubstituirTodas(db *gorm.DB, registros []EmpresaEspelhada) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&EmpresaEspelhada{}).Error; err != nil {
			return err
		}
		if len(registros) == 0 {
			return nil
		}
		return tx.Create(&registros).Error
	})
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]EmpresaEspelhada, error) {
	var registros []EmpresaEspelhada
	err := db.Find(&registros).Error
	return registros, err
}
