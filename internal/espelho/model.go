package espelho

import "gorm.io/gorm"

// EmpresaEspelhada é a cópia local do último snapshot bem-sucedido de
// empresas. É cache de conveniência para warm-up e diagnóstico, nunca
// fonte de verdade: o backend continua autoritativo.
type EmpresaEspelhada struct {
	gorm.Model
	EmpresaID  *int64 `gorm:"index" json:"empresaId"`
	CustomerID *int64 `json:"customerId"`
	Nome       string `gorm:"size:255" json:"nome"`
	CNPJ       string `gorm:"size:20" json:"cnpj"`
	Email      string `gorm:"size:255" json:"email"`
	Telefone   string `gorm:"size:30" json:"telefone"`
	Situacao   string `gorm:"size:100" json:"situacao"`
	// Payload cru em JSON, para não perder campo que o schema não previu
	Payload string `gorm:"type:text" json:"-"`
}
