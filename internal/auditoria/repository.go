package auditoria

import (
	"gorm.io/gorm"
)

// Limite de entradas devolvidas pelo feed de auditoria.
const LimiteFeed = 100

type Repository interface {
	Registrar(db *gorm.DB, a *Auditoria) error
	ListarRecentes(db *gorm.DB) ([]Auditoria, error)
	ListarPorTabela(db *gorm.DB, tabela string) ([]Auditoria, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Registrar(db *gorm.DB, a *Auditoria) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) ListarRecentes(db *gorm.DB) ([]Auditoria, error) {
	var list []Auditoria
	err := db.
		Order("created_at DESC").
		Limit(LimiteFeed).
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPorTabela(db *gorm.DB, tabela string) ([]Auditoria, error) {
	var list []Auditoria
	err := db.
		Where("tabela = ?", tabela).
		Order("created_at DESC").
		Limit(LimiteFeed).
		Find(&list).Error
	return list, err
}
