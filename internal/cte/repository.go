package cte

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, c *CTE) error
	BuscarPorID(db *gorm.DB, id uint) (*CTE, error)
	ListarPorCotacao(db *gorm.DB, cotacaoID uint) ([]CTE, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *CTE) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*CTE, error) {
	var c CTE
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) ListarPorCotacao(db *gorm.DB, cotacaoID uint) ([]CTE, error) {
	var list []CTE
	err := db.Where("cotacao_id = ?", cotacaoID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&CTE{}, id).Error
}
