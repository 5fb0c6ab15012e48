package safra

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, s *Safra) error
	ListarTodas(db *gorm.DB) ([]Safra, error)
	BuscarPorID(db *gorm.DB, id uint) (*Safra, error)
	Atualizar(db *gorm.DB, id uint, nome string) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, s *Safra) error {
	return db.Create(s).Error
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Safra, error) {
	var list []Safra
	err := db.Order("nome ASC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Safra, error) {
	var s Safra
	err := db.First(&s, id).Error
	return &s, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, nome string) error {
	return db.Model(&Safra{}).Where("id = ?", id).Update("nome", nome).Error
}

// Deletar aplica soft delete via gorm.DeletedAt.
func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Safra{}, id).Error
}
