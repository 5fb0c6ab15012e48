package grupo

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, g *Grupo) error
	ListarTodos(db *gorm.DB) ([]Grupo, error)
	BuscarPorID(db *gorm.DB, id uint) (*Grupo, error)
	Atualizar(db *gorm.DB, id uint, nome string) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, g *Grupo) error {
	return db.Create(g).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Grupo, error) {
	var list []Grupo
	err := db.Order("nome ASC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Grupo, error) {
	var g Grupo
	err := db.First(&g, id).Error
	return &g, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, nome string) error {
	return db.Model(&Grupo{}).Where("id = ?", id).Update("nome", nome).Error
}

// Deletar aplica soft delete via gorm.DeletedAt.
func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Grupo{}, id).Error
}
