package transportadora

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, t *Transportadora) error
	ListarTodas(db *gorm.DB) ([]Transportadora, error)
	BuscarPorID(db *gorm.DB, id uint) (*Transportadora, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Transportadora) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, t *Transportadora) error {
	return db.Create(t).Error
}

// ListarTodas omite os registros com soft delete, em ordem alfabética.
func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Transportadora, error) {
	var list []Transportadora
	err := db.Order("nome ASC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Transportadora, error) {
	var t Transportadora
	err := db.First(&t, id).Error
	return &t, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Transportadora) error {
	var existente Transportadora
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Email = novosDados.Email
	existente.Email2 = novosDados.Email2
	existente.Telefone = novosDados.Telefone
	existente.Telefone2 = novosDados.Telefone2

	return db.Save(&existente).Error
}

// Deletar marca o registro com timestamp de exclusão (soft delete).
func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Transportadora{}, id).Error
}
