package usuario

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, u *Usuario) error
	BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error)
	BuscarPorID(db *gorm.DB, id uint) (*Usuario, error)
	ListarTodos(db *gorm.DB) ([]Usuario, error)
	Atualizar(db *gorm.DB, id uint, novosDados *UpdateUsuarioRequest) error
	AtualizarSenha(db *gorm.DB, id uint, hash string) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, u *Usuario) error {
	return db.Create(u).Error
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error) {
	var u Usuario
	err := db.Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	var u Usuario
	err := db.First(&u, id).Error
	return &u, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Usuario, error) {
	var usuarios []Usuario
	err := db.Order("nome ASC").Find(&usuarios).Error
	return usuarios, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *UpdateUsuarioRequest) error {
	var existente Usuario
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	if novosDados.Nome != nil {
		existente.Nome = *novosDados.Nome
	}
	if novosDados.Email != nil {
		existente.Email = *novosDados.Email
	}

	return db.Save(&existente).Error
}

func (r *repositoryImpl) AtualizarSenha(db *gorm.DB, id uint, hash string) error {
	return db.Model(&Usuario{}).Where("id = ?", id).Update("senha", hash).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Usuario{}, id).Error
}
