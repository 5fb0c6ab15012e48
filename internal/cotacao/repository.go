package cotacao

import (
	"gorm.io/gorm"
)

type Repository interface {
	ListarTodas(db *gorm.DB) ([]Cotacao, error)
	BuscarPorID(db *gorm.DB, id uint) (*Cotacao, error)
	Criar(db *gorm.DB, c *Cotacao) error
	Atualizar(db *gorm.DB, c *Cotacao) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// ListarTodas retorna todas as cotações com filhos carregados, mais recentes primeiro.
func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Cotacao, error) {
	var list []Cotacao
	err := db.
		Preload("Produtos").
		Preload("Transportadoras").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Cotacao, error) {
	var c Cotacao
	err := db.
		Preload("Produtos").
		Preload("Transportadoras").
		First(&c, id).Error
	return &c, err
}

// Criar grava o cabeçalho primeiro e depois os filhos, nessa ordem, sem
// transação. Se o cabeçalho falhar, nada é gravado; se um filho falhar depois,
// a cotação fica parcialmente populada e o erro é devolvido ao chamador.
func (r *repositoryImpl) Criar(db *gorm.DB, c *Cotacao) error {
	produtos := c.Produtos
	transportadoras := c.Transportadoras
	c.Produtos = nil
	c.Transportadoras = nil

	if err := db.Create(c).Error; err != nil {
		return err
	}

	for i := range produtos {
		produtos[i].ID = 0
		produtos[i].CotacaoID = c.ID
	}
	if len(produtos) > 0 {
		if err := db.Create(&produtos).Error; err != nil {
			return err
		}
	}
	c.Produtos = produtos

	for i := range transportadoras {
		transportadoras[i].ID = 0
		transportadoras[i].CotacaoID = c.ID
	}
	if len(transportadoras) > 0 {
		if err := db.Create(&transportadoras).Error; err != nil {
			return err
		}
	}
	c.Transportadoras = transportadoras

	return nil
}

// Atualizar persiste o cabeçalho e então substitui integralmente as coleções
// filhas: apaga todas as linhas existentes e reinsere as do rascunho.
// Não há diff de filhos; uma falha entre o delete e o reinsert deixa a
// cotação sem filhos.
func (r *repositoryImpl) Atualizar(db *gorm.DB, c *Cotacao) error {
	produtos := c.Produtos
	transportadoras := c.Transportadoras

	header := *c
	header.Produtos = nil
	header.Transportadoras = nil
	if err := db.Omit("Produtos", "Transportadoras").Save(&header).Error; err != nil {
		return err
	}

	if err := db.Where("cotacao_id = ?", c.ID).Delete(&Produto{}).Error; err != nil {
		return err
	}
	if err := db.Where("cotacao_id = ?", c.ID).Delete(&TransportadoraCotacao{}).Error; err != nil {
		return err
	}

	for i := range produtos {
		produtos[i].ID = 0
		produtos[i].CotacaoID = c.ID
	}
	if len(produtos) > 0 {
		if err := db.Create(&produtos).Error; err != nil {
			return err
		}
	}
	c.Produtos = produtos

	for i := range transportadoras {
		transportadoras[i].ID = 0
		transportadoras[i].CotacaoID = c.ID
	}
	if len(transportadoras) > 0 {
		if err := db.Create(&transportadoras).Error; err != nil {
			return err
		}
	}
	c.Transportadoras = transportadoras

	return nil
}

// Deletar remove o cabeçalho; os filhos caem pela constraint de cascade.
func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Cotacao{}, id).Error
}
