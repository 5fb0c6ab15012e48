package transportadora

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Transportadora{}))
	return db
}

func TestSalvarEBuscar(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	nova := Transportadora{
		Nome:     "TransAgro",
		Email:    "contato@transagro.com.br",
		Telefone: "65 3333-0000",
	}
	require.NoError(t, repo.Salvar(db, &nova))
	require.NotZero(t, nova.ID)

	achada, err := repo.BuscarPorID(db, nova.ID)
	require.NoError(t, err)
	assert.Equal(t, "TransAgro", achada.Nome)
	assert.Equal(t, "contato@transagro.com.br", achada.Email)
}

func TestListarTodasEmOrdemAlfabetica(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	for _, nome := range []string{"Rodovia Sul", "Cerrado Log", "TransAgro"} {
		require.NoError(t, repo.Salvar(db, &Transportadora{Nome: nome}))
	}

	list, err := repo.ListarTodas(db)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Cerrado Log", list[0].Nome)
	assert.Equal(t, "Rodovia Sul", list[1].Nome)
	assert.Equal(t, "TransAgro", list[2].Nome)
}

func TestAtualizarSobrescreveContatos(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	original := Transportadora{Nome: "TransAgro", Email: "antigo@transagro.com.br"}
	require.NoError(t, repo.Salvar(db, &original))

	err := repo.Atualizar(db, original.ID, &Transportadora{
		Nome:   "TransAgro Ltda",
		Email:  "novo@transagro.com.br",
		Email2: "fiscal@transagro.com.br",
	})
	require.NoError(t, err)

	achada, err := repo.BuscarPorID(db, original.ID)
	require.NoError(t, err)
	assert.Equal(t, "TransAgro Ltda", achada.Nome)
	assert.Equal(t, "novo@transagro.com.br", achada.Email)
	assert.Equal(t, "fiscal@transagro.com.br", achada.Email2)
}

func TestAtualizarInexistente(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	err := repo.Atualizar(db, 999, &Transportadora{Nome: "X"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeletarEsconderDoFeed(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	ativa := Transportadora{Nome: "TransAgro"}
	removida := Transportadora{Nome: "Rodovia Sul"}
	require.NoError(t, repo.Salvar(db, &ativa))
	require.NoError(t, repo.Salvar(db, &removida))

	require.NoError(t, repo.Deletar(db, removida.ID))

	list, err := repo.ListarTodas(db)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "TransAgro", list[0].Nome)

	_, err = repo.BuscarPorID(db, removida.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// A linha continua no banco, apenas marcada.
	var total int64
	require.NoError(t, db.Unscoped().Model(&Transportadora{}).Count(&total).Error)
	assert.EqualValues(t, 2, total)
}
