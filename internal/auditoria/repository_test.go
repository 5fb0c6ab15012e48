package auditoria

import (
	"fmt"
	"testing"
	"time"

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
	require.NoError(t, db.AutoMigrate(&Auditoria{}))
	return db
}

func TestRegistrarEListar(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	entrada := Auditoria{
		UsuarioID:    1,
		UsuarioEmail: "ana@agrofrete.com.br",
		Acao:         AcaoUpdate,
		Tabela:       "cotacoes",
		RegistroID:   7,
		DadosAnteriores: map[string]any{
			"cliente": "Fazenda Santa Rita",
		},
		DadosNovos: map[string]any{
			"cliente": "Fazenda Boa Vista",
		},
	}
	require.NoError(t, repo.Registrar(db, &entrada))
	assert.NotZero(t, entrada.ID)

	list, err := repo.ListarRecentes(db)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "cotacoes", list[0].Tabela)
	assert.Equal(t, "Fazenda Boa Vista", list[0].DadosNovos["cliente"])
}

func TestListarRecentesMaisNovasPrimeiro(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		e := Auditoria{
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
			Acao:       AcaoCreate,
			Tabela:     "cotacoes",
			RegistroID: uint(i + 1),
		}
		require.NoError(t, repo.Registrar(db, &e))
	}

	list, err := repo.ListarRecentes(db)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, uint(3), list[0].RegistroID)
	assert.Equal(t, uint(1), list[2].RegistroID)
}

func TestListarRecentesRespeitaLimite(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < LimiteFeed+10; i++ {
		e := Auditoria{
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
			Acao:       AcaoCreate,
			Tabela:     "cotacoes",
			RegistroID: uint(i + 1),
		}
		require.NoError(t, repo.Registrar(db, &e))
	}

	list, err := repo.ListarRecentes(db)
	require.NoError(t, err)
	assert.Len(t, list, LimiteFeed)
	// As mais antigas ficam de fora.
	assert.Equal(t, uint(LimiteFeed+10), list[0].RegistroID)
}

func TestListarPorTabela(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	require.NoError(t, repo.Registrar(db, &Auditoria{Acao: AcaoCreate, Tabela: "cotacoes", RegistroID: 1}))
	require.NoError(t, repo.Registrar(db, &Auditoria{Acao: AcaoCreate, Tabela: "safras", RegistroID: 2}))
	require.NoError(t, repo.Registrar(db, &Auditoria{Acao: AcaoDelete, Tabela: "safras", RegistroID: 3}))

	list, err := repo.ListarPorTabela(db, "safras")
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, e := range list {
		assert.Equal(t, "safras", e.Tabela)
	}
}
