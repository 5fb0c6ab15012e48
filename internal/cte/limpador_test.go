package cte

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
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
	require.NoError(t, db.AutoMigrate(&CTE{}))
	return db
}

func criarAnexo(t *testing.T, db *gorm.DB, cotacaoID uint, dir string) CTE {
	t.Helper()

	caminho := filepath.Join(dir, fmt.Sprintf("cte-%d.pdf", cotacaoID))
	require.NoError(t, os.WriteFile(caminho, []byte("%PDF-1.4"), 0o644))

	c := CTE{
		CotacaoID:               cotacaoID,
		TransportadoraCotacaoID: 1,
		NomeOriginal:            "cte.pdf",
		Caminho:                 caminho,
		Tamanho:                 8,
	}
	require.NoError(t, NewRepository().Salvar(db, &c))
	return c
}

func TestRemoverPorCotacaoApagaLinhasEArquivos(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()

	daCotacao := criarAnexo(t, db, 1, dir)
	deOutra := criarAnexo(t, db, 2, dir)

	l := NewLimpador(zerolog.Nop())
	require.NoError(t, l.RemoverPorCotacao(db, 1))

	restantes, err := l.Repository.ListarPorCotacao(db, 1)
	require.NoError(t, err)
	assert.Empty(t, restantes)

	_, err = os.Stat(daCotacao.Caminho)
	assert.True(t, os.IsNotExist(err))

	// Anexos de outras cotações ficam intocados.
	outras, err := l.Repository.ListarPorCotacao(db, 2)
	require.NoError(t, err)
	assert.Len(t, outras, 1)
	_, err = os.Stat(deOutra.Caminho)
	assert.NoError(t, err)
}

func TestRemoverPorCotacaoSemAnexos(t *testing.T) {
	db := newTestDB(t)

	l := NewLimpador(zerolog.Nop())
	assert.NoError(t, l.RemoverPorCotacao(db, 99))
}

func TestRemoverPorCotacaoArquivoJaSumiu(t *testing.T) {
	db := newTestDB(t)
	anexo := criarAnexo(t, db, 1, t.TempDir())
	require.NoError(t, os.Remove(anexo.Caminho))

	l := NewLimpador(zerolog.Nop())
	require.NoError(t, l.RemoverPorCotacao(db, 1))

	restantes, err := l.Repository.ListarPorCotacao(db, 1)
	require.NoError(t, err)
	assert.Empty(t, restantes)
}
