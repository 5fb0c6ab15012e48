package cte

import (
	"os"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Limpador remove todos os CTEs de uma cotação, linhas e arquivos em disco.
// Usado na exclusão de cotações.
type Limpador struct {
	Repository Repository
	Log        zerolog.Logger
}

func NewLimpador(log zerolog.Logger) *Limpador {
	return &Limpador{
		Repository: NewRepository(),
		Log:        log,
	}
}

// RemoverPorCotacao apaga as linhas de CTE da cotação e os PDFs
// correspondentes. Falha ao remover um arquivo é apenas logada: a linha já
// saiu do banco e o download não alcança mais o arquivo.
func (l *Limpador) RemoverPorCotacao(db *gorm.DB, cotacaoID uint) error {
	list, err := l.Repository.ListarPorCotacao(db, cotacaoID)
	if err != nil {
		return err
	}

	for _, c := range list {
		if err := l.Repository.Deletar(db, c.ID); err != nil {
			return err
		}
		if err := os.Remove(c.Caminho); err != nil && !os.IsNotExist(err) {
			l.Log.Warn().Err(err).Str("caminho", c.Caminho).Msg("erro ao remover arquivo de CTE")
		}
	}
	return nil
}
