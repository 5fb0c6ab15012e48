package notificacao

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// Notificador dispara webhooks de alerta. Falhas são apenas logadas;
// nenhuma notificação bloqueia a operação que a originou.
type Notificador struct {
	URL string
	Log zerolog.Logger
}

func New(url string, log zerolog.Logger) *Notificador {
	return &Notificador{URL: url, Log: log}
}

// EnviarAlertaAprovacao avisa que uma transportadora teve o frete aprovado
// em uma cotação.
func (n *Notificador) EnviarAlertaAprovacao(cotacaoID uint, transportadora string) {
	if n == nil || n.URL == "" {
		return
	}

	payload := map[string]any{
		"mensagem":       "Frete aprovado",
		"cotacaoId":      cotacaoID,
		"transportadora": transportadora,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(n.URL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		n.Log.Warn().Err(err).Uint("cotacaoId", cotacaoID).Msg("erro ao enviar webhook")
		return
	}
	defer resp.Body.Close()
}
