package cotacao

import (
	"strconv"
	"strings"
	"time"
)

// ParseValor converte um valor monetário digitado livremente para float64.
// Aceita ponto ou vírgula como separador decimal; falha de parse vira 0,
// que é o comportamento esperado pelas agregações.
func ParseValor(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
		return v
	}
	return 0
}

// Formatos de data aceitos. O formato canônico de exibição é dd/mm/aaaa;
// entradas ISO são toleradas e normalizadas na gravação.
const (
	FormatoDataBR  = "02/01/2006"
	FormatoDataISO = "2006-01-02"
)

// ParseData interpreta a data armazenada de uma cotação.
// Retorna ok=false para datas em branco ou fora dos formatos aceitos.
func ParseData(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(FormatoDataBR, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(FormatoDataISO, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// NormalizarData converte qualquer formato aceito para dd/mm/aaaa.
// Entradas não reconhecidas são mantidas como vieram.
func NormalizarData(s string) string {
	if t, ok := ParseData(s); ok {
		return t.Format(FormatoDataBR)
	}
	return s
}
