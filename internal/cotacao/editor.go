package cotacao

import (
	"fmt"
	"strconv"
)

// Helpers puros para edição de um rascunho de cotação. Nenhuma função deste
// arquivo altera o valor recebido: campos escalares são trocados na cópia e
// apenas a coleção editada é realocada, de modo que o chamador pode descartar
// o rascunho e voltar ao último snapshot persistido.

// DefinirCampo troca um campo escalar do cabeçalho pelo nome JSON.
func DefinirCampo(c Cotacao, campo, valor string) (Cotacao, error) {
	switch campo {
	case "solicitante":
		c.Solicitante = valor
	case "fazenda":
		c.Fazenda = valor
	case "data":
		c.Data = valor
	case "rua":
		c.Rua = valor
	case "cidade":
		c.Cidade = valor
	case "estado":
		c.Estado = valor
	case "cep":
		c.CEP = valor
	case "origem":
		c.Origem = valor
	case "destino":
		c.Destino = valor
	case "roteiro":
		c.Roteiro = valor
	case "observacoes":
		c.Observacoes = valor
	case "safra":
		c.Safra = valor
	case "grupo":
		c.Grupo = valor
	default:
		return c, fmt.Errorf("campo desconhecido: %q", campo)
	}
	return c, nil
}

// DefinirCampoProduto troca um campo do produto na posição idx.
func DefinirCampoProduto(c Cotacao, idx int, campo, valor string) (Cotacao, error) {
	if idx < 0 || idx >= len(c.Produtos) {
		return c, fmt.Errorf("índice de produto fora do intervalo: %d", idx)
	}

	produtos := make([]Produto, len(c.Produtos))
	copy(produtos, c.Produtos)

	switch campo {
	case "nome":
		produtos[idx].Nome = valor
	case "quantidade":
		q, err := strconv.Atoi(valor)
		if err != nil || q < 1 {
			return c, fmt.Errorf("quantidade inválida: %q", valor)
		}
		produtos[idx].Quantidade = q
	case "peso":
		produtos[idx].Peso = valor
	case "embalagem":
		produtos[idx].Embalagem = valor
	default:
		return c, fmt.Errorf("campo de produto desconhecido: %q", campo)
	}

	c.Produtos = produtos
	return c, nil
}

// AdicionarProduto acrescenta um produto em branco com quantidade 1.
func AdicionarProduto(c Cotacao) Cotacao {
	produtos := make([]Produto, len(c.Produtos), len(c.Produtos)+1)
	copy(produtos, c.Produtos)
	c.Produtos = append(produtos, Produto{Quantidade: 1})
	return c
}

// RemoverProduto remove o produto na posição idx. Uma cotação precisa de ao
// menos um produto, então remover o último restante é um no-op.
func RemoverProduto(c Cotacao, idx int) (Cotacao, error) {
	if idx < 0 || idx >= len(c.Produtos) {
		return c, fmt.Errorf("índice de produto fora do intervalo: %d", idx)
	}
	if len(c.Produtos) == 1 {
		return c, nil
	}

	produtos := make([]Produto, 0, len(c.Produtos)-1)
	produtos = append(produtos, c.Produtos[:idx]...)
	produtos = append(produtos, c.Produtos[idx+1:]...)
	c.Produtos = produtos
	return c, nil
}

// DefinirCampoTransportadora troca um campo da resposta de transportadora na
// posição idx. Alterar o valor unitário recalcula o valor total a partir da
// quantidade somada dos produtos.
func DefinirCampoTransportadora(c Cotacao, idx int, campo, valor string) (Cotacao, error) {
	if idx < 0 || idx >= len(c.Transportadoras) {
		return c, fmt.Errorf("índice de transportadora fora do intervalo: %d", idx)
	}

	transportadoras := make([]TransportadoraCotacao, len(c.Transportadoras))
	copy(transportadoras, c.Transportadoras)

	switch campo {
	case "nome":
		transportadoras[idx].Nome = valor
	case "prazo":
		transportadoras[idx].Prazo = valor
	case "valorUnitario":
		transportadoras[idx].ValorUnitario = valor
		transportadoras[idx].ValorTotal = calcularValorTotal(valor, c.Produtos)
	case "valorTotal":
		transportadoras[idx].ValorTotal = valor
	case "status":
		transportadoras[idx].Status = valor
	case "propostaFinal":
		transportadoras[idx].PropostaFinal = valor
	default:
		return c, fmt.Errorf("campo de transportadora desconhecido: %q", campo)
	}

	c.Transportadoras = transportadoras
	return c, nil
}

// AdicionarTransportadora acrescenta uma resposta em branco com status Pendente.
func AdicionarTransportadora(c Cotacao) Cotacao {
	transportadoras := make([]TransportadoraCotacao, len(c.Transportadoras), len(c.Transportadoras)+1)
	copy(transportadoras, c.Transportadoras)
	c.Transportadoras = append(transportadoras, TransportadoraCotacao{Status: StatusPendente})
	return c
}

// RemoverTransportadora remove a resposta na posição idx, exceto a última
// restante (mesma regra dos produtos).
func RemoverTransportadora(c Cotacao, idx int) (Cotacao, error) {
	if idx < 0 || idx >= len(c.Transportadoras) {
		return c, fmt.Errorf("índice de transportadora fora do intervalo: %d", idx)
	}
	if len(c.Transportadoras) == 1 {
		return c, nil
	}

	transportadoras := make([]TransportadoraCotacao, 0, len(c.Transportadoras)-1)
	transportadoras = append(transportadoras, c.Transportadoras[:idx]...)
	transportadoras = append(transportadoras, c.Transportadoras[idx+1:]...)
	c.Transportadoras = transportadoras
	return c, nil
}

func calcularValorTotal(valorUnitario string, produtos []Produto) string {
	unitario := ParseValor(valorUnitario)
	quantidade := 0
	for _, p := range produtos {
		quantidade += p.Quantidade
	}
	if unitario == 0 || quantidade == 0 {
		return ""
	}
	return strconv.FormatFloat(unitario*float64(quantidade), 'f', -1, 64)
}
