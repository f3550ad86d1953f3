// Package frequencia concentra todo o cálculo de frequência dos relatórios.
// Só funções puras: nada de I/O, mesmo input produz sempre o mesmo output.
package frequencia

import (
	"math"

	"Backend-SGI/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Classificações de frequência. Os valores são os mesmos consumidos pelos
// badges do painel (>=80 verde, >=60 amarelo, abaixo vermelho).
const (
	ClassificacaoAlta  = "high"
	ClassificacaoMedia = "medium"
	ClassificacaoBaixa = "low"
)

// ArredondarPercentual calcula round(100*numerador/denominador) com
// arredondamento half-up. Denominador zero devolve 0.
func ArredondarPercentual(numerador, denominador int) int {
	if denominador == 0 {
		return 0
	}
	return int(math.Floor(100*float64(numerador)/float64(denominador) + 0.5))
}

// Classificar converte a frequência (%) na faixa de classificação
func Classificar(frequencia int) string {
	switch {
	case frequencia >= 80:
		return ClassificacaoAlta
	case frequencia >= 60:
		return ClassificacaoMedia
	default:
		return ClassificacaoBaixa
	}
}

// CalcularFrequenciaMembro calcula o resumo de um membro a partir dos seus
// registros explícitos. Cada registro conta no denominador, presente ou
// ausente; o que nunca foi marcado simplesmente não aparece na sequência.
// Sem nenhum registro o membro fica com frequência 0 e classificação "low".
func CalcularFrequenciaMembro(membroID primitive.ObjectID, nome string, registros []models.Presenca) models.FrequenciaMembro {
	presentes := 0
	marcados := 0
	for _, r := range registros {
		if r.MembroID != membroID {
			continue
		}
		marcados++
		if r.Presente {
			presentes++
		}
	}

	freq := ArredondarPercentual(presentes, marcados)
	return models.FrequenciaMembro{
		MembroID:      membroID,
		Nome:          nome,
		Presentes:     presentes,
		Marcados:      marcados,
		Frequencia:    freq,
		Classificacao: Classificar(freq),
	}
}

// CalcularResumoGrupo agrega as frequências individuais em um resumo do grupo.
// MediaFrequencia considera apenas membros com alguma marcação no período;
// membro nunca marcado não derruba a média (regra assimétrica em relação à
// classificação individual, que o mantém como "low").
// MediaPorEncontro é a média das taxas de cada data com marcação.
func CalcularResumoGrupo(grupoID primitive.ObjectID, de, ate string, frequencias []models.FrequenciaMembro, registros []models.Presenca, encontros []string) models.ResumoGrupo {
	resumo := models.ResumoGrupo{
		GrupoID:        grupoID,
		De:             de,
		Ate:            ate,
		TotalEncontros: len(encontros),
	}

	somaFreq := 0
	for _, f := range frequencias {
		if f.Marcados == 0 {
			continue
		}
		resumo.MembrosComRegistro++
		somaFreq += f.Frequencia
	}
	if resumo.MembrosComRegistro > 0 {
		resumo.MediaFrequencia = int(math.Floor(float64(somaFreq)/float64(resumo.MembrosComRegistro) + 0.5))
	}

	// taxa de cada encontro: presentes/marcados daquela data
	presentesPorData := make(map[string]int)
	marcadosPorData := make(map[string]int)
	for _, r := range registros {
		marcadosPorData[r.Data]++
		if r.Presente {
			presentesPorData[r.Data]++
		}
	}
	somaTaxas := 0
	datasComMarcacao := 0
	for data, marcados := range marcadosPorData {
		somaTaxas += ArredondarPercentual(presentesPorData[data], marcados)
		datasComMarcacao++
	}
	if datasComMarcacao > 0 {
		resumo.MediaPorEncontro = int(math.Floor(float64(somaTaxas)/float64(datasComMarcacao) + 0.5))
	}

	return resumo
}

// MarcarTodos pré-preenche uma folha de marcação com o mesmo valor para todo
// o roster ("marcar todos presentes" / "marcar todos ausentes"). O chamador
// decide se persiste o resultado.
func MarcarTodos(roster []models.MembroRoster, presente bool) map[string]bool {
	marcacoes := make(map[string]bool, len(roster))
	for _, m := range roster {
		marcacoes[m.MembroID.Hex()] = presente
	}
	return marcacoes
}
