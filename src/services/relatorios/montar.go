package relatorios

import (
	"sort"
	"strings"

	"Backend-SGI/src/models"
	"Backend-SGI/src/services/frequencia"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MontarListaPresenca monta a folha de marcação do dia a partir do roster e
// dos registros já gravados. Membro sem registro na data aparece como não
// marcado (nil), nunca como ausente.
func MontarListaPresenca(grupoID primitive.ObjectID, data string, roster []models.MembroRoster, registros []models.Presenca) models.ListaPresencaView {
	marcacoes := make(map[string]*bool, len(roster))
	for _, m := range roster {
		marcacoes[m.MembroID.Hex()] = nil
	}

	presentes := 0
	for _, r := range registros {
		if r.Data != data {
			continue
		}
		chave := r.MembroID.Hex()
		if _, ok := marcacoes[chave]; !ok {
			continue // registro de quem saiu do roster; fica fora da folha
		}
		presente := r.Presente
		marcacoes[chave] = &presente
		if presente {
			presentes++
		}
	}

	// nos cards do dia quem não foi marcado conta como ausente,
	// diferente do relatório histórico
	return models.ListaPresencaView{
		GrupoID:   grupoID,
		Data:      data,
		Roster:    roster,
		Marcacoes: marcacoes,
		Totais: models.TotaisDia{
			Membros:    len(roster),
			Presentes:  presentes,
			Ausentes:   len(roster) - presentes,
			Frequencia: frequencia.ArredondarPercentual(presentes, len(roster)),
		},
	}
}

// MontarRelatorioHistorico monta o relatório de frequência do período.
// Todo membro do roster aparece, inclusive quem nunca foi marcado (frequência
// 0, classificação "low"). Ordenação: frequência decrescente e, em empate,
// nome ascendente sem diferenciar maiúsculas.
func MontarRelatorioHistorico(grupoID primitive.ObjectID, de, ate string, roster []models.MembroRoster, registros []models.Presenca, encontros []string) models.RelatorioHistorico {
	porMembro := make([]models.FrequenciaMembro, 0, len(roster))
	for _, m := range roster {
		porMembro = append(porMembro, frequencia.CalcularFrequenciaMembro(m.MembroID, m.Nome, registros))
	}

	sort.SliceStable(porMembro, func(i, j int) bool {
		if porMembro[i].Frequencia != porMembro[j].Frequencia {
			return porMembro[i].Frequencia > porMembro[j].Frequencia
		}
		return strings.ToLower(porMembro[i].Nome) < strings.ToLower(porMembro[j].Nome)
	})

	if encontros == nil {
		encontros = []string{}
	}

	return models.RelatorioHistorico{
		GrupoID:   grupoID,
		De:        de,
		Ate:       ate,
		PorMembro: porMembro,
		Resumo:    frequencia.CalcularResumoGrupo(grupoID, de, ate, porMembro, registros, encontros),
		Encontros: encontros,
	}
}
