package relatorios

import (
	"testing"

	"Backend-SGI/src/models"
	"Backend-SGI/src/services/frequencia"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func membroRoster(nome string) models.MembroRoster {
	return models.MembroRoster{
		MembroID: primitive.NewObjectID(),
		Nome:     nome,
		Situacao: models.SituacaoAtivo,
	}
}

func presenca(grupoID primitive.ObjectID, membroID primitive.ObjectID, data string, presente bool) models.Presenca {
	return models.Presenca{
		GrupoID:  grupoID,
		MembroID: membroID,
		Data:     data,
		Presente: presente,
	}
}

func TestMontarListaPresenca(t *testing.T) {
	grupoID := primitive.NewObjectID()
	ana := membroRoster("Ana")
	bruno := membroRoster("Bruno")
	carla := membroRoster("Carla")
	roster := []models.MembroRoster{ana, bruno, carla}

	t.Run("NaoMarcadoNaoVieAusente", func(t *testing.T) {
		registros := []models.Presenca{
			presenca(grupoID, ana.MembroID, "2024-01-07", true),
			presenca(grupoID, bruno.MembroID, "2024-01-07", false),
			// Carla sem registro na data
		}

		view := MontarListaPresenca(grupoID, "2024-01-07", roster, registros)

		assert.NotNil(t, view.Marcacoes[ana.MembroID.Hex()])
		assert.True(t, *view.Marcacoes[ana.MembroID.Hex()])
		assert.NotNil(t, view.Marcacoes[bruno.MembroID.Hex()])
		assert.False(t, *view.Marcacoes[bruno.MembroID.Hex()])
		assert.Nil(t, view.Marcacoes[carla.MembroID.Hex()])
	})

	t.Run("CardsDoDia", func(t *testing.T) {
		registros := []models.Presenca{
			presenca(grupoID, ana.MembroID, "2024-01-07", true),
			presenca(grupoID, bruno.MembroID, "2024-01-07", false),
		}

		view := MontarListaPresenca(grupoID, "2024-01-07", roster, registros)

		// nos cards o não marcado conta como ausente e a frequência é
		// sobre o roster inteiro: 1/3 -> 33
		assert.Equal(t, 3, view.Totais.Membros)
		assert.Equal(t, 1, view.Totais.Presentes)
		assert.Equal(t, 2, view.Totais.Ausentes)
		assert.Equal(t, 33, view.Totais.Frequencia)
	})

	t.Run("IgnoraOutrasDatas", func(t *testing.T) {
		registros := []models.Presenca{
			presenca(grupoID, ana.MembroID, "2024-01-14", true),
		}

		view := MontarListaPresenca(grupoID, "2024-01-07", roster, registros)

		assert.Nil(t, view.Marcacoes[ana.MembroID.Hex()])
		assert.Equal(t, 0, view.Totais.Presentes)
	})

	t.Run("RegistroForaDoRosterFicaForaDaFolha", func(t *testing.T) {
		exMembro := primitive.NewObjectID()
		registros := []models.Presenca{
			presenca(grupoID, exMembro, "2024-01-07", true),
		}

		view := MontarListaPresenca(grupoID, "2024-01-07", roster, registros)

		_, ok := view.Marcacoes[exMembro.Hex()]
		assert.False(t, ok)
		assert.Equal(t, 0, view.Totais.Presentes)
	})
}

func TestMontarRelatorioHistorico(t *testing.T) {
	grupoID := primitive.NewObjectID()

	t.Run("OrdenacaoPorFrequenciaENome", func(t *testing.T) {
		bia := membroRoster("bia")
		ana := membroRoster("Ana")
		caio := membroRoster("Caio")
		roster := []models.MembroRoster{bia, ana, caio}

		datas := []string{"2024-01-07", "2024-01-14", "2024-01-21", "2024-01-28"}
		var registros []models.Presenca
		// Ana e bia empatam em 75 (3 de 4); Caio 100
		for i, data := range datas {
			registros = append(registros, presenca(grupoID, ana.MembroID, data, i != 0))
			registros = append(registros, presenca(grupoID, bia.MembroID, data, i != 3))
			registros = append(registros, presenca(grupoID, caio.MembroID, data, true))
		}

		relatorio := MontarRelatorioHistorico(grupoID, "2024-01-01", "2024-01-31", roster, registros, datas)

		assert.Len(t, relatorio.PorMembro, 3)
		assert.Equal(t, "Caio", relatorio.PorMembro[0].Nome)
		// empate em 75: "Ana" antes de "bia" sem diferenciar maiúsculas
		assert.Equal(t, "Ana", relatorio.PorMembro[1].Nome)
		assert.Equal(t, "bia", relatorio.PorMembro[2].Nome)
		assert.Equal(t, 75, relatorio.PorMembro[1].Frequencia)
		assert.Equal(t, 75, relatorio.PorMembro[2].Frequencia)
	})

	t.Run("MembroSemRegistroApareceComoLacuna", func(t *testing.T) {
		ana := membroRoster("Ana")
		davi := membroRoster("Davi")
		roster := []models.MembroRoster{ana, davi}

		registros := []models.Presenca{
			presenca(grupoID, ana.MembroID, "2024-01-07", true),
		}

		relatorio := MontarRelatorioHistorico(grupoID, "2024-01-01", "2024-01-31", roster, registros, []string{"2024-01-07"})

		assert.Len(t, relatorio.PorMembro, 2)
		assert.Equal(t, "Davi", relatorio.PorMembro[1].Nome)
		assert.Equal(t, 0, relatorio.PorMembro[1].Marcados)
		assert.Equal(t, frequencia.ClassificacaoBaixa, relatorio.PorMembro[1].Classificacao)
		// a média do grupo ignora quem nunca foi marcado
		assert.Equal(t, 1, relatorio.Resumo.MembrosComRegistro)
		assert.Equal(t, 100, relatorio.Resumo.MediaFrequencia)
	})

	t.Run("PeriodoSemDados", func(t *testing.T) {
		ana := membroRoster("Ana")
		relatorio := MontarRelatorioHistorico(grupoID, "2024-02-01", "2024-02-29", []models.MembroRoster{ana}, nil, nil)

		assert.Len(t, relatorio.PorMembro, 1)
		assert.Equal(t, 0, relatorio.PorMembro[0].Frequencia)
		assert.Equal(t, 0, relatorio.Resumo.TotalEncontros)
		assert.NotNil(t, relatorio.Encontros)
		assert.Empty(t, relatorio.Encontros)
	})

	t.Run("RosterVazio", func(t *testing.T) {
		relatorio := MontarRelatorioHistorico(grupoID, "2024-01-01", "2024-01-31", nil, nil, []string{"2024-01-07"})

		assert.Empty(t, relatorio.PorMembro)
		assert.Equal(t, 1, relatorio.Resumo.TotalEncontros)
		assert.Equal(t, 0, relatorio.Resumo.MediaFrequencia)
	})
}
