package frequencia

import (
	"testing"

	"Backend-SGI/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func registro(membroID primitive.ObjectID, data string, presente bool) models.Presenca {
	return models.Presenca{
		GrupoID:  primitive.NewObjectID(),
		MembroID: membroID,
		Data:     data,
		Presente: presente,
	}
}

func TestArredondarPercentual(t *testing.T) {
	t.Run("HalfUp", func(t *testing.T) {
		// 2/3 = 66.67 -> 67, 1/8 = 12.5 -> 13
		assert.Equal(t, 67, ArredondarPercentual(2, 3))
		assert.Equal(t, 13, ArredondarPercentual(1, 8))
		assert.Equal(t, 33, ArredondarPercentual(1, 3))
	})

	t.Run("Exatos", func(t *testing.T) {
		assert.Equal(t, 100, ArredondarPercentual(4, 4))
		assert.Equal(t, 50, ArredondarPercentual(2, 4))
		assert.Equal(t, 0, ArredondarPercentual(0, 5))
	})

	t.Run("DenominadorZero", func(t *testing.T) {
		assert.Equal(t, 0, ArredondarPercentual(0, 0))
	})
}

func TestClassificar(t *testing.T) {
	t.Run("Faixas", func(t *testing.T) {
		assert.Equal(t, ClassificacaoAlta, Classificar(100))
		assert.Equal(t, ClassificacaoAlta, Classificar(80))
		assert.Equal(t, ClassificacaoMedia, Classificar(79))
		assert.Equal(t, ClassificacaoMedia, Classificar(60))
		assert.Equal(t, ClassificacaoBaixa, Classificar(59))
		assert.Equal(t, ClassificacaoBaixa, Classificar(0))
	})

	t.Run("Rotulos", func(t *testing.T) {
		assert.Equal(t, "high", ClassificacaoAlta)
		assert.Equal(t, "medium", ClassificacaoMedia)
		assert.Equal(t, "low", ClassificacaoBaixa)
	})
}

func TestCalcularFrequenciaMembro(t *testing.T) {
	t.Run("DoisDeTres", func(t *testing.T) {
		membroID := primitive.NewObjectID()
		registros := []models.Presenca{
			registro(membroID, "2024-01-07", true),
			registro(membroID, "2024-01-14", false),
			registro(membroID, "2024-01-21", true),
		}

		f := CalcularFrequenciaMembro(membroID, "Ana Silva", registros)

		assert.Equal(t, 2, f.Presentes)
		assert.Equal(t, 3, f.Marcados)
		assert.Equal(t, 67, f.Frequencia)
		assert.Equal(t, ClassificacaoMedia, f.Classificacao)
		assert.Equal(t, "Ana Silva", f.Nome)
	})

	t.Run("IgnoraRegistrosDeOutroMembro", func(t *testing.T) {
		membroID := primitive.NewObjectID()
		outro := primitive.NewObjectID()
		registros := []models.Presenca{
			registro(membroID, "2024-01-07", true),
			registro(outro, "2024-01-07", false),
			registro(outro, "2024-01-14", false),
		}

		f := CalcularFrequenciaMembro(membroID, "Bruno", registros)

		assert.Equal(t, 1, f.Presentes)
		assert.Equal(t, 1, f.Marcados)
		assert.Equal(t, 100, f.Frequencia)
		assert.Equal(t, ClassificacaoAlta, f.Classificacao)
	})

	t.Run("SemRegistros", func(t *testing.T) {
		f := CalcularFrequenciaMembro(primitive.NewObjectID(), "Carla", nil)

		assert.Equal(t, 0, f.Presentes)
		assert.Equal(t, 0, f.Marcados)
		assert.Equal(t, 0, f.Frequencia)
		assert.Equal(t, ClassificacaoBaixa, f.Classificacao)
	})

	t.Run("Deterministico", func(t *testing.T) {
		membroID := primitive.NewObjectID()
		registros := []models.Presenca{
			registro(membroID, "2024-01-07", true),
			registro(membroID, "2024-01-14", false),
		}

		a := CalcularFrequenciaMembro(membroID, "Davi", registros)
		b := CalcularFrequenciaMembro(membroID, "Davi", registros)
		assert.Equal(t, a, b)
	})
}

func TestCalcularResumoGrupo(t *testing.T) {
	t.Run("TodosPresentesEmQuatroEncontros", func(t *testing.T) {
		grupoID := primitive.NewObjectID()
		datas := []string{"2024-01-07", "2024-01-14", "2024-01-21", "2024-01-28"}

		var frequencias []models.FrequenciaMembro
		var registros []models.Presenca
		for i := 0; i < 5; i++ {
			membroID := primitive.NewObjectID()
			for _, data := range datas {
				registros = append(registros, registro(membroID, data, true))
			}
			frequencias = append(frequencias, CalcularFrequenciaMembro(membroID, "Membro", registros))
		}

		resumo := CalcularResumoGrupo(grupoID, "2024-01-01", "2024-01-31", frequencias, registros, datas)

		assert.Equal(t, 4, resumo.TotalEncontros)
		assert.Equal(t, 5, resumo.MembrosComRegistro)
		assert.Equal(t, 100, resumo.MediaFrequencia)
		assert.Equal(t, 100, resumo.MediaPorEncontro)
	})

	t.Run("MembroSemMarcacaoForaDaMedia", func(t *testing.T) {
		grupoID := primitive.NewObjectID()
		marcado := primitive.NewObjectID()
		nuncaMarcado := primitive.NewObjectID()

		registros := []models.Presenca{
			registro(marcado, "2024-01-07", true),
			registro(marcado, "2024-01-14", true),
		}
		frequencias := []models.FrequenciaMembro{
			CalcularFrequenciaMembro(marcado, "Eva", registros),
			CalcularFrequenciaMembro(nuncaMarcado, "Fabio", registros),
		}

		resumo := CalcularResumoGrupo(grupoID, "2024-01-01", "2024-01-31", frequencias, registros, []string{"2024-01-07", "2024-01-14"})

		// Fabio continua "low" individualmente, mas não derruba a média
		assert.Equal(t, 1, resumo.MembrosComRegistro)
		assert.Equal(t, 100, resumo.MediaFrequencia)
		assert.Equal(t, ClassificacaoBaixa, frequencias[1].Classificacao)
	})

	t.Run("PeriodoVazio", func(t *testing.T) {
		resumo := CalcularResumoGrupo(primitive.NewObjectID(), "2024-02-01", "2024-02-29", nil, nil, nil)

		assert.Equal(t, 0, resumo.TotalEncontros)
		assert.Equal(t, 0, resumo.MembrosComRegistro)
		assert.Equal(t, 0, resumo.MediaFrequencia)
		assert.Equal(t, 0, resumo.MediaPorEncontro)
	})

	t.Run("MediaPorEncontro", func(t *testing.T) {
		grupoID := primitive.NewObjectID()
		m1 := primitive.NewObjectID()
		m2 := primitive.NewObjectID()

		// 2024-01-07: 2/2 presentes (100); 2024-01-14: 1/2 (50)
		registros := []models.Presenca{
			registro(m1, "2024-01-07", true),
			registro(m2, "2024-01-07", true),
			registro(m1, "2024-01-14", true),
			registro(m2, "2024-01-14", false),
		}
		frequencias := []models.FrequenciaMembro{
			CalcularFrequenciaMembro(m1, "Gabi", registros),
			CalcularFrequenciaMembro(m2, "Hugo", registros),
		}

		resumo := CalcularResumoGrupo(grupoID, "2024-01-01", "2024-01-31", frequencias, registros, []string{"2024-01-07", "2024-01-14"})

		assert.Equal(t, 75, resumo.MediaPorEncontro)
		// médias individuais: 100 e 50 -> 75
		assert.Equal(t, 75, resumo.MediaFrequencia)
	})
}

func TestMarcarTodos(t *testing.T) {
	roster := []models.MembroRoster{
		{MembroID: primitive.NewObjectID(), Nome: "Ana"},
		{MembroID: primitive.NewObjectID(), Nome: "Bia"},
		{MembroID: primitive.NewObjectID(), Nome: "Caio"},
	}

	t.Run("TodosPresentes", func(t *testing.T) {
		marcacoes := MarcarTodos(roster, true)

		assert.Len(t, marcacoes, 3)
		for _, m := range roster {
			assert.True(t, marcacoes[m.MembroID.Hex()])
		}
	})

	t.Run("TodosAusentes", func(t *testing.T) {
		marcacoes := MarcarTodos(roster, false)

		assert.Len(t, marcacoes, 3)
		for _, m := range roster {
			presente, ok := marcacoes[m.MembroID.Hex()]
			assert.True(t, ok)
			assert.False(t, presente)
		}
	})

	t.Run("RosterVazio", func(t *testing.T) {
		assert.Empty(t, MarcarTodos(nil, true))
	})
}
