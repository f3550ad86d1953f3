package presencas

import (
	"errors"
	"sort"
	"testing"

	"Backend-SGI/src/models"
	"Backend-SGI/src/utils"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func rosterDeTeste(n int) []models.MembroRoster {
	roster := make([]models.MembroRoster, 0, n)
	for i := 0; i < n; i++ {
		roster = append(roster, models.MembroRoster{
			MembroID: primitive.NewObjectID(),
			Nome:     "Membro",
			Situacao: models.SituacaoAtivo,
		})
	}
	return roster
}

func TestPrepararRegistros(t *testing.T) {
	grupoID := primitive.NewObjectID()

	t.Run("ListaValida", func(t *testing.T) {
		roster := rosterDeTeste(3)
		entradas := map[string]bool{
			roster[0].MembroID.Hex(): true,
			roster[1].MembroID.Hex(): false,
		}

		registros, err := prepararRegistros(grupoID, "2024-01-07", roster, entradas)

		assert.NoError(t, err)
		assert.Len(t, registros, 2)
		for _, r := range registros {
			assert.Equal(t, grupoID, r.GrupoID)
			assert.Equal(t, "2024-01-07", r.Data)
			assert.Equal(t, entradas[r.MembroID.Hex()], r.Presente)
		}
	})

	t.Run("ListaVazia", func(t *testing.T) {
		_, err := prepararRegistros(grupoID, "2024-01-07", rosterDeTeste(2), map[string]bool{})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, utils.ErrEntradaInvalida))
	})

	t.Run("MembroForaDoRosterInvalidaTudo", func(t *testing.T) {
		roster := rosterDeTeste(2)
		entradas := map[string]bool{
			roster[0].MembroID.Hex():      true,
			primitive.NewObjectID().Hex(): true, // não pertence ao grupo
		}

		registros, err := prepararRegistros(grupoID, "2024-01-07", roster, entradas)

		assert.Error(t, err)
		assert.True(t, errors.Is(err, utils.ErrEntradaInvalida))
		assert.Nil(t, registros) // tudo ou nada
	})

	t.Run("IDDeMembroInvalido", func(t *testing.T) {
		_, err := prepararRegistros(grupoID, "2024-01-07", rosterDeTeste(1), map[string]bool{"nao-e-hex": true})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, utils.ErrEntradaInvalida))
	})

	t.Run("SaidaOrdenadaPorMembro", func(t *testing.T) {
		roster := rosterDeTeste(5)
		entradas := make(map[string]bool, len(roster))
		for _, m := range roster {
			entradas[m.MembroID.Hex()] = true
		}

		registros, err := prepararRegistros(grupoID, "2024-01-07", roster, entradas)

		assert.NoError(t, err)
		assert.Len(t, registros, 5)
		assert.True(t, sort.SliceIsSorted(registros, func(i, j int) bool {
			return registros[i].MembroID.Hex() < registros[j].MembroID.Hex()
		}))
	})
}

func TestModelosDeUpsert(t *testing.T) {
	grupoID := primitive.NewObjectID()
	roster := rosterDeTeste(3)
	entradas := map[string]bool{
		roster[0].MembroID.Hex(): true,
		roster[1].MembroID.Hex(): false,
		roster[2].MembroID.Hex(): true,
	}

	t.Run("ChaveadoPelaTripla", func(t *testing.T) {
		registros, err := prepararRegistros(grupoID, "2024-01-07", roster, entradas)
		assert.NoError(t, err)

		modelos := modelosDeUpsert(registros)
		assert.Len(t, modelos, 3)
		for i, m := range modelos {
			upsert, ok := m.(*mongo.UpdateOneModel)
			assert.True(t, ok)
			assert.NotNil(t, upsert.Upsert)
			assert.True(t, *upsert.Upsert)

			filtro := upsert.Filter.(bson.M)
			assert.Equal(t, grupoID, filtro["grupoId"])
			assert.Equal(t, registros[i].MembroID, filtro["membroId"])
			assert.Equal(t, "2024-01-07", filtro["data"])

			atualizacao := upsert.Update.(bson.M)
			assert.Equal(t, bson.M{"presente": registros[i].Presente}, atualizacao["$set"])
		}
	})

	t.Run("GravarDeNovoProduzOsMesmosUpserts", func(t *testing.T) {
		primeira, err := prepararRegistros(grupoID, "2024-01-07", roster, entradas)
		assert.NoError(t, err)
		segunda, err := prepararRegistros(grupoID, "2024-01-07", roster, entradas)
		assert.NoError(t, err)

		// mesma lista salva duas vezes: mesmos filtros, mesmas atualizações
		assert.Equal(t, modelosDeUpsert(primeira), modelosDeUpsert(segunda))
	})
}

func TestFiltroDeDatas(t *testing.T) {
	t.Run("IntervaloCompleto", func(t *testing.T) {
		filtro := filtroDeDatas("2024-01-01", "2024-01-31")

		assert.Equal(t, "2024-01-01", filtro["$gte"])
		assert.Equal(t, "2024-01-31", filtro["$lte"])
	})

	t.Run("SoInicio", func(t *testing.T) {
		filtro := filtroDeDatas("2024-01-01", "")

		assert.Equal(t, "2024-01-01", filtro["$gte"])
		_, temFim := filtro["$lte"]
		assert.False(t, temFim)
	})

	t.Run("SemDatas", func(t *testing.T) {
		assert.Empty(t, filtroDeDatas("", ""))
	})
}

func TestTravaDoEncontro(t *testing.T) {
	t.Run("MesmoEncontroMesmaTrava", func(t *testing.T) {
		a := travaDoEncontro("grupo1", "2024-01-07")
		b := travaDoEncontro("grupo1", "2024-01-07")
		assert.Same(t, a, b)
	})

	t.Run("EncontrosDiferentesTravasDiferentes", func(t *testing.T) {
		a := travaDoEncontro("grupo1", "2024-01-07")
		b := travaDoEncontro("grupo1", "2024-01-14")
		c := travaDoEncontro("grupo2", "2024-01-07")
		assert.NotSame(t, a, b)
		assert.NotSame(t, a, c)
	})
}
