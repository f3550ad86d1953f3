package relatorios

import (
	"errors"
	"testing"
	"time"

	"Backend-SGI/src/utils"

	"github.com/stretchr/testify/assert"
)

func TestNormalizarPeriodo(t *testing.T) {
	t.Run("SemDatasUsaMesCorrente", func(t *testing.T) {
		de, ate, err := normalizarPeriodo("", "")

		assert.NoError(t, err)
		agora := time.Now()
		inicio := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, agora.Location())
		assert.Equal(t, inicio.Format("2006-01-02"), de)
		assert.Equal(t, inicio.AddDate(0, 1, -1).Format("2006-01-02"), ate)
	})

	t.Run("IntervaloValido", func(t *testing.T) {
		de, ate, err := normalizarPeriodo("2024-01-01", "2024-01-31")

		assert.NoError(t, err)
		assert.Equal(t, "2024-01-01", de)
		assert.Equal(t, "2024-01-31", ate)
	})

	t.Run("SoUmaPonta", func(t *testing.T) {
		de, ate, err := normalizarPeriodo("2024-01-01", "")

		assert.NoError(t, err)
		assert.Equal(t, "2024-01-01", de)
		assert.Equal(t, "", ate)
	})

	t.Run("DataInvalida", func(t *testing.T) {
		_, _, err := normalizarPeriodo("07/01/2024", "")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, utils.ErrEntradaInvalida))
	})

	t.Run("InicioDepoisDoFim", func(t *testing.T) {
		_, _, err := normalizarPeriodo("2024-02-01", "2024-01-01")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, utils.ErrEntradaInvalida))
	})
}
