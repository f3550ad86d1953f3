package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-SGI/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// TTL do cache de relatórios históricos
const RelatorioCacheTTL = 5 * time.Minute

// ensureClient devolve o client Redis compartilhado do pacote database.
// Sem Redis (dev mode) devolve nil e os chamadores seguem sem cache.
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// RelatorioCacheVersion versão de cache do grupo; entra na chave do relatório
// para que um bump invalide todos os períodos de uma vez.
func RelatorioCacheVersion(grupoID string) int64 {
	client := ensureClient()
	if client == nil {
		return 0
	}
	ver, err := client.Get(Ctx, fmt.Sprintf("relatorio:ver:%s", grupoID)).Int64()
	if err != nil {
		return 0
	}
	return ver
}

// BumpRelatorioCache invalida o cache de relatórios do grupo.
// Chamado a cada gravação de lista de presença.
func BumpRelatorioCache(grupoID string) {
	client := ensureClient()
	if client == nil {
		return
	}
	_ = client.Incr(Ctx, fmt.Sprintf("relatorio:ver:%s", grupoID)).Err()
}

// GetCachedRelatorio busca o JSON de um relatório no cache
func GetCachedRelatorio(chave string) ([]byte, bool) {
	client := ensureClient()
	if client == nil {
		return nil, false
	}
	payload, err := client.Get(Ctx, chave).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// StoreCachedRelatorio grava o JSON de um relatório no cache com TTL
func StoreCachedRelatorio(chave string, payload []byte) {
	client := ensureClient()
	if client == nil {
		return
	}
	_ = client.Set(Ctx, chave, payload, RelatorioCacheTTL).Err()
}
