package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FrequenciaMembro resumo derivado por membro, recalculado a cada relatório.
// Marcados é o denominador (só marcações explícitas contam), Presentes o
// numerador. Membro sem nenhuma marcação no período fica com frequência 0 e
// classificação "low" de propósito, para aparecer como lacuna no relatório.
type FrequenciaMembro struct {
	MembroID      primitive.ObjectID `json:"membroId"`
	Nome          string             `json:"nome" example:"Ana Silva"`
	Presentes     int                `json:"presentes" example:"3"`
	Marcados      int                `json:"marcados" example:"4"`
	Frequencia    int                `json:"frequencia" example:"75"`
	Classificacao string             `json:"classificacao" example:"medium"`
}

// ResumoGrupo estatísticas agregadas do grupo no período, derivadas sob demanda
type ResumoGrupo struct {
	GrupoID            primitive.ObjectID `json:"grupoId"`
	De                 string             `json:"de" example:"2024-01-01"`
	Ate                string             `json:"ate" example:"2024-01-31"`
	TotalEncontros     int                `json:"totalEncontros"`
	MembrosComRegistro int                `json:"membrosComRegistro"`
	MediaFrequencia    int                `json:"mediaFrequencia"`  // média entre membros com marcação
	MediaPorEncontro   int                `json:"mediaPorEncontro"` // média das taxas de cada encontro
}

// TotaisDia cards do topo da lista de presença do dia
type TotaisDia struct {
	Membros    int `json:"membros"`
	Presentes  int `json:"presentes"`
	Ausentes   int `json:"ausentes"`
	Frequencia int `json:"frequencia"`
}

// ListaPresencaView folha de marcação de um grupo em uma data.
// Marcacoes usa ponteiro para distinguir "não marcado" (null no JSON)
// de presente=false.
type ListaPresencaView struct {
	GrupoID   primitive.ObjectID `json:"grupoId"`
	Data      string             `json:"data" example:"2024-01-07"`
	Roster    []MembroRoster     `json:"roster"`
	Marcacoes map[string]*bool   `json:"marcacoes"`
	Totais    TotaisDia          `json:"totais"`
}

// RelatorioHistorico frequência por membro em um intervalo de datas.
// PorMembro vem ordenado por frequência decrescente e, em empate, por nome
// (sem diferenciar maiúsculas), para saída determinística.
type RelatorioHistorico struct {
	GrupoID   primitive.ObjectID `json:"grupoId"`
	De        string             `json:"de" example:"2024-01-01"`
	Ate       string             `json:"ate" example:"2024-01-31"`
	PorMembro []FrequenciaMembro `json:"porMembro"`
	Resumo    ResumoGrupo        `json:"resumo"`
	Encontros []string           `json:"encontros"`
}

// ResumoEncontro snapshot persistido por (grupo, data), atualizado a cada
// gravação de lista e recalculável sob demanda
type ResumoEncontro struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	GrupoID    primitive.ObjectID `json:"grupoId" bson:"grupoId"`
	Data       string             `json:"data" bson:"data" example:"2024-01-07"`
	Marcados   int                `json:"marcados" bson:"marcados"`
	Presentes  int                `json:"presentes" bson:"presentes"`
	Ausentes   int                `json:"ausentes" bson:"ausentes"`
	Frequencia int                `json:"frequencia" bson:"frequencia"`
}

// Status de uma exportação de relatório
const (
	ExportacaoPendente = "pendente"
	ExportacaoPronta   = "pronta"
	ExportacaoErro     = "erro"
)

// Exportacao payload serializável aguardando o adaptador de exportação
// (PDF/planilha é responsabilidade do colaborador externo)
type Exportacao struct {
	ID        string              `json:"id" bson:"_id"`
	GrupoID   primitive.ObjectID  `json:"grupoId" bson:"grupoId"`
	De        string              `json:"de" bson:"de"`
	Ate       string              `json:"ate" bson:"ate"`
	Formato   string              `json:"formato" bson:"formato" example:"pdf"`
	Status    string              `json:"status" bson:"status" example:"pendente"`
	Relatorio *RelatorioHistorico `json:"relatorio,omitempty" bson:"relatorio,omitempty"`
	CriadoEm  time.Time           `json:"criadoEm" bson:"criadoEm"`
	ProntoEm  *time.Time          `json:"prontoEm,omitempty" bson:"prontoEm,omitempty"`
	Mensagem  string              `json:"mensagem,omitempty" bson:"mensagem,omitempty"`
}
