package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Presenca o fato atômico de presença: no máximo um registro por
// (grupoId, membroId, data). Uma segunda gravação para a mesma tripla
// substitui o valor anterior (upsert idempotente, nunca append).
// A ausência de registro significa "ainda não marcado", que é diferente
// de presente=false (marcado como ausente).
type Presenca struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	GrupoID  primitive.ObjectID `json:"grupoId" bson:"grupoId"`
	MembroID primitive.ObjectID `json:"membroId" bson:"membroId"`
	Data     string             `json:"data" bson:"data" example:"2024-01-07"`
	Presente bool               `json:"presente" bson:"presente"`
}

// Encontro uma data em que o grupo se reuniu, única por (grupoId, data).
// Criado quando a primeira lista de presença é salva para aquela data;
// salvar de novo na mesma data sobrescreve marcações, não duplica o encontro.
type Encontro struct {
	ID      primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	GrupoID primitive.ObjectID `json:"grupoId" bson:"grupoId"`
	Data    string             `json:"data" bson:"data" example:"2024-01-07"`
}
