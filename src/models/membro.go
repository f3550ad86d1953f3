package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Situações possíveis de um membro
const (
	SituacaoAtivo     = "Ativo"
	SituacaoInativo   = "Inativo"
	SituacaoVisitante = "Visitante"
)

// Membro membro da igreja vinculado a um grupo de crescimento
type Membro struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nome     string             `json:"nome" bson:"nome" validate:"required" example:"Ana Silva"`
	Situacao string             `json:"situacao" bson:"situacao" validate:"required,oneof=Ativo Inativo Visitante" example:"Ativo"`
	GrupoID  primitive.ObjectID `json:"grupoId,omitempty" bson:"grupoId,omitempty"`
	Telefone string             `json:"telefone,omitempty" bson:"telefone,omitempty" example:"(11) 99999-0000"`
	Email    string             `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email" example:"ana@example.com"`
}

// MembroRoster entrada do roster devolvida pelo provedor de membros.
// Somente o que a lista de presença precisa: id, nome e situação.
type MembroRoster struct {
	MembroID primitive.ObjectID `json:"membroId" bson:"_id"`
	Nome     string             `json:"nome" bson:"nome" example:"Ana Silva"`
	Situacao string             `json:"situacao" bson:"situacao" example:"Ativo"`
}
