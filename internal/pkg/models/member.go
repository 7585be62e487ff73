package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MemberStatus string

const (
	MemberActive    MemberStatus = "active"
	MemberInactive  MemberStatus = "inactive"
	MemberDormant   MemberStatus = "dormant"
	MemberSuspended MemberStatus = "suspended"
)

type Member struct {
	MemberId       primitive.ObjectID  `bson:"_id,omitempty" json:"memberId"`
	NationalIdNo   string              `bson:"nationalIdNo" json:"nationalIdNo"`
	FullName       string              `bson:"fullName" json:"fullName"`
	Phone          string              `bson:"phone" json:"phone"`
	BranchId       primitive.ObjectID  `bson:"branchId" json:"branchId"`
	GroupId        *primitive.ObjectID `bson:"groupId,omitempty" json:"groupId,omitempty"`
	Status         MemberStatus        `bson:"status" json:"status"`
	IncrementLevel int                 `bson:"incrementLevel" json:"incrementLevel"`
	CreatedAt      time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt" json:"updatedAt"`
}
