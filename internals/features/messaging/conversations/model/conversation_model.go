package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Percakapan dua partisipan (role,id). Pasangan disimpan ternormalisasi
// (A <= B) supaya find-or-create idempoten & simetris — unique index di
// keempat kolom partisipan.
type ConversationModel struct {
	ConversationID uuid.UUID `gorm:"column:conversations_id;type:uuid;default:gen_random_uuid();primaryKey" json:"conversations_id"`

	ConversationParticipantARole string    `gorm:"column:conversations_participant_a_role;type:varchar(20);not null;uniqueIndex:uq_conversations_pair,priority:1" json:"conversations_participant_a_role"`
	ConversationParticipantAID   uuid.UUID `gorm:"column:conversations_participant_a_id;type:uuid;not null;uniqueIndex:uq_conversations_pair,priority:2" json:"conversations_participant_a_id"`
	ConversationParticipantBRole string    `gorm:"column:conversations_participant_b_role;type:varchar(20);not null;uniqueIndex:uq_conversations_pair,priority:3" json:"conversations_participant_b_role"`
	ConversationParticipantBID   uuid.UUID `gorm:"column:conversations_participant_b_id;type:uuid;not null;uniqueIndex:uq_conversations_pair,priority:4" json:"conversations_participant_b_id"`

	ConversationCreatedAt time.Time      `gorm:"column:conversations_created_at;autoCreateTime" json:"conversations_created_at"`
	ConversationDeletedAt gorm.DeletedAt `gorm:"column:conversations_deleted_at;index" json:"conversations_deleted_at,omitempty"`
}

func (ConversationModel) TableName() string { return "conversations" }

type MessageModel struct {
	MessageID uuid.UUID `gorm:"column:messages_id;type:uuid;default:gen_random_uuid();primaryKey" json:"messages_id"`

	MessageConversationID uuid.UUID `gorm:"column:messages_conversation_id;type:uuid;not null;index:idx_messages_conversation" json:"messages_conversation_id"`

	MessageSenderRole string    `gorm:"column:messages_sender_role;type:varchar(20);not null" json:"messages_sender_role"`
	MessageSenderID   uuid.UUID `gorm:"column:messages_sender_id;type:uuid;not null" json:"messages_sender_id"`

	MessageContent string         `gorm:"column:messages_content;type:text;not null" json:"messages_content"`
	MessageMeta    datatypes.JSON `gorm:"column:messages_meta;type:jsonb" json:"messages_meta,omitempty"`

	MessageCreatedAt time.Time  `gorm:"column:messages_created_at;autoCreateTime" json:"messages_created_at"`
	MessageUpdatedAt *time.Time `gorm:"column:messages_updated_at;autoUpdateTime" json:"messages_updated_at,omitempty"`
}

func (MessageModel) TableName() string { return "messages" }
