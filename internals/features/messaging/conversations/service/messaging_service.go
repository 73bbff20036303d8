package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/messaging/conversations/model"
)

// Identitas sistem pengirim kode self-study (role "class-code").
var SystemClassCodeID = uuid.MustParse("00000000-0000-0000-0000-000000000c0d")

type MessagingService struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *MessagingService {
	return &MessagingService{DB: db}
}

// normalizePair mengurutkan (role,id) supaya FindOrCreate simetris terhadap
// urutan partisipan.
func normalizePair(roleA string, idA uuid.UUID, roleB string, idB uuid.UUID) (string, uuid.UUID, string, uuid.UUID) {
	if roleA > roleB || (roleA == roleB && strings.Compare(idA.String(), idB.String()) > 0) {
		return roleB, idB, roleA, idA
	}
	return roleA, idA, roleB, idB
}

// FindOrCreateConversation idempoten: pasangan yang sama (urutan bebas)
// selalu menghasilkan conversation yang sama.
func (s *MessagingService) FindOrCreateConversation(roleA string, idA uuid.UUID, roleB string, idB uuid.UUID) (uuid.UUID, error) {
	ra, ia, rb, ib := normalizePair(roleA, idA, roleB, idB)

	var conv model.ConversationModel
	err := s.DB.
		Where("conversations_participant_a_role = ? AND conversations_participant_a_id = ? AND conversations_participant_b_role = ? AND conversations_participant_b_id = ?",
			ra, ia, rb, ib).
		First(&conv).Error
	if err == nil {
		return conv.ConversationID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}

	conv = model.ConversationModel{
		ConversationParticipantARole: ra,
		ConversationParticipantAID:   ia,
		ConversationParticipantBRole: rb,
		ConversationParticipantBID:   ib,
	}
	if err := s.DB.Create(&conv).Error; err != nil {
		// race dengan request lain: pasangan sudah dibuat — ambil yang menang
		var existing model.ConversationModel
		if ferr := s.DB.
			Where("conversations_participant_a_role = ? AND conversations_participant_a_id = ? AND conversations_participant_b_role = ? AND conversations_participant_b_id = ?",
				ra, ia, rb, ib).
			First(&existing).Error; ferr == nil {
			return existing.ConversationID, nil
		}
		return uuid.Nil, err
	}
	return conv.ConversationID, nil
}

func (s *MessagingService) SendMessage(conversationID uuid.UUID, senderRole string, senderID uuid.UUID, content string, meta datatypes.JSON) (*model.MessageModel, error) {
	msg := model.MessageModel{
		MessageConversationID: conversationID,
		MessageSenderRole:     senderRole,
		MessageSenderID:       senderID,
		MessageContent:        content,
		MessageMeta:           meta,
	}
	if err := s.DB.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// UpdateMessageContent menulis ulang isi pesan yang sudah terkirim —
// dipakai saat kode self-study kedaluwarsa.
func (s *MessagingService) UpdateMessageContent(messageID, conversationID uuid.UUID, newContent string) error {
	res := s.DB.Model(&model.MessageModel{}).
		Where("messages_id = ? AND messages_conversation_id = ?", messageID, conversationID).
		Update("messages_content", newContent)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
