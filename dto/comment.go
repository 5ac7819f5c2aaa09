package dto

import "time"

type CreateCommentRequest struct {
	RoomID uint   `json:"roomId" binding:"required"`
	Star   int    `json:"star" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	RoomID    uint      `json:"roomId"`
	User      ActorResponse `json:"user"`
	Star      int       `json:"star"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
